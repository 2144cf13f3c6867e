package user

import (
	"time"

	"github.com/google/uuid"
)

// User entity. The batch cohort drives every booking decision; the role is
// only consulted when deciding who may read the utilization report.
type User struct {
	id        uuid.UUID
	email     Email
	role      Role
	batch     Batch
	squadName string
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewUser(email Email, role Role, batch Batch, squadName string) *User {
	return &User{
		id:        uuid.New(),
		email:     email,
		role:      role,
		batch:     batch,
		squadName: squadName,
		isActive:  true,
	}
}

func ReconstructUser(
	id uuid.UUID,
	email Email,
	role Role,
	batch Batch,
	squadName string,
	isActive bool,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:        id,
		email:     email,
		role:      role,
		batch:     batch,
		squadName: squadName,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) Role() Role           { return u.role }
func (u *User) Batch() Batch         { return u.batch }
func (u *User) SquadName() string    { return u.squadName }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
