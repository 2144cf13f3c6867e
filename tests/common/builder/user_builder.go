//go:build unit || e2e

package builder

import (
	"deskbook/internal/domain/user"
	"deskbook/internal/usecase/queries"
	"deskbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID        uuid.UUID
	Email     string
	Role      string
	Batch     string
	SquadName string
	IsActive  bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:        uuid.New(),
		Email:     "test@example.com",
		Role:      "employee",
		Batch:     "A",
		SquadName: "Core",
		IsActive:  true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	batch, err := user.NewBatch(u.Batch)
	if err != nil {
		return nil, err
	}

	return user.NewUser(email, role, batch, u.SquadName), nil
}

func (u *UserBuilder) BuildReadModel() *queries.UserView {
	return &queries.UserView{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		Batch:     u.Batch,
		SquadName: u.SquadName,
		IsActive:  u.IsActive,
	}
}

func (u *UserBuilder) BuildSnapshot() *shared.UserSnapshot {
	return &shared.UserSnapshot{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		Batch:     u.Batch,
		SquadName: u.SquadName,
		IsActive:  u.IsActive,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithBatch(batch string) *UserBuilder {
	u.Batch = batch
	return u
}

func (u *UserBuilder) WithSquadName(squadName string) *UserBuilder {
	u.SquadName = squadName
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = "admin"
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
