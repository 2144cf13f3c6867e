package user

type Role string

const (
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleEmployee, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Batch is the fixed attendance cohort an employee belongs to. The cohort
// never changes for the lifetime of the account.
type Batch string

const (
	BatchA Batch = "A"
	BatchB Batch = "B"
)

func (b Batch) String() string {
	return string(b)
}

func (b Batch) IsValid() bool {
	switch b {
	case BatchA, BatchB:
		return true
	default:
		return false
	}
}

// Other returns the opposite cohort.
func (b Batch) Other() Batch {
	if b == BatchA {
		return BatchB
	}
	return BatchA
}

func NewBatch(s string) (Batch, error) {
	batch := Batch(s)
	if !batch.IsValid() {
		return "", ErrInvalidBatch
	}
	return batch, nil
}
