package response

import (
	"deskbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Batch     string    `json:"batch"`
	SquadName string    `json:"squadName"`
	IsActive  bool      `json:"isActive"`
}

func FromUserView(rm *queries.UserView) *UserResponse {
	resp := &UserResponse{}
	_ = copier.Copy(resp, rm)
	return resp
}
