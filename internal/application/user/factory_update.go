package user

import (
	"strings"

	"github.com/oksasatya/go-ddd-user-management/internal/domain/valueobject"
	"github.com/oksasatya/go-ddd-user-management/pkg/apperror"
	"github.com/oksasatya/go-ddd-user-management/pkg/either"
)

// UpdateUserDto is the raw input for a partial update. Nil fields are left
// unchanged. Password is plaintext.
type UpdateUserDto struct {
	ID       string
	Name     *string
	Email    *string
	Password *string
}

// UpdateUserFactory validates dto without touching any entity. A present
// email is parsed only to check its format; the password is not checked
// here.
func UpdateUserFactory(dto UpdateUserDto) either.Either[*apperror.Error, UpdateUserDto] {
	if dto.ID == "" {
		return either.Left[*apperror.Error, UpdateUserDto](apperror.BadRequest("Id is required."))
	}
	if dto.Email != nil && *dto.Email != "" {
		if _, err := valueobject.NewEmail(*dto.Email); err != nil {
			return either.Left[*apperror.Error, UpdateUserDto](apperror.As(err))
		}
	}
	if dto.Name != nil && strings.TrimSpace(*dto.Name) == "" {
		return either.Left[*apperror.Error, UpdateUserDto](apperror.BadRequest("Name cannot be empty."))
	}
	return either.Right[*apperror.Error](dto)
}
