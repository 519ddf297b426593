package user

import (
	"strings"

	"github.com/oksasatya/go-ddd-user-management/internal/domain/entity"
	"github.com/oksasatya/go-ddd-user-management/internal/domain/valueobject"
	"github.com/oksasatya/go-ddd-user-management/pkg/apperror"
	"github.com/oksasatya/go-ddd-user-management/pkg/either"
)

// CreateUserDto is the raw input for creating a user. Password is plaintext.
type CreateUserDto struct {
	Name     string
	Email    string
	Password string
}

// UserResult is the outcome of operations producing a single user.
type UserResult = either.Either[*apperror.Error, *entity.User]

// CreateUserFactory validates dto and builds a new User. The name is checked
// before the password, and the email last. The returned user still holds the
// plaintext password.
func CreateUserFactory(dto CreateUserDto) UserResult {
	if strings.TrimSpace(dto.Name) == "" {
		return either.Left[*apperror.Error, *entity.User](apperror.BadRequest("Name is required."))
	}
	if dto.Password == "" {
		return either.Left[*apperror.Error, *entity.User](apperror.BadRequest("Password is required."))
	}

	email, err := valueobject.NewEmail(dto.Email)
	if err != nil {
		return either.Left[*apperror.Error, *entity.User](apperror.As(err))
	}

	u, err := entity.NewUser(entity.UserProps{
		Name:     dto.Name,
		Email:    email,
		Password: dto.Password,
	})
	if err != nil {
		// unreachable for validated input; surfaced unchanged
		return either.Left[*apperror.Error, *entity.User](apperror.As(err))
	}
	return either.Right[*apperror.Error](u)
}
