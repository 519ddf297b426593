package user

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-user-management/internal/domain/entity"
	"github.com/oksasatya/go-ddd-user-management/internal/domain/gateway"
	"github.com/oksasatya/go-ddd-user-management/internal/domain/valueobject"
	"github.com/oksasatya/go-ddd-user-management/pkg/apperror"
	"github.com/oksasatya/go-ddd-user-management/pkg/either"
)

const updateFailedMessage = "Failed to update user"

type UpdateUser struct {
	Users     gateway.UserGateway
	Encryptor gateway.EncryptionGateway
	Logger    *logrus.Logger
}

func NewUpdateUser(users gateway.UserGateway, encryptor gateway.EncryptionGateway, logger *logrus.Logger) *UpdateUser {
	return &UpdateUser{Users: users, Encryptor: encryptor, Logger: logger}
}

// Execute applies a partial update. A missing target user is reported as
// BadRequest, unlike FindByID and DeleteUser which report NotFound.
// Every gateway or hashing fault collapses into a single
// InternalServerError("Failed to update user") whose cause is the original
// fault.
func (uc *UpdateUser) Execute(ctx context.Context, in UpdateUserDto) UserResult {
	validated := UpdateUserFactory(in)
	dto, ok := validated.RightValue()
	if !ok {
		appErr, _ := validated.LeftValue()
		return either.Left[*apperror.Error, *entity.User](appErr)
	}

	u, err := uc.Users.FindByID(ctx, dto.ID)
	if err != nil {
		return uc.fault(err, dto.ID)
	}
	if u == nil {
		return either.Left[*apperror.Error, *entity.User](apperror.BadRequest("User not found"))
	}

	if dto.Email != nil && *dto.Email != "" && *dto.Email != u.Email().String() {
		taken, err := uc.Users.FindByEmail(ctx, *dto.Email)
		if err != nil {
			return uc.fault(err, dto.ID)
		}
		if taken != nil && taken.ID() != u.ID() {
			return either.Left[*apperror.Error, *entity.User](apperror.BadRequest("Email already in use"))
		}
		email, err := valueobject.NewEmail(*dto.Email)
		if err != nil {
			return uc.fault(err, dto.ID)
		}
		if err := u.UpdateEmail(&email); err != nil {
			return uc.fault(err, dto.ID)
		}
	}

	if dto.Name != nil {
		if err := u.UpdateName(*dto.Name); err != nil {
			return uc.fault(err, dto.ID)
		}
	}

	if dto.Password != nil && *dto.Password != "" {
		hash, err := uc.Encryptor.Hash(*dto.Password)
		if err != nil {
			return uc.fault(err, dto.ID)
		}
		u.UpdatePasswordHash(hash)
	}

	if err := uc.Users.Save(ctx, u); err != nil {
		return uc.fault(err, dto.ID)
	}
	return either.Right[*apperror.Error](u)
}

func (uc *UpdateUser) fault(err error, id string) UserResult {
	logFault(uc.Logger, "update_user", err, logrus.Fields{"user_id": id})
	return either.Left[*apperror.Error, *entity.User](apperror.InternalServer(updateFailedMessage, err))
}
