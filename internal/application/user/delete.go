package user

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-user-management/internal/domain/gateway"
	"github.com/oksasatya/go-ddd-user-management/pkg/apperror"
	"github.com/oksasatya/go-ddd-user-management/pkg/either"
)

type DeleteUserInput struct {
	ID string
}

// DeleteResult is the outcome of DeleteUser; Right is always true.
type DeleteResult = either.Either[*apperror.Error, bool]

type DeleteUser struct {
	Users  gateway.UserGateway
	Logger *logrus.Logger
}

func NewDeleteUser(users gateway.UserGateway, logger *logrus.Logger) *DeleteUser {
	return &DeleteUser{Users: users, Logger: logger}
}

// Execute deletes an existing user. Delete is never called for an unknown id.
func (uc *DeleteUser) Execute(ctx context.Context, in DeleteUserInput) DeleteResult {
	u, err := uc.Users.FindByID(ctx, in.ID)
	if err != nil {
		return uc.fault(err, in.ID)
	}
	if u == nil {
		return either.Left[*apperror.Error, bool](apperror.NotFound("User not found"))
	}
	if err := uc.Users.Delete(ctx, in.ID); err != nil {
		return uc.fault(err, in.ID)
	}
	return either.Right[*apperror.Error](true)
}

func (uc *DeleteUser) fault(err error, id string) DeleteResult {
	logFault(uc.Logger, "delete_user", err, logrus.Fields{"user_id": id})
	return either.Left[*apperror.Error, bool](apperror.InternalServer("Error deleting user", err))
}
