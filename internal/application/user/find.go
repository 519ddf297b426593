package user

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-user-management/internal/domain/entity"
	"github.com/oksasatya/go-ddd-user-management/internal/domain/gateway"
	"github.com/oksasatya/go-ddd-user-management/pkg/apperror"
	"github.com/oksasatya/go-ddd-user-management/pkg/either"
)

type FindByIDInput struct {
	ID string
}

type FindByID struct {
	Users  gateway.UserGateway
	Logger *logrus.Logger
}

func NewFindByID(users gateway.UserGateway, logger *logrus.Logger) *FindByID {
	return &FindByID{Users: users, Logger: logger}
}

// Execute looks a user up by id. A NotFound error raised by the gateway is
// passed through unchanged; any other fault becomes an InternalServerError.
func (uc *FindByID) Execute(ctx context.Context, in FindByIDInput) UserResult {
	u, err := uc.Users.FindByID(ctx, in.ID)
	if err != nil {
		var appErr *apperror.Error
		if errors.As(err, &appErr) && appErr.Kind == apperror.KindNotFound {
			return either.Left[*apperror.Error, *entity.User](appErr)
		}
		logFault(uc.Logger, "find_user", err, logrus.Fields{"user_id": in.ID})
		return either.Left[*apperror.Error, *entity.User](apperror.InternalServer("", err))
	}
	if u == nil {
		return either.Left[*apperror.Error, *entity.User](apperror.NotFound("User not found"))
	}
	return either.Right[*apperror.Error](u)
}
