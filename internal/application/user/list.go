package user

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-user-management/internal/domain/entity"
	"github.com/oksasatya/go-ddd-user-management/internal/domain/gateway"
	"github.com/oksasatya/go-ddd-user-management/pkg/apperror"
	"github.com/oksasatya/go-ddd-user-management/pkg/either"
)

type ListAllInput struct {
	Page  int
	Limit int
}

// PageResult is the outcome of ListAll.
type PageResult = either.Either[*apperror.Error, gateway.Paginated[*entity.User]]

type ListAll struct {
	Users  gateway.UserGateway
	Logger *logrus.Logger
}

func NewListAll(users gateway.UserGateway, logger *logrus.Logger) *ListAll {
	return &ListAll{Users: users, Logger: logger}
}

func (uc *ListAll) Execute(ctx context.Context, in ListAllInput) PageResult {
	page, err := uc.Users.ListAll(ctx, gateway.ListParams{Page: in.Page, Limit: in.Limit})
	if err != nil {
		logFault(uc.Logger, "list_users", err, logrus.Fields{"page": in.Page, "limit": in.Limit})
		return either.Left[*apperror.Error, gateway.Paginated[*entity.User]](apperror.InternalServer("Error listing users", err))
	}
	return either.Right[*apperror.Error](page)
}
