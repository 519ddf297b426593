package user

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-user-management/internal/domain/entity"
	"github.com/oksasatya/go-ddd-user-management/internal/domain/gateway"
	"github.com/oksasatya/go-ddd-user-management/pkg/apperror"
	"github.com/oksasatya/go-ddd-user-management/pkg/either"
)

type CreateUser struct {
	Users     gateway.UserGateway
	Encryptor gateway.EncryptionGateway
	Logger    *logrus.Logger
}

func NewCreateUser(users gateway.UserGateway, encryptor gateway.EncryptionGateway, logger *logrus.Logger) *CreateUser {
	return &CreateUser{Users: users, Encryptor: encryptor, Logger: logger}
}

// Execute registers a new user. The password is hashed only once the input
// is valid, and the user is persisted only once hashing succeeded.
// The email uniqueness check is advisory; the gateway may still reject a
// duplicate, in which case its classified error is returned as is.
func (uc *CreateUser) Execute(ctx context.Context, in CreateUserDto) UserResult {
	existing, err := uc.Users.FindByEmail(ctx, in.Email)
	if err != nil {
		return uc.fault(err, in.Email)
	}
	if existing != nil {
		return either.Left[*apperror.Error, *entity.User](apperror.BadRequest("Email already in use"))
	}

	res := CreateUserFactory(in)
	u, ok := res.RightValue()
	if !ok {
		return res
	}

	hash, err := uc.Encryptor.Hash(u.Password())
	if err != nil {
		return uc.fault(err, in.Email)
	}
	u.UpdatePasswordHash(hash)

	created, err := uc.Users.Create(ctx, u)
	if err != nil {
		if apperror.IsKind(err, apperror.KindBadRequest) {
			return either.Left[*apperror.Error, *entity.User](apperror.As(err))
		}
		return uc.fault(err, in.Email)
	}
	return either.Right[*apperror.Error](created)
}

func (uc *CreateUser) fault(err error, email string) UserResult {
	logFault(uc.Logger, "create_user", err, logrus.Fields{"email": email})
	return either.Left[*apperror.Error, *entity.User](apperror.InternalServer("Failed to create user", err))
}
