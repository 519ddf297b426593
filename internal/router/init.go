package router

import (
	"github.com/oksasatya/go-ddd-user-management/config"
	userapp "github.com/oksasatya/go-ddd-user-management/internal/application/user"
	"github.com/oksasatya/go-ddd-user-management/internal/container"
	"github.com/oksasatya/go-ddd-user-management/internal/domain/gateway"
	"github.com/oksasatya/go-ddd-user-management/internal/infrastructure/cache"
	"github.com/oksasatya/go-ddd-user-management/internal/infrastructure/notify"
	pginfra "github.com/oksasatya/go-ddd-user-management/internal/infrastructure/postgres"
	"github.com/oksasatya/go-ddd-user-management/internal/infrastructure/search"
	"github.com/oksasatya/go-ddd-user-management/internal/infrastructure/security"
	handlers "github.com/oksasatya/go-ddd-user-management/internal/interface/http"
	"github.com/oksasatya/go-ddd-user-management/internal/router/modules"
	mailtpl "github.com/oksasatya/go-ddd-user-management/pkg/mailer/templates"
)

type UserModuleDeps struct {
	Gateway  gateway.UserGateway
	UseCases handlers.UserUseCases
	Handler  *handlers.UserHandler
}

// BuildUserGateway stacks the configured decorators on top of Postgres:
// postgres -> redis cache -> search indexing -> email notifications.
func BuildUserGateway() gateway.UserGateway {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	var users gateway.UserGateway = pginfra.NewUserGateway(container.GetPGPool())
	if rdb := container.GetRedis(); rdb != nil && cfg.UserCacheTTL > 0 {
		users = cache.NewUserGateway(users, rdb, cfg.UserCacheTTL, logger)
	}
	if es := container.GetES(); es != nil {
		users = search.NewIndexingGateway(users, search.NewUserIndex(es, cfg.ESUsersIndex), logger)
	}
	if pub := container.GetRabbitPub(); pub != nil && cfg.NotifyEnabled {
		users = notify.NewNotifyingGateway(users, pub, BrandFromConfig(cfg), logger)
	}
	return users
}

// BrandFromConfig collects the sender details used in email templates.
func BrandFromConfig(cfg *config.Config) mailtpl.Brand {
	return mailtpl.Brand{AppName: cfg.AppName, CompanyName: cfg.CompanyName, SupportURL: cfg.SupportURL}
}

func buildUserDeps() (UserModuleDeps, error) {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	hasher, err := security.NewHasher(cfg.HashAlgorithm, cfg.BcryptCost)
	if err != nil {
		return UserModuleDeps{}, err
	}
	users := BuildUserGateway()

	uc := handlers.UserUseCases{
		Create: userapp.NewCreateUser(users, hasher, logger),
		Find:   userapp.NewFindByID(users, logger),
		List:   userapp.NewListAll(users, logger),
		Update: userapp.NewUpdateUser(users, hasher, logger),
		Delete: userapp.NewDeleteUser(users, logger),
	}

	// Leave the searcher as a nil interface when search is disabled.
	var searcher handlers.UserSearcher
	if es := container.GetES(); es != nil {
		searcher = search.NewUserIndex(es, cfg.ESUsersIndex)
	}

	return UserModuleDeps{
		Gateway:  users,
		UseCases: uc,
		Handler:  handlers.NewUserHandler(uc, searcher, logger),
	}, nil
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) error {
	userDeps, err := buildUserDeps()
	if err != nil {
		return err
	}
	r.Add(modules.NewUserModule(userDeps.Handler))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
	return nil
}
