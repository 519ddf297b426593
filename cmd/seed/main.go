package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-user-management/config"
	userapp "github.com/oksasatya/go-ddd-user-management/internal/application/user"
	"github.com/oksasatya/go-ddd-user-management/internal/container"
	pginfra "github.com/oksasatya/go-ddd-user-management/internal/infrastructure/postgres"
	"github.com/oksasatya/go-ddd-user-management/internal/infrastructure/security"
	"github.com/oksasatya/go-ddd-user-management/internal/router"
	"github.com/oksasatya/go-ddd-user-management/pkg/apperror"
	"github.com/oksasatya/go-ddd-user-management/pkg/helpers"
)

var demoUsers = []userapp.CreateUserDto{
	{Name: "Demo Admin", Email: "admin@example.com", Password: "password123"},
	{Name: "Ann Example", Email: "ann@example.com", Password: "password123"},
	{Name: "Bo Example", Email: "bo@example.com", Password: "password123"},
}

// seed creates demo users through the CreateUser use case, so they are
// hashed, cached, indexed and announced exactly like API-created users.
// Users that already exist are skipped.
func main() {
	withSideEffects := flag.Bool("side-effects", false, "index and notify through the configured decorators")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), 2, 0, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()
	if err := pginfra.RunMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	hasher, err := security.NewHasher(cfg.HashAlgorithm, cfg.BcryptCost)
	if err != nil {
		log.Fatalf("hasher: %v", err)
	}

	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetPGPool(pool)
	if *withSideEffects {
		if addrs := cfg.ESAddrs(); len(addrs) > 0 {
			es, err := helpers.NewESClient(addrs, cfg.ElasticsearchUser, cfg.ElasticsearchPass)
			if err != nil {
				log.Fatalf("failed to init elasticsearch client: %v", err)
			}
			container.SetES(es)
		}
		if pub, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQEmailQueue); err == nil {
			defer pub.Close()
			container.SetRabbitPub(pub)
		}
	}

	create := userapp.NewCreateUser(router.BuildUserGateway(), hasher, logger)
	for _, dto := range demoUsers {
		res := create.Execute(ctx, dto)
		if appErr, failed := res.LeftValue(); failed {
			if appErr.Kind == apperror.KindBadRequest && appErr.Message == "Email already in use" {
				logger.WithField("email", dto.Email).Info("user already seeded")
				continue
			}
			log.Fatalf("failed to seed %s: %v", dto.Email, appErr)
		}
		u, _ := res.RightValue()
		logger.WithFields(logrus.Fields{"id": u.ID().String(), "email": dto.Email}).Info("seeded user")
	}
}
