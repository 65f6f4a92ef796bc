package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	appidentity "github.com/autoexpert/backend/internal/application/identity"
	"github.com/autoexpert/backend/internal/domain/identity"
	"github.com/autoexpert/backend/internal/domain/shared"
	"github.com/autoexpert/backend/internal/infrastructure/config"
	"github.com/autoexpert/backend/internal/infrastructure/logger"
	"github.com/autoexpert/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

// Applies the schema and optionally seeds the first manager account.
//
//	migrate [-seed-login admin -seed-password secret]
func main() {
	var (
		seedLogin    string
		seedPassword string
		logLevel     string
	)

	flag.StringVar(&seedLogin, "seed-login", "", "Login of the manager account to seed")
	flag.StringVar(&seedPassword, "seed-password", "", "Password of the manager account to seed")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	log, err := logger.New(&logger.Config{
		Level:  logLevel,
		Format: "console",
		Output: "stdout",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := persistence.NewDatabase(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	if err := db.Migrate(); err != nil {
		log.Fatal("Migration failed", zap.Error(err))
	}
	log.Info("Schema up to date", zap.String("driver", cfg.Database.Driver))

	if seedLogin == "" {
		return
	}
	if seedPassword == "" {
		log.Fatal("-seed-password is required with -seed-login")
	}

	userRepo := persistence.NewGormUserRepository(db.DB)
	userService := appidentity.NewUserService(userRepo, log)

	_, err = userService.Create(context.Background(), appidentity.CreateUserRequest{
		Login:    seedLogin,
		Password: seedPassword,
		Role:     identity.RoleManager.String(),
	})
	switch {
	case err == nil:
		log.Info("Manager account seeded", zap.String("login", seedLogin))
	case isConflict(err):
		log.Info("Manager account already exists", zap.String("login", seedLogin))
	default:
		log.Fatal("Failed to seed manager account", zap.Error(err))
	}
}

func isConflict(err error) bool {
	var domainErr *shared.DomainError
	return errors.As(err, &domainErr) && domainErr.Code == shared.CodeConflict
}
