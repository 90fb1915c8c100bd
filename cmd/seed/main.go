package main

import (
	"context"
	"errors"
	"log"

	"github.com/joho/godotenv"

	"github.com/oksasatya/go-credentials-login/config"
	"github.com/oksasatya/go-credentials-login/internal/domain/entity"
	"github.com/oksasatya/go-credentials-login/internal/domain/repository"
	pginfra "github.com/oksasatya/go-credentials-login/internal/infrastructure/postgres"
	"github.com/oksasatya/go-credentials-login/pkg/helpers"
)

// placeholder account matching the demo login
var seedUsers = []struct {
	Name     string
	Email    string
	Password string
}{
	{Name: "User", Email: "user@nextmail.com", Password: "123456"},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), 2, 1, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	repo := pginfra.NewUserRepository(pool)
	for _, su := range seedUsers {
		existing, err := repo.GetByEmail(ctx, su.Email)
		if err == nil && existing != nil {
			logger.WithField("user_id", existing.ID).Info("seed user already present")
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			log.Fatalf("failed to look up seed user: %v", err)
		}

		hash, err := helpers.HashPassword(su.Password)
		if err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}
		u := &entity.User{Name: su.Name, Email: su.Email, Password: hash}
		if err := repo.Create(ctx, u); err != nil {
			log.Fatalf("failed to seed user: %v", err)
		}
		logger.WithField("user_id", u.ID).Info("seeded user")
	}
}
