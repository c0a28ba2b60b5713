package main

import (
	"context"
	"os"

	"hotelier/config"
	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	userModel "hotelier/internal/domains/user/model"
	userRepository "hotelier/internal/domains/user/repository"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/logger"
	"hotelier/shared/model"
	"hotelier/shared/password"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type seedUser struct {
	email       string
	fullName    string
	level       string
	passwordEnv string
}

// Seeds the two back-office accounts. Safe to run repeatedly;
// existing emails are left untouched.
func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	db := postgres.New(cfg)
	repo := userRepository.New(db, otel.New(cfg))

	ctx := context.Background()

	users := []seedUser{
		{
			email:       "manager@hotelier.local",
			fullName:    "Hotel Manager",
			level:       constant.RoleManager,
			passwordEnv: "SEED_MANAGER_PASSWORD",
		},
		{
			email:       "receptionist@hotelier.local",
			fullName:    "Front Desk",
			level:       constant.RoleReceptionist,
			passwordEnv: "SEED_RECEPTIONIST_PASSWORD",
		},
	}

	for _, user := range users {
		if err := seed(ctx, repo, user); err != nil {
			log.Fatal().Err(err).Str("email", user.email).Msg("Failed to seed user")
		}
	}
}

func seed(ctx context.Context, repo userRepository.User, user seedUser) error {
	emailFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    user.email,
				Table:    userModel.TableName,
			},
		},
	}

	exist, err := repo.Exist(ctx, emailFilter)
	if err != nil {
		return err
	}

	if exist {
		log.Info().Str("email", user.email).Msg("User already exists, skipping")

		return nil
	}

	plain := os.Getenv(user.passwordEnv)
	if plain == "" {
		plain = "changeme"

		log.Warn().Str("email", user.email).Str("env", user.passwordEnv).
			Msg("Password env var not set, using default password")
	}

	hashed, err := password.Hash(plain)
	if err != nil {
		return err
	}

	now := timezone.Now()
	fullName := user.fullName

	if err := repo.Insert(ctx, userModel.User{
		ID:       uuid.NewString(),
		Email:    user.email,
		Password: hashed,
		Level:    user.level,
		FullName: &fullName,
		Active:   true,
		Metadata: model.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "seed",
			ModifiedBy: "seed",
		},
	}); err != nil {
		return err
	}

	log.Info().Str("email", user.email).Str("level", user.level).Msg("User seeded")

	return nil
}
