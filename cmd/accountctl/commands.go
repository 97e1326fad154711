package main

import (
	"context"
	"fmt"
	"strings"

	"account/config"
	"account/internal/domain/entity"
	"account/internal/infra/auth"
	logs "account/internal/infra/log"
	"account/internal/infra/persistence/postgres"
	"account/internal/usecase"
	"account/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// withApp starts the storage and account stack, hands it to run and stops it afterwards.
func withApp(ctx context.Context, run func(db *gorm.DB, accounts usecase.AccountUsecase) error) error {
	var (
		db       *gorm.DB
		accounts usecase.AccountUsecase
	)

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewTransactionManager,
			auth.NewBcryptHasher,
			auth.NewJWTService,
			impl.NewAccountService,
		),
		fx.Populate(&db, &accounts),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "build application")
	}

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "start application")
	}
	defer func() {
		_ = app.Stop(context.WithoutCancel(ctx))
	}()

	return run(db, accounts)
}

func runMigrate(ctx context.Context) error {
	return withApp(ctx, func(db *gorm.DB, _ usecase.AccountUsecase) error {
		if err := postgres.Migrate(db.WithContext(ctx)); err != nil {
			return err
		}
		fmt.Println("Schema migrated")

		return nil
	})
}

func runCreateUser(ctx context.Context, flags *createUserFlags) error {
	fields, err := createUserFields(flags)
	if err != nil {
		return err
	}

	return withApp(ctx, func(_ *gorm.DB, accounts usecase.AccountUsecase) error {
		user, err := accounts.CreateUser(ctx, *flags.email, *flags.password, fields)
		if err != nil {
			return err
		}
		printCreated(user)

		return nil
	})
}

func runCreateSuperuser(ctx context.Context, flags *createSuperuserFlags) error {
	return withApp(ctx, func(_ *gorm.DB, accounts usecase.AccountUsecase) error {
		user, err := accounts.CreatePrivilegedUser(ctx, *flags.email, *flags.password, usecase.UserFields{})
		if err != nil {
			return err
		}
		printCreated(user)

		return nil
	})
}

func createUserFields(flags *createUserFlags) (usecase.UserFields, error) {
	var fields usecase.UserFields

	if firstName := strings.TrimSpace(*flags.firstName); firstName != "" {
		fields.FirstName = &firstName
	}
	if lastName := strings.TrimSpace(*flags.lastName); lastName != "" {
		fields.LastName = &lastName
	}
	if raw := strings.TrimSpace(*flags.role); raw != "" {
		role := entity.Role(raw)
		if !role.IsValid() {
			return usecase.UserFields{}, errors.Errorf("unknown role %q", raw)
		}
		fields.Role = &role
	}

	return fields, nil
}

func printCreated(user *entity.User) {
	fmt.Printf("Created %s user %s (%s)\n", user.Role.Label(), user.Email, user.ID)
}
