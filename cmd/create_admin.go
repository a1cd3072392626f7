package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	config "taskboard.com/taskboard/internal/configs"
	"taskboard.com/taskboard/internal/constants"
	apperrors "taskboard.com/taskboard/internal/errors"
	repository "taskboard.com/taskboard/internal/repositories"
	"taskboard.com/taskboard/internal/services"
	"taskboard.com/taskboard/pkg/auth"
)

var adminFlags struct {
	name     string
	email    string
	password string
}

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an admin account",
	Long:  "Creates an admin user directly in the database, for bootstrapping the first admin",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger, err := config.NewLogger(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		db, err := config.NewDatabaseClient(cfg, logger)
		if err != nil {
			return err
		}
		if err := config.Migrate(db); err != nil {
			return err
		}

		users := services.NewUserService(
			repository.NewUserRepository(db),
			auth.NewPasswordManager(cfg.BcryptCost),
			logger,
		)
		user, err := users.Provision(context.Background(), services.NewUser{
			Name:                 adminFlags.name,
			Email:                adminFlags.email,
			Password:             adminFlags.password,
			PasswordConfirmation: adminFlags.password,
		}, constants.LevelAdmin)
		if err != nil {
			var vErr *apperrors.ValidationError
			if errors.As(err, &vErr) {
				return fmt.Errorf("invalid admin: %s", vErr.Error())
			}
			return err
		}

		logger.Info("admin created", zap.String("user_id", user.ID), zap.String("email", user.Email))
		return nil
	},
}

func init() {
	createAdminCmd.Flags().StringVar(&adminFlags.name, "name", "", "admin display name")
	createAdminCmd.Flags().StringVar(&adminFlags.email, "email", "", "admin email")
	createAdminCmd.Flags().StringVar(&adminFlags.password, "password", "", "admin password")
	_ = createAdminCmd.MarkFlagRequired("email")
	_ = createAdminCmd.MarkFlagRequired("password")
	_ = createAdminCmd.MarkFlagRequired("name")

	rootCmd.AddCommand(createAdminCmd)
}
