package cmd

import (
	"github.com/spf13/cobra"

	"taskboard.com/taskboard/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Migrates the database and serves /graphql and /health until SIGINT or SIGTERM",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		application := app.New(cfg)
		if err := application.Err(); err != nil {
			return err
		}
		application.Run()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
