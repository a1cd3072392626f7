package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	config "taskboard.com/taskboard/internal/configs"
)

var rootCmd = &cobra.Command{
	Use:           "taskboard",
	Short:         "Project and task board GraphQL API",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig reads .env when present, then the environment.
func loadConfig() (config.Config, error) {
	_ = godotenv.Load()
	return config.Load()
}
