package main

import (
	"os"

	"github.com/spf13/cobra"

	configcmd "helpdesk/internal/interfaces/cli/config"
	"helpdesk/internal/interfaces/cli/migrate"
	"helpdesk/internal/interfaces/cli/server"
)

// @title			Helpdesk API
// @version		1.0
// @description	Support tickets with a fixed state workflow and comments.
// @BasePath		/api
func main() {
	rootCmd := &cobra.Command{
		Use:   "helpdesk",
		Short: "Helpdesk - ticket tracking API",
		Long:  `Helpdesk serves the ticket API and ships the database migration and configuration tools it needs.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		configcmd.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
