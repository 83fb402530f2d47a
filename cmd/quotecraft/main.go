package main

import (
	"os"

	"github.com/spf13/cobra"

	"quotecraft/internal/interfaces/cli/migrate"
	"quotecraft/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "quotecraft",
		Short: "Quotecraft - service quoting backend",
		Long:  `Quotecraft is the backend for the embedded service quoting and CRM sync application.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
