package main

import (
	"os"

	"github.com/spf13/cobra"

	"accountsforge/internal/interfaces/cli/migrate"
	"accountsforge/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "accountsforge",
		Short: "AccountsForge - accounting dashboard backend",
		Long:  `AccountsForge is the accounting dashboard backend with role-based authorization, approval workflows, and migration tooling.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
