package main

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for the gateward CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gateward",
		Short: "Gateward - a standalone authentication service",
		Long: `Gateward is a standalone authentication service: signup and login
over HTTP, Argon2id password hashing, and signed session tokens
backed by PostgreSQL.`,
	}

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMigrateCmd())

	return cmd
}
