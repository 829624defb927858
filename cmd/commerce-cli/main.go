// Package main is the entry point for the commerce-cli application.
// It initializes the root command and registers the database sub-commands
// (dbinit, seed), then executes the command-line interface.
package main

import (
	"fmt"
	"log"

	commands "github.com/openmerch/commerce-api/cmd/commerce-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "commerce-cli",
		Short: "Database setup tool for the commerce API",
		Long: `commerce-cli prepares the relational store the commerce API serves from.
The dbinit command waits for the database to come up and runs the schema
migrations; the seed command loads a small demo catalog. Run dbinit before
starting the API server so requests never hit a missing schema.`,
	}

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitDBCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize DB commands: %w", err)
	}

	if err := commands.InitSeedCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize seed commands: %w", err)
	}

	return nil
}
