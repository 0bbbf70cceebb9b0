// Package main is the entry point for the notes-cli maintenance tool.
// It initializes the root command and registers the database and file
// maintenance sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/CrazyPrash007/Multilingual-Note-Taking/cmd/notes-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "notes-cli",
		Short: "Meeting notes maintenance CLI tool",
		Long: `notes-cli is a command-line tool for maintaining the meeting notes backend.
It checks database status and integrity, creates timestamped database backups
and removes stored files that no database record references.

The tool reads the same configuration file as the REST API. Point it at a
deployment with --config or the CONFIG_PATH environment variable.`,
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
		return fmt.Errorf("failed to initialize db commands: %w", err)
	}

	if err := commands.InitFilesCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize files commands: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
