package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// FilesCommandHandler encapsulates logic for stored file maintenance via CLI.
type FilesCommandHandler struct {
	logger logger.Logger
}

// NewFilesCommandHandler initializes and returns a FilesCommandHandler
// instance with a configured logger.
func NewFilesCommandHandler() (*FilesCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &FilesCommandHandler{
		logger: loggerInstance,
	}, nil
}

// CleanCmd finds and deletes stored files without a database record
func (commandHandler *FilesCommandHandler) CleanCmd(cmd *cobra.Command, _ []string) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		commandHandler.logger.Error("invalid config flag ", err)
		return
	}

	assumeYes, err := cmd.Flags().GetBool("yes")
	if err != nil {
		commandHandler.logger.Error("invalid yes flag ", err)
		return
	}

	service, cleanup, err := setupMaintenanceService(resolveConfigPath(configPath), commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer cleanup()

	report, err := service.FindOrphanedFiles(cmd.Context())
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Printf("Found %d orphaned upload files\n", len(report.UploadFiles))
	fmt.Printf("Found %d orphaned PDF files\n", len(report.ExportFiles))

	if report.Empty() {
		fmt.Println("No orphaned files to clean up")
		return
	}

	if !assumeYes && !confirm("Do you want to delete these orphaned files? (y/n): ") {
		fmt.Println("Cleanup aborted")
		return
	}

	paths := append(append([]string{}, report.UploadFiles...), report.ExportFiles...)
	deleted, failed := service.RemoveFiles(cmd.Context(), paths)

	for _, path := range failed {
		fmt.Printf("Failed to delete %s\n", path)
	}
	fmt.Printf("Deleted %d orphaned files\n", deleted)
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(strings.ToLower(input)) == "y"
}

// InitFilesCommands registers the files command group with the root command.
func InitFilesCommands(rootCmd *cobra.Command) error {
	handler, err := NewFilesCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create files command handler: %w", err)
	}

	filesCmd := &cobra.Command{
		Use:   "files",
		Short: "Stored file maintenance commands",
	}

	cleanCmd := &cobra.Command{
		Use:   "clean",
		Short: "Delete stored files without a database record",
		Run:   handler.CleanCmd,
	}
	cleanCmd.Flags().String("config", "", "Path to the configuration file")
	cleanCmd.Flags().Bool("yes", false, "Delete without asking for confirmation")

	filesCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(filesCmd)

	return nil
}
