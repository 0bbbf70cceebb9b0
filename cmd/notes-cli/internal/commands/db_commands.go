package commands

import (
	"fmt"

	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// DBCommandHandler encapsulates logic for database maintenance via CLI.
type DBCommandHandler struct {
	logger logger.Logger
}

// NewDBCommandHandler initializes and returns a DBCommandHandler instance with
// a configured logger.
func NewDBCommandHandler() (*DBCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &DBCommandHandler{
		logger: loggerInstance,
	}, nil
}

// CheckCmd reports database status: location, size, record counts and
// integrity check result
func (commandHandler *DBCommandHandler) CheckCmd(cmd *cobra.Command, _ []string) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		commandHandler.logger.Error("invalid config flag ", err)
		return
	}

	service, cleanup, err := setupMaintenanceService(resolveConfigPath(configPath), commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer cleanup()

	status, err := service.Check(cmd.Context())
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Println("Database Status:")
	fmt.Printf("  - Location: %s\n", status.Path)
	fmt.Printf("  - Size: %.2f MB\n", float64(status.SizeBytes)/(1024*1024))
	fmt.Printf("  - Meetings: %d\n", status.MeetingCount)
	fmt.Printf("  - PDF records: %d\n", status.DocumentCount)
	fmt.Printf("  - Integrity check: %s\n", status.Integrity)
}

// BackupCmd creates a timestamped backup of the database file
func (commandHandler *DBCommandHandler) BackupCmd(cmd *cobra.Command, _ []string) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		commandHandler.logger.Error("invalid config flag ", err)
		return
	}

	service, cleanup, err := setupMaintenanceService(resolveConfigPath(configPath), commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer cleanup()

	backupPath, err := service.Backup(cmd.Context())
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Printf("Database backed up to: %s\n", backupPath)
}

// InitDBCommands registers the db command group with the root command.
func InitDBCommands(rootCmd *cobra.Command) error {
	handler, err := NewDBCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create db command handler: %w", err)
	}

	dbCmd := &cobra.Command{
		Use:   "db",
		Short: "Database maintenance commands",
	}

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Check database status and integrity",
		Run:   handler.CheckCmd,
	}
	checkCmd.Flags().String("config", "", "Path to the configuration file")

	backupCmd := &cobra.Command{
		Use:   "backup",
		Short: "Create a timestamped database backup",
		Run:   handler.BackupCmd,
	}
	backupCmd.Flags().String("config", "", "Path to the configuration file")

	dbCmd.AddCommand(checkCmd, backupCmd)
	rootCmd.AddCommand(dbCmd)

	return nil
}
