package commands

import (
	"fmt"
	"os"

	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/app"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/domain/maintenance"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/infrastructure/persistence"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/infrastructure/storage"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/pkg/config"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/pkg/logger"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelWarning,
		LogType:  config.LogTypeConsole,
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

func resolveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		return env
	}
	return "configs/rest-app.yaml"
}

// setupMaintenanceService wires the maintenance service against the configured
// database and file stores. The returned cleanup closes the DB connection.
func setupMaintenanceService(configPath string, log logger.Logger) (maintenance.MaintenanceService, func(), error) {
	cfg, err := config.InitializeCliConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := persistence.NewExistingDBConnection(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	cleanup := func() {
		_ = persistence.CloseDB(db)
	}

	meetingRepo, err := persistence.NewGormMeetingRepository(db, log)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create meeting repository: %w", err)
	}

	documentRepo, err := persistence.NewGormDocumentRepository(db, log)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create document repository: %w", err)
	}

	audioStore, err := storage.NewLocalFileStore(cfg.Storage.UploadDir, log)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to open uploads directory: %w", err)
	}

	documentStore, err := storage.NewLocalFileStore(cfg.Storage.ExportDir, log)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to open exports directory: %w", err)
	}

	service, err := app.NewMaintenanceService(
		db, cfg.Database, cfg.Storage.DataDir,
		meetingRepo, documentRepo,
		audioStore, documentStore, log,
	)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create maintenance service: %w", err)
	}

	return service, cleanup, nil
}
