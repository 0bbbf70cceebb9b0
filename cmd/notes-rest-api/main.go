// cmd/notes-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/CrazyPrash007/Multilingual-Note-Taking/internal/api/rest/v1"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/app"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/domain/documents"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/domain/maintenance"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/domain/meetings"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/infrastructure/persistence"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/infrastructure/persistence/models"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/infrastructure/storage"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/pkg/config"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appServices holds all initialized application services
type appServices struct {
	meetingUpload    meetings.MeetingUploadService
	meetingDownload  meetings.MeetingDownloadService
	meetingMetadata  meetings.MeetingMetadataService
	documentExport   documents.DocumentExportService
	documentDownload documents.DocumentDownloadService
	documentMetadata documents.DocumentMetadataService
	maintenance      maintenance.MaintenanceService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appServices, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := db.AutoMigrate(&models.MeetingModel{}, &models.DocumentModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	meetingRepo, err := persistence.NewGormMeetingRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create meeting repository: %w", err)
	}

	documentRepo, err := persistence.NewGormDocumentRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create document repository: %w", err)
	}

	// Initialize file stores; the uploads and exports directories are
	// guaranteed to exist once these constructors return
	audioStore, err := storage.NewLocalFileStore(cfg.Storage.UploadDir, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio store: %w", err)
	}

	documentStore, err := storage.NewLocalFileStore(cfg.Storage.ExportDir, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create document store: %w", err)
	}
	log.Info("File stores initialized at ", cfg.Storage.UploadDir, " and ", cfg.Storage.ExportDir)

	// Initialize services
	meetingUploadService, err := app.NewMeetingUploadService(audioStore, meetingRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create meeting upload service: %w", err)
	}

	meetingDownloadService, err := app.NewMeetingDownloadService(meetingRepo, audioStore, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create meeting download service: %w", err)
	}

	meetingMetadataService, err := app.NewMeetingMetadataService(meetingRepo, documentRepo, audioStore, documentStore, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create meeting metadata service: %w", err)
	}

	documentExportService, err := app.NewDocumentExportService(meetingRepo, documentRepo, documentStore, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create document export service: %w", err)
	}

	documentDownloadService, err := app.NewDocumentDownloadService(documentRepo, documentStore, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create document download service: %w", err)
	}

	documentMetadataService, err := app.NewDocumentMetadataService(documentRepo, documentStore, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create document metadata service: %w", err)
	}

	maintenanceService, err := app.NewMaintenanceService(
		db, cfg.Database, cfg.Storage.DataDir,
		meetingRepo, documentRepo,
		audioStore, documentStore, log,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create maintenance service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		meetingUpload:    meetingUploadService,
		meetingDownload:  meetingDownloadService,
		meetingMetadata:  meetingMetadataService,
		documentExport:   documentExportService,
		documentDownload: documentDownloadService,
		documentMetadata: documentMetadataService,
		maintenance:      maintenanceService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, services *appServices, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Cap multipart uploads
	if cfg.Storage.MaxUploadMB > 0 {
		r.MaxMultipartMemory = int64(cfg.Storage.MaxUploadMB) << 20
	}

	// Setup API routes
	v1.SetupRoutes(r,
		services.meetingUpload,
		services.meetingDownload,
		services.meetingMetadata,
		services.documentExport,
		services.documentDownload,
		services.documentMetadata,
		services.maintenance,
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
