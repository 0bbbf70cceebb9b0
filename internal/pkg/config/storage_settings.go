package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// StorageSettings holds the filesystem locations used by the service. The
// uploads directory receives audio notes, the exports directory receives
// generated PDF documents and the data directory holds the sqlite database
// plus its backups.
type StorageSettings struct {
	DataDir     string `mapstructure:"data_dir" validate:"required"`
	UploadDir   string `mapstructure:"upload_dir" validate:"required"`
	ExportDir   string `mapstructure:"export_dir" validate:"required"`
	MaxUploadMB int    `mapstructure:"max_upload_mb"`
}

// Validate checks that all fields in StorageSettings are valid
func (s *StorageSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for StorageSettings: %w", err)
	}
	if s.MaxUploadMB < 0 {
		return fmt.Errorf("max upload size must not be negative")
	}
	return nil
}
