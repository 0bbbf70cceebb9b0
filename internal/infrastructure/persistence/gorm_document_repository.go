package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/domain/documents"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/infrastructure/persistence/models"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormDocumentRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormDocumentRepository creates a new GORM-based DocumentRepository implementation
func NewGormDocumentRepository(db *gorm.DB, logger logger.Logger) (documents.DocumentRepository, error) {
	return &gormDocumentRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormDocumentRepository) Create(ctx context.Context, document *documents.DocumentMeta) error {
	if err := document.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.DocumentModel{}
	model.FromDomain(document)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	r.logger.Info("Created document metadata with id ", document.ID)
	return nil
}

func (r *gormDocumentRepository) List(ctx context.Context, query *documents.DocumentMetaQuery) ([]*documents.DocumentMeta, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.DocumentModel
	dbQuery := r.db.WithContext(ctx).Model(&models.DocumentModel{})

	// Apply filters
	if query.MeetingID != "" {
		dbQuery = dbQuery.Where("meeting_id = ?", query.MeetingID)
	}
	if query.Name != "" {
		dbQuery = dbQuery.Where("name LIKE ?", "%"+query.Name+"%")
	}
	if !query.DateTimeCreated.IsZero() {
		dbQuery = dbQuery.Where("date_time_created >= ?", query.DateTimeCreated)
	}

	// Sorting
	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	// Pagination
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch documents: %w", err)
	}

	domainList := make([]*documents.DocumentMeta, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormDocumentRepository) GetByID(ctx context.Context, documentID string) (*documents.DocumentMeta, error) {
	var model models.DocumentModel
	if err := r.db.WithContext(ctx).Where("id = ?", documentID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("document with ID %s not found", documentID)
		}
		return nil, fmt.Errorf("failed to fetch document: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormDocumentRepository) DeleteByID(ctx context.Context, documentID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", documentID).Delete(&models.DocumentModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	r.logger.Info("Deleted document metadata with id ", documentID)
	return nil
}

func (r *gormDocumentRepository) DeleteByMeetingID(ctx context.Context, meetingID string) ([]*documents.DocumentMeta, error) {
	var modelList []*models.DocumentModel
	if err := r.db.WithContext(ctx).Where("meeting_id = ?", meetingID).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch documents for meeting %s: %w", meetingID, err)
	}

	if len(modelList) == 0 {
		return nil, nil
	}

	if err := r.db.WithContext(ctx).Where("meeting_id = ?", meetingID).Delete(&models.DocumentModel{}).Error; err != nil {
		return nil, fmt.Errorf("failed to delete documents for meeting %s: %w", meetingID, err)
	}

	deleted := make([]*documents.DocumentMeta, len(modelList))
	for i, model := range modelList {
		deleted[i] = model.ToDomain()
	}

	r.logger.Info("Deleted ", len(deleted), " document(s) for meeting ", meetingID)
	return deleted, nil
}

func (r *gormDocumentRepository) ListFilePaths(ctx context.Context) ([]string, error) {
	var paths []string
	if err := r.db.WithContext(ctx).
		Model(&models.DocumentModel{}).
		Where("file_path <> ''").
		Pluck("file_path", &paths).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch document paths: %w", err)
	}
	return paths, nil
}
