package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/domain/meetings"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/infrastructure/persistence/models"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormMeetingRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormMeetingRepository creates a new GORM-based MeetingRepository implementation
func NewGormMeetingRepository(db *gorm.DB, logger logger.Logger) (meetings.MeetingRepository, error) {
	return &gormMeetingRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormMeetingRepository) Create(ctx context.Context, meeting *meetings.MeetingMeta) error {
	// Validate domain entity (business rules)
	if err := meeting.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.MeetingModel{}
	model.FromDomain(meeting)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create meeting: %w", err)
	}

	r.logger.Info("Created meeting metadata with id ", meeting.ID)
	return nil
}

func (r *gormMeetingRepository) List(ctx context.Context, query *meetings.MeetingMetaQuery) ([]*meetings.MeetingMeta, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.MeetingModel
	dbQuery := r.db.WithContext(ctx).Model(&models.MeetingModel{})

	// Apply filters
	if query.Title != "" {
		dbQuery = dbQuery.Where("title LIKE ?", "%"+query.Title+"%")
	}
	if query.Language != "" {
		dbQuery = dbQuery.Where("language = ?", query.Language)
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
		return nil, fmt.Errorf("failed to fetch meetings: %w", err)
	}

	domainList := make([]*meetings.MeetingMeta, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormMeetingRepository) GetByID(ctx context.Context, meetingID string) (*meetings.MeetingMeta, error) {
	var model models.MeetingModel
	if err := r.db.WithContext(ctx).Where("id = ?", meetingID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("meeting with ID %s not found", meetingID)
		}
		return nil, fmt.Errorf("failed to fetch meeting: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormMeetingRepository) UpdateByID(ctx context.Context, meeting *meetings.MeetingMeta) error {
	if err := meeting.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.MeetingModel{}
	model.FromDomain(meeting)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update meeting: %w", err)
	}

	r.logger.Info("Updated meeting metadata with id ", meeting.ID)
	return nil
}

func (r *gormMeetingRepository) DeleteByID(ctx context.Context, meetingID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", meetingID).Delete(&models.MeetingModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete meeting: %w", err)
	}

	r.logger.Info("Deleted meeting metadata with id ", meetingID)
	return nil
}

func (r *gormMeetingRepository) ListAudioPaths(ctx context.Context) ([]string, error) {
	var paths []string
	if err := r.db.WithContext(ctx).
		Model(&models.MeetingModel{}).
		Where("audio_path <> ''").
		Pluck("audio_path", &paths).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch audio paths: %w", err)
	}
	return paths, nil
}
