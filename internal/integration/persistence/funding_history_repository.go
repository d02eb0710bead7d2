package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rc-finance/backend/internal/application/adapter"
	"github.com/rc-finance/backend/internal/domain/entity"
	"github.com/rc-finance/backend/internal/integration/persistence/model"
)

// fundingHistoryRepository implements the adapter.FundingHistoryRepository interface.
type fundingHistoryRepository struct {
	db *gorm.DB
}

// NewFundingHistoryRepository creates a new funding history repository instance.
func NewFundingHistoryRepository(db *gorm.DB) adapter.FundingHistoryRepository {
	return &fundingHistoryRepository{
		db: db,
	}
}

// Create appends a funding history record and assigns its ID.
func (r *fundingHistoryRepository) Create(ctx context.Context, record *entity.FundingRecord) error {
	recordModel := model.FundingRecordFromEntity(record)
	result := r.db.WithContext(ctx).Create(recordModel)
	if result.Error != nil {
		return result.Error
	}
	record.ID = recordModel.ID
	return nil
}

// FindByUserID retrieves all funding history for a given user, oldest first.
func (r *fundingHistoryRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.FundingRecord, error) {
	var recordModels []model.FundingRecordModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&recordModels)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]*entity.FundingRecord, len(recordModels))
	for i, rm := range recordModels {
		records[i] = rm.ToEntity()
	}
	return records, nil
}
