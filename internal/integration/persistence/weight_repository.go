package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rc-finance/backend/internal/application/adapter"
	"github.com/rc-finance/backend/internal/domain/valueobject"
	"github.com/rc-finance/backend/internal/integration/persistence/model"
)

// weightRepository implements the adapter.WeightRepository interface.
type weightRepository struct {
	db *gorm.DB
}

// NewWeightRepository creates a new weight repository instance.
func NewWeightRepository(db *gorm.DB) adapter.WeightRepository {
	return &weightRepository{
		db: db,
	}
}

// FindByUserID returns the user's stored weights, one entry per factor row.
func (r *weightRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (valueobject.WeightSet, error) {
	var weightModels []model.WeightModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&weightModels)
	if result.Error != nil {
		return nil, result.Error
	}

	weights := make(valueobject.WeightSet, len(weightModels))
	for _, wm := range weightModels {
		weights[wm.Factor] = wm.Value
	}
	return weights, nil
}

// Save upserts the user's weight set, one row per factor.
func (r *weightRepository) Save(ctx context.Context, userID uuid.UUID, weights valueobject.WeightSet) error {
	if len(weights) == 0 {
		return nil
	}

	now := time.Now().UTC()
	weightModels := make([]model.WeightModel, 0, len(weights))
	for factor, value := range weights {
		weightModels = append(weightModels, model.WeightModel{
			UserID:    userID,
			Factor:    factor,
			Value:     value,
			UpdatedAt: now,
		})
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "factor"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&weightModels)
	return result.Error
}
