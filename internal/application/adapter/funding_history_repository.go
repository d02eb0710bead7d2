package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/rc-finance/backend/internal/domain/entity"
)

// FundingHistoryRepository defines persistence for planned-vs-actual
// funding history records.
type FundingHistoryRepository interface {
	// Create appends a funding history record.
	Create(ctx context.Context, record *entity.FundingRecord) error

	// FindByUserID retrieves all funding history for a given user,
	// oldest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.FundingRecord, error)
}
