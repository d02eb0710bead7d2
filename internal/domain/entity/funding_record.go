package entity

import (
	"time"

	"github.com/google/uuid"
)

// FundingRecord is one row of planned-vs-actual funding history.
// Records are appended when an allocation plan is applied and feed the
// weight tuner on its next run.
type FundingRecord struct {
	ID            int64
	UserID        uuid.UUID
	GoalID        int64
	Month         string // "2006-01" month marker
	PlannedAmount float64
	ActualAmount  float64
	CreatedAt     time.Time
}

// NewFundingRecord creates a funding history record for the given month.
func NewFundingRecord(userID uuid.UUID, goalID int64, month string, planned, actual float64) *FundingRecord {
	return &FundingRecord{
		UserID:        userID,
		GoalID:        goalID,
		Month:         month,
		PlannedAmount: planned,
		ActualAmount:  actual,
		CreatedAt:     time.Now().UTC(),
	}
}
