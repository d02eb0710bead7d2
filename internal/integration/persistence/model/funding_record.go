package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/rc-finance/backend/internal/domain/entity"
)

// FundingRecordModel represents the funding_history table in the database.
type FundingRecordModel struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	GoalID        int64     `gorm:"not null;index"`
	Month         string    `gorm:"type:varchar(7);not null"`
	PlannedAmount float64   `gorm:"type:decimal(15,2);not null"`
	ActualAmount  float64   `gorm:"type:decimal(15,2);not null"`
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for the FundingRecordModel.
func (FundingRecordModel) TableName() string {
	return "funding_history"
}

// ToEntity converts a FundingRecordModel to a domain FundingRecord entity.
func (m *FundingRecordModel) ToEntity() *entity.FundingRecord {
	return &entity.FundingRecord{
		ID:            m.ID,
		UserID:        m.UserID,
		GoalID:        m.GoalID,
		Month:         m.Month,
		PlannedAmount: m.PlannedAmount,
		ActualAmount:  m.ActualAmount,
		CreatedAt:     m.CreatedAt,
	}
}

// FundingRecordFromEntity creates a FundingRecordModel from a domain entity.
func FundingRecordFromEntity(record *entity.FundingRecord) *FundingRecordModel {
	return &FundingRecordModel{
		ID:            record.ID,
		UserID:        record.UserID,
		GoalID:        record.GoalID,
		Month:         record.Month,
		PlannedAmount: record.PlannedAmount,
		ActualAmount:  record.ActualAmount,
		CreatedAt:     record.CreatedAt,
	}
}
