package model

import (
	"time"

	"github.com/google/uuid"
)

// WeightModel represents one scoring-weight row: a (user, factor) pair.
type WeightModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Factor    string    `gorm:"type:varchar(32);primaryKey"`
	Value     float64   `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the WeightModel.
func (WeightModel) TableName() string {
	return "allocation_weights"
}
