// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/rc-finance/backend/internal/domain/entity"
)

// GoalModel represents the goals table in the database.
type GoalModel struct {
	ID            int64      `gorm:"primaryKey;autoIncrement"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name          string     `gorm:"type:varchar(255);not null"`
	TargetAmount  float64    `gorm:"type:decimal(15,2);not null"`
	FundedAmount  float64    `gorm:"type:decimal(15,2);not null;default:0"`
	DueDate       *time.Time `gorm:"type:date"`
	Impact        float64    `gorm:"not null;default:0.5"`
	PriorityUser  float64    `gorm:"not null;default:0.5"`
	StabilityHint float64    `gorm:"not null;default:0.5"`
	CreatedAt     time.Time  `gorm:"not null"`
	UpdatedAt     time.Time  `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	return &entity.Goal{
		ID:            m.ID,
		UserID:        m.UserID,
		Name:          m.Name,
		TargetAmount:  m.TargetAmount,
		FundedAmount:  m.FundedAmount,
		DueDate:       m.DueDate,
		Impact:        m.Impact,
		PriorityUser:  m.PriorityUser,
		StabilityHint: m.StabilityHint,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	return &GoalModel{
		ID:            goal.ID,
		UserID:        goal.UserID,
		Name:          goal.Name,
		TargetAmount:  goal.TargetAmount,
		FundedAmount:  goal.FundedAmount,
		DueDate:       goal.DueDate,
		Impact:        goal.Impact,
		PriorityUser:  goal.PriorityUser,
		StabilityHint: goal.StabilityHint,
		CreatedAt:     goal.CreatedAt,
		UpdatedAt:     goal.UpdatedAt,
	}
}
