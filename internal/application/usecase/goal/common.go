// Package goal contains goal-related use cases.
package goal

import (
	"time"

	"github.com/google/uuid"

	"github.com/rc-finance/backend/internal/domain/entity"
)

// GoalOutput represents a single goal in use case outputs.
type GoalOutput struct {
	ID            int64
	UserID        uuid.UUID
	Name          string
	TargetAmount  float64
	FundedAmount  float64
	Remaining     float64
	Progress      float64
	DueDate       *time.Time
	Impact        float64
	PriorityUser  float64
	StabilityHint float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// toGoalOutput converts a domain Goal entity to a GoalOutput.
func toGoalOutput(g *entity.Goal) *GoalOutput {
	return &GoalOutput{
		ID:            g.ID,
		UserID:        g.UserID,
		Name:          g.Name,
		TargetAmount:  g.TargetAmount,
		FundedAmount:  g.FundedAmount,
		Remaining:     g.Remaining(),
		Progress:      g.Progress(),
		DueDate:       g.DueDate,
		Impact:        g.Impact,
		PriorityUser:  g.PriorityUser,
		StabilityHint: g.StabilityHint,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

// validHint reports whether a scoring hint lies in [0, 1].
func validHint(v float64) bool {
	return v >= 0 && v <= 1
}
