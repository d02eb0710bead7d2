// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	domainerror "github.com/rc-finance/backend/internal/domain/error"
)

// DefaultHint is the neutral value assigned to the scoring hints
// (impact, user priority, stability) when the caller does not supply one.
const DefaultHint = 0.5

// Goal represents a savings goal in the Goal Funding Planner system.
type Goal struct {
	ID            int64
	UserID        uuid.UUID
	Name          string
	TargetAmount  float64
	FundedAmount  float64
	DueDate       *time.Time // nil means no deadline
	Impact        float64
	PriorityUser  float64
	StabilityHint float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewGoal creates a new Goal entity with neutral scoring hints.
func NewGoal(userID uuid.UUID, name string, targetAmount float64, dueDate *time.Time) *Goal {
	now := time.Now().UTC()

	return &Goal{
		UserID:        userID,
		Name:          name,
		TargetAmount:  targetAmount,
		FundedAmount:  0,
		DueDate:       dueDate,
		Impact:        DefaultHint,
		PriorityUser:  DefaultHint,
		StabilityHint: DefaultHint,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Remaining returns the amount still needed to reach the target, clamped at 0.
func (g *Goal) Remaining() float64 {
	r := g.TargetAmount - g.FundedAmount
	if r < 0 {
		return 0
	}
	return r
}

// Progress returns the funded fraction of the target in [0, 1].
// A zero target counts as no progress.
func (g *Goal) Progress() float64 {
	if g.TargetAmount == 0 {
		return 0
	}
	p := g.FundedAmount / g.TargetAmount
	if p > 1 {
		return 1
	}
	if p < 0 {
		return 0
	}
	return p
}

// PlanningGoal is the value object the allocation engine operates on.
// It is built fresh from a stored Goal for each scoring/allocation run and
// never mutated by the engine; the allocator works on per-round snapshots.
type PlanningGoal struct {
	ID            int64
	Name          string
	Remaining     float64
	DueDate       time.Time // zero value means no deadline
	Impact        float64
	PriorityUser  float64
	FundedPct     float64
	StabilityHint float64
}

// NewPlanningGoal validates and constructs a PlanningGoal.
// All four normalized fields must lie in [0, 1] and remaining must be
// non-negative; anything else signals a caller bug and fails fast.
func NewPlanningGoal(id int64, name string, remaining float64, dueDate time.Time, impact, priorityUser, fundedPct, stabilityHint float64) (PlanningGoal, error) {
	if remaining < 0 {
		return PlanningGoal{}, domainerror.NewGoalError(
			domainerror.ErrCodeNegativeRemaining,
			"remaining amount must not be negative",
			domainerror.ErrNegativeRemaining,
		)
	}

	for _, f := range []struct {
		name  string
		value float64
	}{
		{"impact", impact},
		{"priority_user", priorityUser},
		{"funded_pct", fundedPct},
		{"stability_hint", stabilityHint},
	} {
		if f.value < 0 || f.value > 1 {
			return PlanningGoal{}, domainerror.NewGoalError(
				domainerror.ErrCodeHintOutOfRange,
				f.name+" must be between 0.0 and 1.0",
				domainerror.ErrHintOutOfRange,
			)
		}
	}

	return PlanningGoal{
		ID:            id,
		Name:          name,
		Remaining:     remaining,
		DueDate:       dueDate,
		Impact:        impact,
		PriorityUser:  priorityUser,
		FundedPct:     fundedPct,
		StabilityHint: stabilityHint,
	}, nil
}

// PlanningGoal derives the engine's value object from a stored goal.
func (g *Goal) PlanningGoal() (PlanningGoal, error) {
	var due time.Time
	if g.DueDate != nil {
		due = *g.DueDate
	}
	return NewPlanningGoal(
		g.ID,
		g.Name,
		g.Remaining(),
		due,
		g.Impact,
		g.PriorityUser,
		g.Progress(),
		g.StabilityHint,
	)
}
