package goal

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/rc-finance/backend/internal/application/adapter"
)

// ListGoalsInput represents the input for listing goals.
type ListGoalsInput struct {
	UserID uuid.UUID
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []*GoalOutput
}

// ListGoalsUseCase handles listing goals logic.
type ListGoalsUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo: goalRepo,
	}
}

// Execute lists the user's goals ordered by due date ascending (goals
// without a deadline last), then by progress descending.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	goals, err := uc.goalRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	outputs := make([]*GoalOutput, 0, len(goals))
	for _, g := range goals {
		outputs = append(outputs, toGoalOutput(g))
	}

	sort.SliceStable(outputs, func(i, j int) bool {
		a, b := outputs[i], outputs[j]
		switch {
		case a.DueDate == nil && b.DueDate == nil:
			return a.Progress > b.Progress
		case a.DueDate == nil:
			return false
		case b.DueDate == nil:
			return true
		case a.DueDate.Equal(*b.DueDate):
			return a.Progress > b.Progress
		default:
			return a.DueDate.Before(*b.DueDate)
		}
	})

	return &ListGoalsOutput{Goals: outputs}, nil
}
