package goal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rc-finance/backend/internal/application/adapter"
	"github.com/rc-finance/backend/internal/domain/entity"
	domainerror "github.com/rc-finance/backend/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID       uuid.UUID
	Name         string
	TargetAmount float64
	DueDate      *time.Time // Optional

	// Optional scoring hints; nil means the neutral default.
	Impact        *float64
	PriorityUser  *float64
	StabilityHint *float64
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *GoalOutput
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalName,
			"goal name must not be empty",
			domainerror.ErrInvalidGoalName,
		)
	}

	if input.TargetAmount <= 0 {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}

	goal := entity.NewGoal(input.UserID, name, input.TargetAmount, input.DueDate)

	for _, hint := range []struct {
		value *float64
		field *float64
	}{
		{input.Impact, &goal.Impact},
		{input.PriorityUser, &goal.PriorityUser},
		{input.StabilityHint, &goal.StabilityHint},
	} {
		if hint.value == nil {
			continue
		}
		if !validHint(*hint.value) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeHintOutOfRange,
				"scoring hints must be between 0.0 and 1.0",
				domainerror.ErrHintOutOfRange,
			)
		}
		*hint.field = *hint.value
	}

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{Goal: toGoalOutput(goal)}, nil
}
