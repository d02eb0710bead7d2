package goal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rc-finance/backend/internal/application/adapter"
	domainerror "github.com/rc-finance/backend/internal/domain/error"
)

// UpdateGoalInput represents the input for goal update.
type UpdateGoalInput struct {
	GoalID        int64
	UserID        uuid.UUID
	Name          *string    // Optional
	TargetAmount  *float64   // Optional
	DueDate       *time.Time // Optional; ClearDueDate removes an existing deadline
	ClearDueDate  bool
	Impact        *float64 // Optional
	PriorityUser  *float64 // Optional
	StabilityHint *float64 // Optional
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *GoalOutput
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	if !uc.hasUpdates(input) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeNoGoalFieldsToUpdate,
			"no fields to update",
			domainerror.ErrNoGoalFieldsToUpdate,
		)
	}

	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	if goal.UserID != input.UserID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeUnauthorizedGoalAccess,
			"not authorized to modify this goal",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalName,
				"goal name must not be empty",
				domainerror.ErrInvalidGoalName,
			)
		}
		goal.Name = name
	}

	if input.TargetAmount != nil {
		if *input.TargetAmount <= 0 {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidTargetAmount,
				"target amount must be greater than zero",
				domainerror.ErrInvalidTargetAmount,
			)
		}
		goal.TargetAmount = *input.TargetAmount
	}

	if input.ClearDueDate {
		goal.DueDate = nil
	} else if input.DueDate != nil {
		goal.DueDate = input.DueDate
	}

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

	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &UpdateGoalOutput{Goal: toGoalOutput(goal)}, nil
}

func (uc *UpdateGoalUseCase) hasUpdates(input UpdateGoalInput) bool {
	return input.Name != nil ||
		input.TargetAmount != nil ||
		input.DueDate != nil ||
		input.ClearDueDate ||
		input.Impact != nil ||
		input.PriorityUser != nil ||
		input.StabilityHint != nil
}
