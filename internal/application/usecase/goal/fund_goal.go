package goal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rc-finance/backend/internal/application/adapter"
	domainerror "github.com/rc-finance/backend/internal/domain/error"
)

// FundGoalInput represents the input for funding a goal.
type FundGoalInput struct {
	GoalID int64
	UserID uuid.UUID

	// Amount is additive: positive funds the goal, negative refunds it.
	// The resulting funded amount is clamped at zero.
	Amount float64
}

// FundGoalOutput represents the output of funding a goal.
type FundGoalOutput struct {
	Goal *GoalOutput

	// Applied is the delta that actually landed after clamping.
	Applied float64
}

// FundGoalUseCase handles manual goal funding (and refunds).
type FundGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewFundGoalUseCase creates a new FundGoalUseCase instance.
func NewFundGoalUseCase(goalRepo adapter.GoalRepository) *FundGoalUseCase {
	return &FundGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute applies the additive funding update.
func (uc *FundGoalUseCase) Execute(ctx context.Context, input FundGoalInput) (*FundGoalOutput, error) {
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
			"not authorized to fund this goal",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}

	// Funding is currency; round the additive amount to cents.
	amount, _ := decimal.NewFromFloat(input.Amount).Round(2).Float64()

	before := goal.FundedAmount
	after := before + amount
	if after < 0 {
		after = 0
	}

	goal.FundedAmount = after
	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to fund goal: %w", err)
	}

	return &FundGoalOutput{
		Goal:    toGoalOutput(goal),
		Applied: after - before,
	}, nil
}
