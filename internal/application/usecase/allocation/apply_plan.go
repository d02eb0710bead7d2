package allocation

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rc-finance/backend/internal/application/adapter"
	"github.com/rc-finance/backend/internal/domain/entity"
	"github.com/rc-finance/backend/internal/domain/valueobject"
)

// ApplyPlanInput represents the input for applying an allocation plan.
type ApplyPlanInput struct {
	UserID   uuid.UUID
	FreeCash float64
	Weights  valueobject.WeightSet
}

// AppliedGoal is one funded goal in the apply output.
type AppliedGoal struct {
	GoalID       int64
	Name         string
	Amount       float64
	FundedAmount float64
	Progress     float64
}

// ApplyPlanOutput represents the output of applying an allocation plan.
type ApplyPlanOutput struct {
	Plan         valueobject.AllocationPlan
	Applied      []AppliedGoal
	TotalApplied float64
	Unallocated  float64
}

// ApplyPlanUseCase computes an allocation plan and persists it: each
// allocated amount funds its goal additively and a planned-vs-actual
// history record is appended for the weight tuner.
type ApplyPlanUseCase struct {
	preview     *PreviewPlanUseCase
	goalRepo    adapter.GoalRepository
	historyRepo adapter.FundingHistoryRepository
	clock       adapter.Clock
}

// NewApplyPlanUseCase creates a new ApplyPlanUseCase instance.
func NewApplyPlanUseCase(
	preview *PreviewPlanUseCase,
	goalRepo adapter.GoalRepository,
	historyRepo adapter.FundingHistoryRepository,
	clock adapter.Clock,
) *ApplyPlanUseCase {
	return &ApplyPlanUseCase{
		preview:     preview,
		goalRepo:    goalRepo,
		historyRepo: historyRepo,
		clock:       clock,
	}
}

// Execute runs the plan and applies it goal by goal, in goal ID order so
// repeated runs touch storage deterministically.
func (uc *ApplyPlanUseCase) Execute(ctx context.Context, input ApplyPlanInput) (*ApplyPlanOutput, error) {
	previewOut, err := uc.preview.Execute(ctx, PreviewPlanInput{
		UserID:   input.UserID,
		FreeCash: input.FreeCash,
		Weights:  input.Weights,
	})
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(previewOut.Plan))
	for id := range previewOut.Plan {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	month := uc.clock.Now().UTC().Format("2006-01")
	output := &ApplyPlanOutput{
		Plan:    previewOut.Plan,
		Applied: make([]AppliedGoal, 0, len(ids)),
	}

	for _, id := range ids {
		goal, ok := previewOut.Goals[id]
		if !ok {
			continue
		}

		// Round to cents at the persistence boundary; the engine works in
		// raw floats but stored funding is currency.
		amount, _ := decimal.NewFromFloat(previewOut.Plan[id]).Round(2).Float64()
		if amount <= 0 {
			continue
		}

		applied, err := uc.fund(ctx, goal, amount)
		if err != nil {
			return nil, fmt.Errorf("failed to fund goal %d: %w", id, err)
		}

		record := entity.NewFundingRecord(input.UserID, id, month, previewOut.Plan[id], applied)
		if err := uc.historyRepo.Create(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to record funding history for goal %d: %w", id, err)
		}

		output.Applied = append(output.Applied, AppliedGoal{
			GoalID:       id,
			Name:         goal.Name,
			Amount:       applied,
			FundedAmount: goal.FundedAmount,
			Progress:     goal.Progress(),
		})
		output.TotalApplied += applied
	}

	output.Unallocated = input.FreeCash - output.TotalApplied
	return output, nil
}

// fund applies an additive funding update and returns the amount that
// actually landed (the clamped delta).
func (uc *ApplyPlanUseCase) fund(ctx context.Context, goal *entity.Goal, amount float64) (float64, error) {
	before := goal.FundedAmount
	after := before + amount
	if after < 0 {
		after = 0
	}

	goal.FundedAmount = after
	goal.UpdatedAt = uc.clock.Now().UTC()
	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		goal.FundedAmount = before
		return 0, err
	}
	return after - before, nil
}
