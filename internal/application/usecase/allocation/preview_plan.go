package allocation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rc-finance/backend/internal/application/adapter"
	"github.com/rc-finance/backend/internal/domain/entity"
	domainerror "github.com/rc-finance/backend/internal/domain/error"
	"github.com/rc-finance/backend/internal/domain/valueobject"
)

// PreviewPlanInput represents the input for an allocation preview.
type PreviewPlanInput struct {
	UserID   uuid.UUID
	FreeCash float64

	// Weights optionally overrides the user's stored weights key-by-key
	// for this run only. Nil means "stored weights merged over defaults".
	Weights valueobject.WeightSet
}

// PreviewPlanOutput represents the output of an allocation preview.
type PreviewPlanOutput struct {
	Plan           valueobject.AllocationPlan
	Scored         []valueobject.ScoredGoal
	Goals          map[int64]*entity.Goal
	TotalAllocated float64
	Unallocated    float64
}

// PreviewPlanUseCase computes an allocation plan without persisting anything.
type PreviewPlanUseCase struct {
	goalRepo   adapter.GoalRepository
	weightRepo adapter.WeightRepository
	clock      adapter.Clock
	params     valueobject.AllocationParams
}

// NewPreviewPlanUseCase creates a new PreviewPlanUseCase instance.
func NewPreviewPlanUseCase(
	goalRepo adapter.GoalRepository,
	weightRepo adapter.WeightRepository,
	clock adapter.Clock,
	params valueobject.AllocationParams,
) *PreviewPlanUseCase {
	return &PreviewPlanUseCase{
		goalRepo:   goalRepo,
		weightRepo: weightRepo,
		clock:      clock,
		params:     params,
	}
}

// Execute scores the user's goals and distributes the free cash across them.
func (uc *PreviewPlanUseCase) Execute(ctx context.Context, input PreviewPlanInput) (*PreviewPlanOutput, error) {
	if input.FreeCash < 0 {
		return nil, domainerror.NewAllocationError(
			domainerror.ErrCodeInvalidFreeCash,
			"free cash must not be negative",
			domainerror.ErrInvalidFreeCash,
		)
	}

	goals, err := uc.goalRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	weights, err := uc.resolveWeights(ctx, input)
	if err != nil {
		return nil, err
	}

	planningGoals := make([]entity.PlanningGoal, 0, len(goals))
	byID := make(map[int64]*entity.Goal, len(goals))
	for _, g := range goals {
		pg, err := g.PlanningGoal()
		if err != nil {
			return nil, fmt.Errorf("goal %d is not plannable: %w", g.ID, err)
		}
		planningGoals = append(planningGoals, pg)
		byID[g.ID] = g
	}

	scored := ComputeScores(planningGoals, uc.clock.Now(), weights)
	plan := Allocate(input.FreeCash, scored, uc.params)
	total := plan.Total()

	return &PreviewPlanOutput{
		Plan:           plan,
		Scored:         scored,
		Goals:          byID,
		TotalAllocated: total,
		Unallocated:    input.FreeCash - total,
	}, nil
}

// resolveWeights merges the run overrides over the user's stored weights.
func (uc *PreviewPlanUseCase) resolveWeights(ctx context.Context, input PreviewPlanInput) (valueobject.WeightSet, error) {
	stored, err := uc.weightRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load weights: %w", err)
	}

	weights := stored.Clone()
	if weights == nil {
		weights = valueobject.WeightSet{}
	}
	for key, value := range input.Weights {
		if value < 0 {
			return nil, domainerror.NewAllocationError(
				domainerror.ErrCodeInvalidWeight,
				"weight for "+key+" must not be negative",
				domainerror.ErrInvalidWeight,
			)
		}
		weights[key] = value
	}
	return weights, nil
}
