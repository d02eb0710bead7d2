package allocation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/rc-finance/backend/internal/domain/entity"
	domainerror "github.com/rc-finance/backend/internal/domain/error"
	"github.com/rc-finance/backend/internal/domain/valueobject"
)

func seedGoal(t *testing.T, repo *fakeGoalRepository, userID uuid.UUID, name string, target, funded float64, due *time.Time, impact float64) *entity.Goal {
	t.Helper()

	goal := entity.NewGoal(userID, name, target, due)
	goal.FundedAmount = funded
	goal.Impact = impact
	if err := repo.Create(context.Background(), goal); err != nil {
		t.Fatalf("failed to seed goal: %v", err)
	}
	return goal
}

func newPreviewUseCase(goalRepo *fakeGoalRepository, weightRepo *fakeWeightRepository, now time.Time) *PreviewPlanUseCase {
	return NewPreviewPlanUseCase(goalRepo, weightRepo, fixedClock{now: now}, valueobject.DefaultAllocationParams())
}

func TestPreviewPlanUseCase_Execute(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("rejects negative free cash", func(t *testing.T) {
		uc := newPreviewUseCase(newFakeGoalRepository(), newFakeWeightRepository(), now)

		_, err := uc.Execute(ctx, PreviewPlanInput{UserID: uuid.New(), FreeCash: -1})
		if !errors.Is(err, domainerror.ErrInvalidFreeCash) {
			t.Errorf("expected ErrInvalidFreeCash, got %v", err)
		}
	})

	t.Run("rejects negative weight override", func(t *testing.T) {
		uc := newPreviewUseCase(newFakeGoalRepository(), newFakeWeightRepository(), now)

		_, err := uc.Execute(ctx, PreviewPlanInput{
			UserID:   uuid.New(),
			FreeCash: 100,
			Weights:  valueobject.WeightSet{valueobject.WeightUrgency: -0.1},
		})
		if !errors.Is(err, domainerror.ErrInvalidWeight) {
			t.Errorf("expected ErrInvalidWeight, got %v", err)
		}
	})

	t.Run("user without goals gets an empty plan", func(t *testing.T) {
		uc := newPreviewUseCase(newFakeGoalRepository(), newFakeWeightRepository(), now)

		out, err := uc.Execute(ctx, PreviewPlanInput{UserID: uuid.New(), FreeCash: 100})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Plan) != 0 {
			t.Errorf("expected empty plan, got %v", out.Plan)
		}
		if out.Unallocated != 100 {
			t.Errorf("expected 100 unallocated, got %v", out.Unallocated)
		}
	})

	t.Run("allocates free cash across the user's goals", func(t *testing.T) {
		goalRepo := newFakeGoalRepository()
		userID := uuid.New()
		due := now.AddDate(0, 1, 0)
		urgent := seedGoal(t, goalRepo, userID, "car repair", 100, 0, &due, 0.5)
		someday := seedGoal(t, goalRepo, userID, "vacation", 500, 0, nil, 0.5)

		uc := newPreviewUseCase(goalRepo, newFakeWeightRepository(), now)
		out, err := uc.Execute(ctx, PreviewPlanInput{UserID: userID, FreeCash: 100})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(out.Plan) != 2 {
			t.Fatalf("expected both goals in the plan, got %v", out.Plan)
		}
		if out.Plan[urgent.ID] <= out.Plan[someday.ID] {
			t.Errorf("expected the urgent goal to receive more, got %v vs %v", out.Plan[urgent.ID], out.Plan[someday.ID])
		}
		if !approxEqual(out.TotalAllocated+out.Unallocated, 100) {
			t.Errorf("expected totals to add up to 100, got %v + %v", out.TotalAllocated, out.Unallocated)
		}
		if out.Scored[0].Goal.ID != urgent.ID {
			t.Errorf("expected urgent goal scored first, got goal %d", out.Scored[0].Goal.ID)
		}
	})

	t.Run("preview does not persist funding", func(t *testing.T) {
		goalRepo := newFakeGoalRepository()
		userID := uuid.New()
		goal := seedGoal(t, goalRepo, userID, "emergency fund", 100, 0, nil, 1.0)

		uc := newPreviewUseCase(goalRepo, newFakeWeightRepository(), now)
		if _, err := uc.Execute(ctx, PreviewPlanInput{UserID: userID, FreeCash: 100}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, err := goalRepo.FindByID(ctx, goal.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.FundedAmount != 0 {
			t.Errorf("expected funded amount untouched, got %v", stored.FundedAmount)
		}
	})

	t.Run("only the requesting user's goals participate", func(t *testing.T) {
		goalRepo := newFakeGoalRepository()
		userID := uuid.New()
		mine := seedGoal(t, goalRepo, userID, "mine", 100, 0, nil, 1.0)
		other := seedGoal(t, goalRepo, uuid.New(), "theirs", 100, 0, nil, 1.0)

		uc := newPreviewUseCase(goalRepo, newFakeWeightRepository(), now)
		out, err := uc.Execute(ctx, PreviewPlanInput{UserID: userID, FreeCash: 100})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, ok := out.Plan[other.ID]; ok {
			t.Error("expected another user's goal to be excluded")
		}
		if !approxEqual(out.Plan[mine.ID], 100) {
			t.Errorf("expected own goal to receive 100, got %v", out.Plan[mine.ID])
		}
	})

	t.Run("run overrides take precedence over stored weights", func(t *testing.T) {
		goalRepo := newFakeGoalRepository()
		weightRepo := newFakeWeightRepository()
		userID := uuid.New()

		due := now // due today
		urgent := seedGoal(t, goalRepo, userID, "urgent", 100, 0, &due, 0.0)
		impactful := seedGoal(t, goalRepo, userID, "impactful", 100, 0, nil, 1.0)

		// Stored weights favour urgency exclusively.
		if err := weightRepo.Save(ctx, userID, valueobject.WeightSet{
			valueobject.WeightUrgency:      1.0,
			valueobject.WeightImpact:       0.0,
			valueobject.WeightPriorityUser: 0.0,
			valueobject.WeightStability:    0.0,
			valueobject.WeightFundedPct:    0.0,
		}); err != nil {
			t.Fatalf("failed to seed weights: %v", err)
		}

		uc := newPreviewUseCase(goalRepo, weightRepo, now)

		// Without overrides only the urgent goal scores.
		out, err := uc.Execute(ctx, PreviewPlanInput{UserID: userID, FreeCash: 100})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := out.Plan[impactful.ID]; ok {
			t.Errorf("expected impact-only goal excluded under stored weights, got %v", out.Plan)
		}

		// Overriding for the run flips the preference.
		out, err = uc.Execute(ctx, PreviewPlanInput{
			UserID:   userID,
			FreeCash: 100,
			Weights: valueobject.WeightSet{
				valueobject.WeightUrgency: 0.0,
				valueobject.WeightImpact:  1.0,
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := out.Plan[urgent.ID]; ok {
			t.Errorf("expected urgency-only goal excluded under overrides, got %v", out.Plan)
		}
		if !approxEqual(out.Plan[impactful.ID], 100) {
			t.Errorf("expected impactful goal to receive 100, got %v", out.Plan[impactful.ID])
		}
	})
}
