package allocation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	domainerror "github.com/rc-finance/backend/internal/domain/error"
	"github.com/rc-finance/backend/internal/domain/valueobject"
)

func TestApplyPlanUseCase_Execute(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	setup := func() (*ApplyPlanUseCase, *fakeGoalRepository, *fakeFundingHistoryRepository) {
		goalRepo := newFakeGoalRepository()
		historyRepo := &fakeFundingHistoryRepository{}
		preview := newPreviewUseCase(goalRepo, newFakeWeightRepository(), now)
		uc := NewApplyPlanUseCase(preview, goalRepo, historyRepo, fixedClock{now: now})
		return uc, goalRepo, historyRepo
	}

	t.Run("rejects negative free cash", func(t *testing.T) {
		uc, _, _ := setup()

		_, err := uc.Execute(ctx, ApplyPlanInput{UserID: uuid.New(), FreeCash: -10})
		if !errors.Is(err, domainerror.ErrInvalidFreeCash) {
			t.Errorf("expected ErrInvalidFreeCash, got %v", err)
		}
	})

	t.Run("funds goals and records history", func(t *testing.T) {
		uc, goalRepo, historyRepo := setup()
		userID := uuid.New()
		goal := seedGoal(t, goalRepo, userID, "emergency fund", 100, 20, nil, 1.0)

		out, err := uc.Execute(ctx, ApplyPlanInput{UserID: userID, FreeCash: 50})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(out.Applied) != 1 {
			t.Fatalf("expected 1 applied goal, got %d", len(out.Applied))
		}
		applied := out.Applied[0]
		if applied.GoalID != goal.ID {
			t.Errorf("expected goal %d, got %d", goal.ID, applied.GoalID)
		}
		if !approxEqual(applied.Amount, 50) {
			t.Errorf("expected 50 applied, got %v", applied.Amount)
		}
		if !approxEqual(applied.FundedAmount, 70) {
			t.Errorf("expected funded amount 70, got %v", applied.FundedAmount)
		}
		if !approxEqual(applied.Progress, 0.7) {
			t.Errorf("expected progress 0.7, got %v", applied.Progress)
		}

		stored, err := goalRepo.FindByID(ctx, goal.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !approxEqual(stored.FundedAmount, 70) {
			t.Errorf("expected persisted funded amount 70, got %v", stored.FundedAmount)
		}

		if len(historyRepo.records) != 1 {
			t.Fatalf("expected 1 history record, got %d", len(historyRepo.records))
		}
		record := historyRepo.records[0]
		if record.Month != "2025-06" {
			t.Errorf("expected month 2025-06, got %s", record.Month)
		}
		if !approxEqual(record.PlannedAmount, 50) || !approxEqual(record.ActualAmount, 50) {
			t.Errorf("expected planned and actual 50, got %v and %v", record.PlannedAmount, record.ActualAmount)
		}
	})

	t.Run("applies in goal ID order", func(t *testing.T) {
		uc, goalRepo, _ := setup()
		userID := uuid.New()
		first := seedGoal(t, goalRepo, userID, "first", 100, 0, nil, 0.5)
		second := seedGoal(t, goalRepo, userID, "second", 100, 0, nil, 0.9)

		out, err := uc.Execute(ctx, ApplyPlanInput{UserID: userID, FreeCash: 100})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(out.Applied) != 2 {
			t.Fatalf("expected 2 applied goals, got %d", len(out.Applied))
		}
		if out.Applied[0].GoalID != first.ID || out.Applied[1].GoalID != second.ID {
			t.Errorf("expected applied order [%d, %d], got [%d, %d]",
				first.ID, second.ID, out.Applied[0].GoalID, out.Applied[1].GoalID)
		}
	})

	t.Run("amounts are rounded to cents", func(t *testing.T) {
		uc, goalRepo, historyRepo := setup()
		userID := uuid.New()

		// Equal coefficients split 100 three ways, 33.333... each.
		for i := 0; i < 3; i++ {
			seedGoal(t, goalRepo, userID, "goal", 1000, 0, nil, 0.5)
		}

		out, err := uc.Execute(ctx, ApplyPlanInput{UserID: userID, FreeCash: 100})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for _, applied := range out.Applied {
			cents := applied.Amount * 100
			if !approxEqual(cents, float64(int64(cents+0.5))) {
				t.Errorf("goal %d: expected cent-aligned amount, got %v", applied.GoalID, applied.Amount)
			}
		}
		for _, record := range historyRepo.records {
			if record.ActualAmount > record.PlannedAmount+1e-9 {
				t.Errorf("expected actual at most planned, got %v vs %v", record.ActualAmount, record.PlannedAmount)
			}
		}
	})

	t.Run("sufficient cash leaves the surplus unallocated", func(t *testing.T) {
		uc, goalRepo, _ := setup()
		userID := uuid.New()
		seedGoal(t, goalRepo, userID, "small", 30, 0, nil, 1.0)

		out, err := uc.Execute(ctx, ApplyPlanInput{UserID: userID, FreeCash: 100})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !approxEqual(out.TotalApplied, 30) {
			t.Errorf("expected 30 applied, got %v", out.TotalApplied)
		}
		if !approxEqual(out.Unallocated, 70) {
			t.Errorf("expected 70 unallocated, got %v", out.Unallocated)
		}
	})

	t.Run("update failure surfaces and stops the run", func(t *testing.T) {
		uc, goalRepo, historyRepo := setup()
		userID := uuid.New()
		seedGoal(t, goalRepo, userID, "goal", 100, 0, nil, 1.0)
		goalRepo.updateErr = errors.New("storage unavailable")

		_, err := uc.Execute(ctx, ApplyPlanInput{UserID: userID, FreeCash: 50})
		if err == nil {
			t.Fatal("expected an error")
		}
		if len(historyRepo.records) != 0 {
			t.Errorf("expected no history records after a failed update, got %d", len(historyRepo.records))
		}
	})

	t.Run("weight overrides flow through to the plan", func(t *testing.T) {
		uc, goalRepo, _ := setup()
		userID := uuid.New()
		seedGoal(t, goalRepo, userID, "ignored", 100, 0, nil, 0.0)
		favoured := seedGoal(t, goalRepo, userID, "favoured", 100, 0, nil, 1.0)

		out, err := uc.Execute(ctx, ApplyPlanInput{
			UserID:   userID,
			FreeCash: 100,
			Weights: valueobject.WeightSet{
				valueobject.WeightUrgency:      0.0,
				valueobject.WeightImpact:       1.0,
				valueobject.WeightPriorityUser: 0.0,
				valueobject.WeightStability:    0.0,
				valueobject.WeightFundedPct:    0.0,
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(out.Applied) != 1 || out.Applied[0].GoalID != favoured.ID {
			t.Errorf("expected only the favoured goal funded, got %+v", out.Applied)
		}
	})
}
