package allocation

import (
	"math"
	"testing"
	"time"

	"github.com/rc-finance/backend/internal/domain/entity"
	"github.com/rc-finance/backend/internal/domain/valueobject"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func planningGoal(t *testing.T, id int64, name string, remaining float64, due time.Time, impact, priority, fundedPct, stability float64) entity.PlanningGoal {
	t.Helper()

	goal, err := entity.NewPlanningGoal(id, name, remaining, due, impact, priority, fundedPct, stability)
	if err != nil {
		t.Fatalf("unexpected error building planning goal: %v", err)
	}
	return goal
}

func TestComputeScores(t *testing.T) {
	today := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

	t.Run("empty input returns empty slice", func(t *testing.T) {
		scored := ComputeScores(nil, today, valueobject.DefaultWeightSet())
		if len(scored) != 0 {
			t.Errorf("expected empty result, got %d entries", len(scored))
		}
	})

	t.Run("goal due today with maximal hints scores the default-weight sum", func(t *testing.T) {
		goal := planningGoal(t, 1, "emergency fund", 1000, today, 1.0, 1.0, 0.0, 0.0)

		scored := ComputeScores([]entity.PlanningGoal{goal}, today, valueobject.DefaultWeightSet())
		if len(scored) != 1 {
			t.Fatalf("expected 1 scored goal, got %d", len(scored))
		}

		// 0.3*1.0 + 0.2*1.0 + 0.2*1.0 + 0.1*1.0 - 0.2*0.0
		if !approxEqual(scored[0].Score, 0.8) {
			t.Errorf("expected score 0.8, got %v", scored[0].Score)
		}
	})

	t.Run("overdue goal scores the same urgency as a goal due today", func(t *testing.T) {
		dueToday := planningGoal(t, 1, "due today", 100, today, 0.5, 0.5, 0.0, 0.5)
		overdue := planningGoal(t, 2, "overdue", 100, today.AddDate(0, -1, 0), 0.5, 0.5, 0.0, 0.5)

		scored := ComputeScores([]entity.PlanningGoal{dueToday, overdue}, today, valueobject.DefaultWeightSet())
		if !approxEqual(scored[0].Score, scored[1].Score) {
			t.Errorf("expected equal scores, got %v and %v", scored[0].Score, scored[1].Score)
		}
	})

	t.Run("urgency decays linearly toward the horizon", func(t *testing.T) {
		near := planningGoal(t, 1, "near", 100, today.AddDate(0, 0, 73), 0.0, 0.0, 0.0, 1.0)
		far := planningGoal(t, 2, "far", 100, today.AddDate(0, 0, 365), 0.0, 0.0, 0.0, 1.0)

		weights := valueobject.WeightSet{
			valueobject.WeightUrgency:      1.0,
			valueobject.WeightImpact:       0.0,
			valueobject.WeightPriorityUser: 0.0,
			valueobject.WeightStability:    0.0,
			valueobject.WeightFundedPct:    0.0,
		}

		scored := ComputeScores([]entity.PlanningGoal{near, far}, today, weights)

		// 73 days out of 365 leaves 0.8 urgency.
		if !approxEqual(scored[0].Score, 0.8) {
			t.Errorf("expected near-goal score 0.8, got %v", scored[0].Score)
		}
		if !approxEqual(scored[1].Score, 0.0) {
			t.Errorf("expected far-goal score 0, got %v", scored[1].Score)
		}
	})

	t.Run("goal without deadline has zero urgency", func(t *testing.T) {
		goal := planningGoal(t, 1, "someday", 100, time.Time{}, 0.0, 0.0, 0.0, 1.0)

		// Every other factor term is zero for this goal, so the score is
		// exactly the urgency contribution.
		weights := valueobject.WeightSet{valueobject.WeightUrgency: 1.0}
		scored := ComputeScores([]entity.PlanningGoal{goal}, today, weights)

		if scored[0].Score != 0 {
			t.Errorf("expected zero urgency without a deadline, got score %v", scored[0].Score)
		}
	})

	t.Run("negative raw score clamps to zero", func(t *testing.T) {
		goal := planningGoal(t, 1, "fully funded", 1, time.Time{}, 0.0, 0.0, 1.0, 1.0)

		scored := ComputeScores([]entity.PlanningGoal{goal}, today, valueobject.DefaultWeightSet())
		if scored[0].Score != 0 {
			t.Errorf("expected score clamped to 0, got %v", scored[0].Score)
		}
	})

	t.Run("scores are never negative", func(t *testing.T) {
		goals := []entity.PlanningGoal{
			planningGoal(t, 1, "a", 100, today.AddDate(0, 0, 30), 0.9, 0.1, 0.8, 0.2),
			planningGoal(t, 2, "b", 50, time.Time{}, 0.0, 0.0, 1.0, 1.0),
			planningGoal(t, 3, "c", 0, today, 1.0, 1.0, 1.0, 0.0),
		}

		for _, sg := range ComputeScores(goals, today, valueobject.DefaultWeightSet()) {
			if sg.Score < 0 {
				t.Errorf("goal %d: expected non-negative score, got %v", sg.Goal.ID, sg.Score)
			}
		}
	})

	t.Run("results sort by score descending", func(t *testing.T) {
		goals := []entity.PlanningGoal{
			planningGoal(t, 1, "low", 100, time.Time{}, 0.1, 0.1, 0.5, 0.9),
			planningGoal(t, 2, "high", 100, today, 1.0, 1.0, 0.0, 0.0),
			planningGoal(t, 3, "mid", 100, today.AddDate(0, 0, 180), 0.5, 0.5, 0.2, 0.5),
		}

		scored := ComputeScores(goals, today, valueobject.DefaultWeightSet())
		for i := 1; i < len(scored); i++ {
			if scored[i].Score > scored[i-1].Score {
				t.Errorf("position %d: expected descending order, got %v after %v", i, scored[i].Score, scored[i-1].Score)
			}
		}
		if scored[0].Goal.ID != 2 {
			t.Errorf("expected goal 2 first, got goal %d", scored[0].Goal.ID)
		}
	})

	t.Run("equal scores keep their input order", func(t *testing.T) {
		first := planningGoal(t, 10, "first", 100, today, 0.5, 0.5, 0.0, 0.5)
		second := planningGoal(t, 20, "second", 100, today, 0.5, 0.5, 0.0, 0.5)

		scored := ComputeScores([]entity.PlanningGoal{first, second}, today, valueobject.DefaultWeightSet())
		if scored[0].Goal.ID != 10 || scored[1].Goal.ID != 20 {
			t.Errorf("expected input order preserved for ties, got [%d, %d]", scored[0].Goal.ID, scored[1].Goal.ID)
		}
	})

	t.Run("missing weight keys fall back to defaults individually", func(t *testing.T) {
		goal := planningGoal(t, 1, "goal", 100, today, 1.0, 1.0, 0.0, 0.0)

		// Only urgency overridden; the remaining factors use defaults.
		scored := ComputeScores([]entity.PlanningGoal{goal}, today, valueobject.WeightSet{
			valueobject.WeightUrgency: 0.5,
		})

		// 0.5*1.0 + 0.2*1.0 + 0.2*1.0 + 0.1*1.0
		if !approxEqual(scored[0].Score, 1.0) {
			t.Errorf("expected score 1.0, got %v", scored[0].Score)
		}
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		goals := []entity.PlanningGoal{
			planningGoal(t, 1, "low", 100, time.Time{}, 0.1, 0.1, 0.5, 0.9),
			planningGoal(t, 2, "high", 100, today, 1.0, 1.0, 0.0, 0.0),
		}

		ComputeScores(goals, today, valueobject.DefaultWeightSet())
		if goals[0].ID != 1 || goals[1].ID != 2 {
			t.Errorf("expected input order untouched, got [%d, %d]", goals[0].ID, goals[1].ID)
		}
	})
}
