package allocation

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/rc-finance/backend/internal/domain/entity"
	domainerror "github.com/rc-finance/backend/internal/domain/error"
	"github.com/rc-finance/backend/internal/domain/valueobject"
)

// In-memory test doubles for the persistence adapters.

type fakeGoalRepository struct {
	goals     map[int64]*entity.Goal
	nextID    int64
	updateErr error
}

func newFakeGoalRepository() *fakeGoalRepository {
	return &fakeGoalRepository{goals: make(map[int64]*entity.Goal)}
}

func (r *fakeGoalRepository) Create(_ context.Context, goal *entity.Goal) error {
	r.nextID++
	goal.ID = r.nextID
	stored := *goal
	r.goals[goal.ID] = &stored
	return nil
}

func (r *fakeGoalRepository) FindByID(_ context.Context, id int64) (*entity.Goal, error) {
	goal, ok := r.goals[id]
	if !ok {
		return nil, domainerror.ErrGoalNotFound
	}
	copied := *goal
	return &copied, nil
}

func (r *fakeGoalRepository) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	var result []*entity.Goal
	for _, goal := range r.goals {
		if goal.UserID == userID {
			copied := *goal
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *fakeGoalRepository) Update(_ context.Context, goal *entity.Goal) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.goals[goal.ID]; !ok {
		return domainerror.ErrGoalNotFound
	}
	stored := *goal
	r.goals[goal.ID] = &stored
	return nil
}

func (r *fakeGoalRepository) Delete(_ context.Context, id int64) error {
	if _, ok := r.goals[id]; !ok {
		return domainerror.ErrGoalNotFound
	}
	delete(r.goals, id)
	return nil
}

type fakeWeightRepository struct {
	weights map[uuid.UUID]valueobject.WeightSet
	saves   int
}

func newFakeWeightRepository() *fakeWeightRepository {
	return &fakeWeightRepository{weights: make(map[uuid.UUID]valueobject.WeightSet)}
}

func (r *fakeWeightRepository) FindByUserID(_ context.Context, userID uuid.UUID) (valueobject.WeightSet, error) {
	stored, ok := r.weights[userID]
	if !ok {
		return valueobject.WeightSet{}, nil
	}
	return stored.Clone(), nil
}

func (r *fakeWeightRepository) Save(_ context.Context, userID uuid.UUID, weights valueobject.WeightSet) error {
	r.weights[userID] = weights.Clone()
	r.saves++
	return nil
}

type fakeFundingHistoryRepository struct {
	records []*entity.FundingRecord
}

func (r *fakeFundingHistoryRepository) Create(_ context.Context, record *entity.FundingRecord) error {
	copied := *record
	copied.ID = int64(len(r.records) + 1)
	r.records = append(r.records, &copied)
	return nil
}

func (r *fakeFundingHistoryRepository) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.FundingRecord, error) {
	var result []*entity.FundingRecord
	for _, record := range r.records {
		if record.UserID == userID {
			result = append(result, record)
		}
	}
	return result, nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}
