package allocation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rc-finance/backend/internal/application/adapter"
	"github.com/rc-finance/backend/internal/domain/valueobject"
)

// GetWeightsInput represents the input for reading a user's weights.
type GetWeightsInput struct {
	UserID uuid.UUID
}

// GetWeightsOutput represents the output of reading a user's weights.
type GetWeightsOutput struct {
	Weights valueobject.WeightSet
}

// GetWeightsUseCase returns the user's effective scoring weights
// (stored values merged over defaults).
type GetWeightsUseCase struct {
	weightRepo adapter.WeightRepository
}

// NewGetWeightsUseCase creates a new GetWeightsUseCase instance.
func NewGetWeightsUseCase(weightRepo adapter.WeightRepository) *GetWeightsUseCase {
	return &GetWeightsUseCase{weightRepo: weightRepo}
}

// Execute reads and merges the user's weights.
func (uc *GetWeightsUseCase) Execute(ctx context.Context, input GetWeightsInput) (*GetWeightsOutput, error) {
	stored, err := uc.weightRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load weights: %w", err)
	}
	return &GetWeightsOutput{Weights: stored.Merged()}, nil
}
