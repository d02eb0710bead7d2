package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/rc-finance/backend/internal/domain/valueobject"
)

// WeightRepository defines persistence for per-user scoring weights.
type WeightRepository interface {
	// FindByUserID returns the user's stored weights. Users with no stored
	// weights get an empty set; defaults are merged in by the caller.
	FindByUserID(ctx context.Context, userID uuid.UUID) (valueobject.WeightSet, error)

	// Save upserts the user's weight set, one row per factor.
	Save(ctx context.Context, userID uuid.UUID, weights valueobject.WeightSet) error
}
