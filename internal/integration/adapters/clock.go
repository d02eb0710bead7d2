// Package adapters implements application adapter interfaces backed by
// system services.
package adapters

import (
	"time"

	"github.com/rc-finance/backend/internal/application/adapter"
)

// systemClock implements adapter.Clock with the wall clock.
type systemClock struct{}

// NewSystemClock creates a Clock backed by time.Now.
func NewSystemClock() adapter.Clock {
	return systemClock{}
}

// Now returns the current UTC time.
func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
