package clock

import (
	"time"

	"github.com/kamal-hamza/sitegen/internal/core/ports"
)

// System reads the wall clock
type System struct{}

// NewSystem creates the production clock
func NewSystem() System {
	return System{}
}

// Ensure it implements the interface
var _ ports.Clock = System{}

// Now returns the current local time
func (System) Now() time.Time {
	return time.Now()
}
