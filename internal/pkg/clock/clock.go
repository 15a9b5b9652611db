// Package clock provides the time source for campaign timestamps
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/KirkDiggler/rpg-compendium/internal/pkg/clock Clock

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current UTC time truncated to the second, which is the
// precision campaign timestamps are stored with.
func (c *Real) Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}
