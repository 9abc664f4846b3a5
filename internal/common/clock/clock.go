package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/cribbage/internal/common/clock Clock

// Clock supplies match start, finish and score record times
type Clock interface {
	Now() time.Time
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct{}

// Now returns the current time in UTC
func (c *DefaultClock) Now() time.Time {
	return time.Now().UTC()
}

// Fixed always reports the same instant; seeded replays use it so that
// recorded results are reproducible
type Fixed struct {
	T time.Time
}

func (c *Fixed) Now() time.Time {
	return c.T
}
