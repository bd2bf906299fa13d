package workinghours

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/jonboulle/clockwork"
)

// DefaultTimezone is the zone attendance is recorded in unless configured otherwise.
const DefaultTimezone = "Asia/Tokyo"

// TimeSource provides the current instant
type TimeSource interface {
	Now() time.Time
}

// Clock is a TimeSource that reports instants in a fixed location
type Clock struct {
	clock    clockwork.Clock
	location *time.Location
}

// NewClock wraps clock so every instant it reports is expressed in loc
func NewClock(clock clockwork.Clock, loc *time.Location) *Clock {
	if loc == nil {
		loc = time.UTC
	}
	return &Clock{clock: clock, location: loc}
}

// NewSystemClock returns a Clock backed by the real system time
func NewSystemClock(loc *time.Location) *Clock {
	return NewClock(clockwork.NewRealClock(), loc)
}

// Now returns the current instant in the clock's location
func (c *Clock) Now() time.Time {
	return c.clock.Now().In(c.location)
}

// Location returns the location instants are reported in
func (c *Clock) Location() *time.Location {
	return c.location
}

// LoadLocation resolves a zone name such as "Asia/Tokyo"
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown timezone %q: %v", ErrMalformedInput, name, err)
	}
	return loc, nil
}

// FixedTime is a TimeSource frozen at a single instant. It lets one reading of a
// clock feed both the work date and the recorded time of day.
type FixedTime time.Time

// Now returns the frozen instant
func (f FixedTime) Now() time.Time {
	return time.Time(f)
}
