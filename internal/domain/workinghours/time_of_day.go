package workinghours

import (
	"fmt"
	"strings"
	"time"
)

const (
	displayLayout = "15:04"
	storageLayout = "15:04:05.999999999"
)

var parseLayouts = []string{
	"15:04",
	"15:04:05",
	"15:04:05.999999999",
}

// TimeOfDay is a wall-clock time without a date, kept as the offset from midnight.
type TimeOfDay struct {
	offset time.Duration
}

// TimeOfDayOf returns the wall-clock part of t in t's own location
func TimeOfDayOf(t time.Time) TimeOfDay {
	h, m, s := t.Clock()
	return TimeOfDay{
		offset: time.Duration(h)*time.Hour +
			time.Duration(m)*time.Minute +
			time.Duration(s)*time.Second +
			time.Duration(t.Nanosecond()),
	}
}

// NewTimeOfDay builds a time of day from hour and minute
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %02d:%02d is not a time of day", ErrMalformedInput, hour, minute)
	}
	return TimeOfDay{offset: time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute}, nil
}

// ParseTimeOfDay reads "HH:MM", "HH:MM:SS" or "HH:MM:SS.fffffffff"
func ParseTimeOfDay(raw string) (TimeOfDay, error) {
	value := strings.TrimSpace(raw)
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return TimeOfDayOf(t), nil
		}
	}
	return TimeOfDay{}, fmt.Errorf("%w: %q is not a time of day", ErrMalformedInput, raw)
}

// Hour returns the hour within the day, in the range [0, 23]
func (t TimeOfDay) Hour() int {
	return int(t.offset / time.Hour)
}

// Minute returns the minute offset within the hour
func (t TimeOfDay) Minute() int {
	return int(t.offset % time.Hour / time.Minute)
}

// Second returns the second offset within the minute
func (t TimeOfDay) Second() int {
	return int(t.offset % time.Minute / time.Second)
}

// SinceMidnight returns the elapsed time from 00:00
func (t TimeOfDay) SinceMidnight() time.Duration {
	return t.offset
}

func (t TimeOfDay) Before(u TimeOfDay) bool { return t.offset < u.offset }
func (t TimeOfDay) After(u TimeOfDay) bool  { return t.offset > u.offset }
func (t TimeOfDay) Equal(u TimeOfDay) bool  { return t.offset == u.offset }

// Sub returns t-u
func (t TimeOfDay) Sub(u TimeOfDay) time.Duration {
	return t.offset - u.offset
}

// On places the time of day on the date of day, in day's location
func (t TimeOfDay) On(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, day.Location()).Add(t.offset)
}

// Format renders zero-padded 24-hour "HH:MM"
func (t TimeOfDay) Format() string {
	return t.reference().Format(displayLayout)
}

// Storage renders the full-precision form read back by ParseTimeOfDay
func (t TimeOfDay) Storage() string {
	return t.reference().Format(storageLayout)
}

func (t TimeOfDay) String() string {
	return t.Format()
}

func (t TimeOfDay) reference() time.Time {
	return time.Date(0, time.January, 1, 0, 0, 0, 0, time.UTC).Add(t.offset)
}
