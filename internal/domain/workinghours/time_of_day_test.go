package workinghours

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		hour    int
		minute  int
		second  int
		wantErr bool
	}{
		{name: "hours and minutes", raw: "09:00", hour: 9},
		{name: "with seconds", raw: "17:30:15", hour: 17, minute: 30, second: 15},
		{name: "with fraction", raw: "08:05:01.25", hour: 8, minute: 5, second: 1},
		{name: "surrounding space", raw: " 12:45 ", hour: 12, minute: 45},
		{name: "midnight", raw: "00:00", hour: 0},
		{name: "hour out of range", raw: "24:00", wantErr: true},
		{name: "minute out of range", raw: "10:60", wantErr: true},
		{name: "not a time", raw: "nine", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tod, err := ParseTimeOfDay(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.hour, tod.Hour())
			assert.Equal(t, tt.minute, tod.Minute())
			assert.Equal(t, tt.second, tod.Second())
		})
	}
}

func TestTimeOfDayFormat(t *testing.T) {
	tests := []struct {
		hour, minute int
		expected     string
	}{
		{9, 0, "09:00"},
		{9, 30, "09:30"},
		{17, 0, "17:00"},
		{17, 30, "17:30"},
		{0, 5, "00:05"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			tod, err := NewTimeOfDay(tt.hour, tt.minute)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tod.Format())
		})
	}
}

func TestTimeOfDayStorageRoundTrip(t *testing.T) {
	original := TimeOfDayOf(time.Date(2024, time.May, 2, 13, 7, 42, 500_000_000, time.UTC))
	assert.Equal(t, "13:07:42.5", original.Storage())

	restored, err := ParseTimeOfDay(original.Storage())
	require.NoError(t, err)
	assert.True(t, original.Equal(restored))
}

func TestTimeOfDayOfIgnoresDate(t *testing.T) {
	a := TimeOfDayOf(time.Date(2020, time.January, 1, 10, 0, 0, 0, time.UTC))
	b := TimeOfDayOf(time.Date(2031, time.December, 31, 10, 0, 0, 0, time.UTC))
	assert.True(t, a.Equal(b))
}

func TestTimeOfDayOrdering(t *testing.T) {
	nine, _ := NewTimeOfDay(9, 0)
	five, _ := NewTimeOfDay(17, 0)

	assert.True(t, nine.Before(five))
	assert.True(t, five.After(nine))
	assert.Equal(t, 8*time.Hour, five.Sub(nine))
	assert.Equal(t, 9*time.Hour, nine.SinceMidnight())
}

func TestTimeOfDayOn(t *testing.T) {
	tod, _ := NewTimeOfDay(9, 15)
	day := time.Date(2024, time.March, 4, 22, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, time.March, 4, 9, 15, 0, 0, time.UTC), tod.On(day))
}

func TestNewTimeOfDayRejectsOutOfRange(t *testing.T) {
	_, err := NewTimeOfDay(-1, 0)
	assert.ErrorIs(t, err, ErrMalformedInput)
	_, err = NewTimeOfDay(12, 75)
	assert.ErrorIs(t, err, ErrMalformedInput)
}
