package workinghours

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AdjustmentRange bounds the remote adjustment an employee may claim for a session.
// The bounds are inclusive.
type AdjustmentRange struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// DefaultAdjustmentRange allows 0 to 8 hours.
// The business rule is provisional and can be overridden through configuration.
var DefaultAdjustmentRange = AdjustmentRange{
	Min: decimal.Zero,
	Max: decimal.NewFromInt(8),
}

// NewAdjustmentRange validates and builds a range
func NewAdjustmentRange(min, max decimal.Decimal) (AdjustmentRange, error) {
	if min.IsNegative() {
		return AdjustmentRange{}, fmt.Errorf("%w: minimum adjustment %s is negative", ErrInvalidArgument, min)
	}
	if min.GreaterThan(max) {
		return AdjustmentRange{}, fmt.Errorf("%w: minimum adjustment %s exceeds maximum %s", ErrInvalidArgument, min, max)
	}
	return AdjustmentRange{Min: min, Max: max}, nil
}

// Contains reports whether hours lies inside the range
func (r AdjustmentRange) Contains(hours decimal.Decimal) bool {
	return hours.GreaterThanOrEqual(r.Min) && hours.LessThanOrEqual(r.Max)
}

// Reconstruct restores a remote adjustment, rejecting values outside the range
func (r AdjustmentRange) Reconstruct(hours decimal.Decimal) (RemoteAdjustmentHours, error) {
	if !r.Contains(hours) {
		return RemoteAdjustmentHours{}, fmt.Errorf("%w: remote adjustment %s is outside [%s, %s]",
			ErrInvalidArgument, hours, r.Min.StringFixed(2), r.Max.StringFixed(2))
	}
	return RemoteAdjustmentHours{hours: hours}, nil
}

// Parse reads a decimal string and validates it against the range
func (r AdjustmentRange) Parse(raw string) (RemoteAdjustmentHours, error) {
	hours, err := parseDecimal(raw)
	if err != nil {
		return RemoteAdjustmentHours{}, err
	}
	return r.Reconstruct(hours)
}

// RemoteAdjustmentHours is remote work time added on top of the clocked duration
type RemoteAdjustmentHours struct {
	hours decimal.Decimal
}

// ReconstructRemoteAdjustmentHours validates hours against DefaultAdjustmentRange
func ReconstructRemoteAdjustmentHours(hours decimal.Decimal) (RemoteAdjustmentHours, error) {
	return DefaultAdjustmentRange.Reconstruct(hours)
}

// ParseRemoteAdjustmentHours reads raw and validates it against DefaultAdjustmentRange
func ParseRemoteAdjustmentHours(raw string) (RemoteAdjustmentHours, error) {
	return DefaultAdjustmentRange.Parse(raw)
}

// NoRemoteAdjustment is a zero-hour adjustment
func NoRemoteAdjustment() RemoteAdjustmentHours {
	return RemoteAdjustmentHours{hours: decimal.Zero}
}

// Value returns the adjustment in hours, e.g. 1h30m -> 1.5
func (r RemoteAdjustmentHours) Value() decimal.Decimal {
	return r.hours
}

// String renders two decimals, e.g. 1.5 -> "1.50"
func (r RemoteAdjustmentHours) String() string {
	return r.hours.StringFixed(2)
}

func parseDecimal(raw string) (decimal.Decimal, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return decimal.Zero, fmt.Errorf("%w: empty decimal", ErrMalformedInput)
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a decimal", ErrMalformedInput, raw)
	}
	return d, nil
}
