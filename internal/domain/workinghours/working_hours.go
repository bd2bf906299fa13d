package workinghours

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// hoursScale is the number of decimal places kept when converting minutes to hours.
// Values such as 20 minutes (1/3 hour) must still round correctly at two places.
const hoursScale = 16

var minutesPerHour = decimal.NewFromInt(60)

// WorkingHours is the attendance duration of a session:
// (closing - opening) + remote adjustment.
//
// All rules about the duration live here:
//   - the opening must not be after the closing (same-day sessions only)
//   - the duration is the difference between closing and opening in whole minutes
//   - the remote adjustment is added on top
type WorkingHours struct {
	hours decimal.Decimal
}

// WorkingHoursFrom derives working hours from a session
func WorkingHoursFrom(opening OpeningTime, closing ClosingTime, adjustment RemoteAdjustmentHours) (WorkingHours, error) {
	if opening.Value().After(closing.Value()) {
		return WorkingHours{}, fmt.Errorf("%w: opening %s is after closing %s",
			ErrInvalidArgument, opening, closing)
	}

	minutes := decimal.NewFromInt(int64(closing.Value().Sub(opening.Value()) / time.Minute))
	hours := minutes.DivRound(minutesPerHour, hoursScale)

	return WorkingHours{hours: hours.Add(adjustment.Value())}, nil
}

// ReconstructWorkingHours wraps a stored total without recomputing or validating it
func ReconstructWorkingHours(hours decimal.Decimal) WorkingHours {
	return WorkingHours{hours: hours}
}

// ParseWorkingHours reads a stored decimal total
func ParseWorkingHours(raw string) (WorkingHours, error) {
	hours, err := parseDecimal(raw)
	if err != nil {
		return WorkingHours{}, err
	}
	return WorkingHours{hours: hours}, nil
}

// ZeroWorkingHours is the identity for Add
func ZeroWorkingHours() WorkingHours {
	return WorkingHours{hours: decimal.Zero}
}

// SumWorkingHours adds up daily totals into a period total
func SumWorkingHours(all ...WorkingHours) WorkingHours {
	total := ZeroWorkingHours()
	for _, wh := range all {
		total = total.Add(wh)
	}
	return total
}

// Value returns the duration in hours, e.g. 8h45m -> 8.75
func (w WorkingHours) Value() decimal.Decimal {
	return w.hours
}

// Add returns the sum of both totals
func (w WorkingHours) Add(other WorkingHours) WorkingHours {
	return WorkingHours{hours: w.hours.Add(other.hours)}
}

// String renders two decimals, e.g. 6 -> "6.00"
func (w WorkingHours) String() string {
	return w.hours.StringFixed(2)
}
