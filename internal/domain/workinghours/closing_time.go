package workinghours

// ClosingTime is the clock-out time of a work session
type ClosingTime struct {
	time TimeOfDay
}

// RecordClosingTime captures the current time of day when an employee clocks out
func RecordClosingTime(src TimeSource) ClosingTime {
	return ClosingTime{time: TimeOfDayOf(src.Now())}
}

// ReconstructClosingTime restores a closing time loaded from storage
func ReconstructClosingTime(raw string) (ClosingTime, error) {
	tod, err := ParseTimeOfDay(raw)
	if err != nil {
		return ClosingTime{}, err
	}
	return ClosingTime{time: tod}, nil
}

// ClosingTimeAt wraps an already-typed time of day
func ClosingTimeAt(tod TimeOfDay) ClosingTime {
	return ClosingTime{time: tod}
}

// Value returns the wrapped time of day
func (c ClosingTime) Value() TimeOfDay {
	return c.time
}

// String renders "HH:MM", e.g. 17:30 -> "17:30"
func (c ClosingTime) String() string {
	return c.time.Format()
}
