package workinghours

// OpeningTime is the clock-in time of a work session
type OpeningTime struct {
	time TimeOfDay
}

// RecordOpeningTime captures the current time of day when an employee clocks in
func RecordOpeningTime(src TimeSource) OpeningTime {
	return OpeningTime{time: TimeOfDayOf(src.Now())}
}

// ReconstructOpeningTime restores an opening time loaded from storage
func ReconstructOpeningTime(raw string) (OpeningTime, error) {
	tod, err := ParseTimeOfDay(raw)
	if err != nil {
		return OpeningTime{}, err
	}
	return OpeningTime{time: tod}, nil
}

// OpeningTimeAt wraps an already-typed time of day
func OpeningTimeAt(tod TimeOfDay) OpeningTime {
	return OpeningTime{time: tod}
}

// Value returns the wrapped time of day
func (o OpeningTime) Value() TimeOfDay {
	return o.time
}

// String renders "HH:MM", e.g. 9:00 -> "09:00"
func (o OpeningTime) String() string {
	return o.time.Format()
}
