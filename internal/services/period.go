package services

import (
	"fmt"
	"time"

	"github.com/alimgiray/timecard/internal/domain/workinghours"
	"github.com/alimgiray/timecard/internal/models"
)

// parseWorkDate validates a YYYY-MM-DD date
func parseWorkDate(raw string) (time.Time, error) {
	d, err := time.Parse(models.WorkDateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a date (YYYY-MM-DD)", workinghours.ErrMalformedInput, raw)
	}
	return d, nil
}

// validatePeriod checks both ends of an inclusive date range
func validatePeriod(from, to string) error {
	start, err := parseWorkDate(from)
	if err != nil {
		return err
	}
	end, err := parseWorkDate(to)
	if err != nil {
		return err
	}
	if start.After(end) {
		return fmt.Errorf("%w: period starts %s after it ends %s", workinghours.ErrInvalidArgument, from, to)
	}
	return nil
}
