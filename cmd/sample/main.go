package main

import (
	"fmt"
	"os"

	"github.com/alimgiray/timecard/internal/domain/workinghours"
	"github.com/alimgiray/timecard/pkg/logger"
	"github.com/shopspring/decimal"
)

// Prints the four renderings for a session that opens and closes now
func main() {
	logger.Init(os.Getenv("LOG_LEVEL"))

	location, err := workinghours.LoadLocation(os.Getenv("TIMEZONE"))
	if err != nil {
		logger.Fatalf("Invalid timezone: %v", err)
	}
	clock := workinghours.NewSystemClock(location)

	opening := workinghours.RecordOpeningTime(clock)
	closing := workinghours.RecordClosingTime(clock)

	adjustment, err := workinghours.ReconstructRemoteAdjustmentHours(decimal.RequireFromString("0.5"))
	if err != nil {
		logger.Fatalf("Invalid adjustment: %v", err)
	}

	worked, err := workinghours.WorkingHoursFrom(opening, closing, adjustment)
	if err != nil {
		logger.Fatalf("Failed to compute working hours: %v", err)
	}

	fmt.Println("opening:", opening)
	fmt.Println("closing:", closing)
	fmt.Println("remote adjustment:", adjustment)
	fmt.Println("working hours:", worked)
}
