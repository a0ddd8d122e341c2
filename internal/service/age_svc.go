package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/lukastechs/youtube-backend/internal/model"
)

// AgeService computes channel account age. Pure and deterministic given the
// "now" instant, so callers inject the clock.
type AgeService struct{}

func NewAgeService() *AgeService {
	return &AgeService{}
}

// ComputeAge returns the civil-calendar age (years/months/days with day
// borrowing from the previous calendar month of now) alongside a flat count
// of whole elapsed days. A creation instant in the future produces
// sign-correct negative components; nothing is clamped.
func (s *AgeService) ComputeAge(created, now time.Time) model.AccountAge {
	years := now.Year() - created.Year()
	months := int(now.Month()) - int(created.Month())
	days := now.Day() - created.Day()

	if days < 0 {
		months--
		days += daysInPreviousMonth(now)
	}
	if months < 0 {
		years--
		months += 12
	}

	totalDays := now.Sub(created).Milliseconds() / millisPerDay

	return model.AccountAge{
		Formatted: formatAge(years, months, days),
		Days:      totalDays,
	}
}

const millisPerDay = 24 * 60 * 60 * 1000

// daysInPreviousMonth returns the day count of the calendar month preceding
// t's month (e.g. 29 for a March date in a leap year).
func daysInPreviousMonth(t time.Time) int {
	// Day 0 of the current month normalizes to the last day of the
	// previous month.
	return time.Date(t.Year(), t.Month(), 0, 0, 0, 0, 0, t.Location()).Day()
}

func formatAge(years, months, days int) string {
	parts := []string{
		plural(years, "year"),
		plural(months, "month"),
		plural(days, "day"),
	}
	return strings.Join(parts, ", ")
}

func plural(n int, unit string) string {
	if n == 1 || n == -1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
