package services

import (
	"fmt"
	"time"

	"github.com/agora-dev/teko-board/backend/internal/models"
)

// DateLayout is the fixed-width calendar-day format used everywhere an
// assignment date is stored or compared. Lexicographic comparison of two
// dates in this layout matches chronological order.
const DateLayout = "2006-01-02"

// weekdayNames maps time.Weekday (0=Sunday .. 6=Saturday) to the Japanese
// single-character weekday label.
var weekdayNames = [7]string{"日", "月", "火", "水", "木", "金", "土"}

// DaySplit is the result of partitioning an assignment list around a
// reference date. Upcoming and Past are disjoint and together cover the
// input; Today is always a subset of Upcoming.
type DaySplit struct {
	Upcoming []models.Assignment `json:"upcoming"`
	Past     []models.Assignment `json:"past"`
	Today    []models.Assignment `json:"today"`
}

// SplitByDate partitions assignments around refDate, preserving the input
// order within each subset. Dates are compared as YYYY-MM-DD strings.
func SplitByDate(assignments []models.Assignment, refDate string) DaySplit {
	split := DaySplit{
		Upcoming: []models.Assignment{},
		Past:     []models.Assignment{},
		Today:    []models.Assignment{},
	}

	for _, a := range assignments {
		if a.Date >= refDate {
			split.Upcoming = append(split.Upcoming, a)
		} else {
			split.Past = append(split.Past, a)
		}
		if a.Date == refDate {
			split.Today = append(split.Today, a)
		}
	}

	return split
}

// AdjacentDates returns the calendar days immediately before and after
// refDate, handling month and year rollover.
func AdjacentDates(refDate string) (prev, next string, err error) {
	t, err := time.Parse(DateLayout, refDate)
	if err != nil {
		return "", "", fmt.Errorf("invalid date %q: %w", refDate, err)
	}

	prev = t.AddDate(0, 0, -1).Format(DateLayout)
	next = t.AddDate(0, 0, 1).Format(DateLayout)
	return prev, next, nil
}

// FormatDateLabel renders a date as the roster heading, e.g.
// "2025年6月15日（日）". Invalid input is returned unchanged.
func FormatDateLabel(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%d年%d月%d日（%s）",
		t.Year(), int(t.Month()), t.Day(), weekdayNames[int(t.Weekday())])
}
