package services

import (
	"testing"

	"github.com/agora-dev/teko-board/backend/internal/models"
)

func mkAssignment(id, date string) models.Assignment {
	return models.Assignment{ID: id, Date: date}
}

func TestSplitByDate_Partition(t *testing.T) {
	assignments := []models.Assignment{
		mkAssignment("a", "2025-06-14"),
		mkAssignment("b", "2025-06-15"),
		mkAssignment("c", "2025-06-16"),
		mkAssignment("d", "2025-06-15"),
		mkAssignment("e", "2025-01-01"),
	}

	split := SplitByDate(assignments, "2025-06-15")

	if len(split.Upcoming) != 3 {
		t.Errorf("expected 3 upcoming, got %d", len(split.Upcoming))
	}
	if len(split.Past) != 2 {
		t.Errorf("expected 2 past, got %d", len(split.Past))
	}
	if len(split.Today) != 2 {
		t.Errorf("expected 2 today, got %d", len(split.Today))
	}

	// Upcoming and Past must cover the input exactly once
	if len(split.Upcoming)+len(split.Past) != len(assignments) {
		t.Errorf("upcoming+past = %d, input = %d",
			len(split.Upcoming)+len(split.Past), len(assignments))
	}

	// Today must be a subset of Upcoming
	upcomingIDs := make(map[string]bool)
	for _, a := range split.Upcoming {
		upcomingIDs[a.ID] = true
	}
	for _, a := range split.Today {
		if !upcomingIDs[a.ID] {
			t.Errorf("today assignment %s not in upcoming", a.ID)
		}
	}
}

func TestSplitByDate_PreservesOrder(t *testing.T) {
	assignments := []models.Assignment{
		mkAssignment("a", "2025-06-20"),
		mkAssignment("b", "2025-06-16"),
		mkAssignment("c", "2025-06-18"),
	}

	split := SplitByDate(assignments, "2025-06-15")

	want := []string{"a", "b", "c"}
	for i, a := range split.Upcoming {
		if a.ID != want[i] {
			t.Errorf("upcoming[%d] = %s, expected %s", i, a.ID, want[i])
		}
	}
}

func TestSplitByDate_Empty(t *testing.T) {
	split := SplitByDate(nil, "2025-06-15")

	if split.Upcoming == nil || split.Past == nil || split.Today == nil {
		t.Error("subsets should be empty slices, not nil")
	}
	if len(split.Upcoming) != 0 || len(split.Past) != 0 || len(split.Today) != 0 {
		t.Error("expected all subsets empty")
	}
}

func TestAdjacentDates(t *testing.T) {
	tests := []struct {
		name string
		date string
		prev string
		next string
	}{
		{"mid month", "2025-06-15", "2025-06-14", "2025-06-16"},
		{"month start", "2025-06-01", "2025-05-31", "2025-06-02"},
		{"month end", "2025-06-30", "2025-06-29", "2025-07-01"},
		{"year start", "2025-01-01", "2024-12-31", "2025-01-02"},
		{"year end", "2025-12-31", "2025-12-30", "2026-01-01"},
		{"leap day", "2024-02-29", "2024-02-28", "2024-03-01"},
		{"before leap day", "2024-03-01", "2024-02-29", "2024-03-02"},
		{"non leap february", "2025-02-28", "2025-02-27", "2025-03-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev, next, err := AdjacentDates(tt.date)
			if err != nil {
				t.Fatalf("AdjacentDates(%q) returned error: %v", tt.date, err)
			}
			if prev != tt.prev {
				t.Errorf("prev = %q, expected %q", prev, tt.prev)
			}
			if next != tt.next {
				t.Errorf("next = %q, expected %q", next, tt.next)
			}
		})
	}
}

func TestAdjacentDates_Invalid(t *testing.T) {
	for _, date := range []string{"", "2025-6-15", "not-a-date", "2025/06/15"} {
		if _, _, err := AdjacentDates(date); err == nil {
			t.Errorf("AdjacentDates(%q) should return error", date)
		}
	}
}

func TestFormatDateLabel(t *testing.T) {
	tests := []struct {
		date     string
		expected string
	}{
		{"2025-06-15", "2025年6月15日（日）"},
		{"2025-06-16", "2025年6月16日（月）"},
		{"2025-06-21", "2025年6月21日（土）"},
		{"2025-01-01", "2025年1月1日（水）"},
		{"2024-02-29", "2024年2月29日（木）"},
	}

	for _, tt := range tests {
		if got := FormatDateLabel(tt.date); got != tt.expected {
			t.Errorf("FormatDateLabel(%q) = %q, expected %q", tt.date, got, tt.expected)
		}
	}
}

func TestFormatDateLabel_InvalidPassthrough(t *testing.T) {
	if got := FormatDateLabel("garbage"); got != "garbage" {
		t.Errorf("expected invalid input returned unchanged, got %q", got)
	}
}
