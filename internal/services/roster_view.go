package services

import (
	"time"

	"github.com/agora-dev/teko-board/backend/internal/models"
	"gorm.io/gorm"
)

// RosterService composes the one-day roster view: the date-filtered
// assignment list plus navigation dates and calendar labels.
type RosterService struct {
	assignments *AssignmentService
	calendar    *CalendarService
}

func NewRosterService(db *gorm.DB) *RosterService {
	return &RosterService{
		assignments: NewAssignmentService(db),
		calendar:    NewCalendarService(),
	}
}

type DayRoster struct {
	Date        string              `json:"date"`
	Label       string              `json:"label"`
	IsToday     bool                `json:"is_today"`
	IsHoliday   bool                `json:"is_holiday"`
	HolidayName string              `json:"holiday_name,omitempty"`
	PrevDate    string              `json:"prev_date"`
	NextDate    string              `json:"next_date"`
	Count       int                 `json:"count"`
	Assignments []models.Assignment `json:"assignments"`
}

// BuildDay assembles the roster for one date. today is the caller's current
// date, injected so the view stays a pure function of its inputs.
func (s *RosterService) BuildDay(date, today string) (*DayRoster, error) {
	prev, next, err := AdjacentDates(date)
	if err != nil {
		return nil, ErrValidationRejected
	}

	assignments, err := s.assignments.ListByDate(date)
	if err != nil {
		return nil, err
	}

	roster := &DayRoster{
		Date:        date,
		Label:       FormatDateLabel(date),
		IsToday:     date == today,
		PrevDate:    prev,
		NextDate:    next,
		Count:       len(assignments),
		Assignments: assignments,
	}

	if t, perr := time.Parse(DateLayout, date); perr == nil {
		roster.IsHoliday = s.calendar.IsHoliday(t)
		roster.HolidayName = s.calendar.HolidayName(t)
	}

	return roster, nil
}
