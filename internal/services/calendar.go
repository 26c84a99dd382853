package services

import (
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/jp"
)

// CalendarService answers workday/holiday questions for the Japanese
// business calendar, used to flag roster dates.
type CalendarService struct {
	calendar *cal.BusinessCalendar
}

func NewCalendarService() *CalendarService {
	c := cal.NewBusinessCalendar()
	c.Name = "Japan"
	c.AddHoliday(jp.Holidays...)
	return &CalendarService{calendar: c}
}

func (s *CalendarService) IsWorkday(t time.Time) bool {
	return s.calendar.IsWorkday(t)
}

func (s *CalendarService) IsHoliday(t time.Time) bool {
	actual, observed, _ := s.calendar.IsHoliday(t)
	return actual || observed
}

// HolidayName returns the holiday name for the date, or "" when it is not a
// holiday.
func (s *CalendarService) HolidayName(t time.Time) string {
	actual, observed, holiday := s.calendar.IsHoliday(t)
	if (actual || observed) && holiday != nil {
		return holiday.Name
	}
	return ""
}

// IsWeekend reports plain Saturday/Sunday, independent of holidays.
func (s *CalendarService) IsWeekend(t time.Time) bool {
	return cal.IsWeekend(t)
}
