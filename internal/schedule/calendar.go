package schedule

import (
	"time"

	"github.com/velora-spa/SchedulingService/internal/domain"
	"github.com/velora-spa/SchedulingService/pkg/types"
)

// WeekSchedule is the operating calendar of one therapist: at most one
// window per weekday. Weekdays without a configured window answer with
// ErrHoursNotConfigured so that "not configured" and "explicitly closed"
// stay distinguishable at this level, even though every caller renders
// both as a closed day.
type WeekSchedule struct {
	windows map[time.Weekday]domain.OperatingWindow
}

// NewWeekSchedule builds the operating calendar from configured windows.
// A later window for the same weekday replaces an earlier one.
func NewWeekSchedule(windows []domain.OperatingWindow) WeekSchedule {
	m := make(map[time.Weekday]domain.OperatingWindow, len(windows))
	for _, w := range windows {
		m[w.Weekday] = w
	}
	return WeekSchedule{windows: m}
}

// WindowFor returns the operating window for the weekday or ErrHoursNotConfigured
func (s WeekSchedule) WindowFor(weekday time.Weekday) (domain.OperatingWindow, error) {
	w, ok := s.windows[weekday]
	if !ok {
		return domain.OperatingWindow{}, ErrHoursNotConfigured
	}
	return w, nil
}

// WindowForDate returns the operating window for the date's weekday.
// A weekday with no configured window comes back as a closed day.
func (s WeekSchedule) WindowForDate(date types.CalendarDate) domain.OperatingWindow {
	w, err := s.WindowFor(date.Weekday())
	if err != nil {
		return domain.Closed(date.Weekday())
	}
	return w
}
