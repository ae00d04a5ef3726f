package domain

import (
	"time"

	"github.com/velora-spa/SchedulingService/pkg/types"
)

// OperatingWindow is the open/close window of a therapist for one weekday.
// "Closed" is a first-class state: when IsOpen is false the open and close
// times carry no meaning and must not be interpreted.
type OperatingWindow struct {
	Weekday  time.Weekday
	OpensAt  types.TimeString
	ClosesAt types.TimeString
	IsOpen   bool
}

// Validate checks the window invariant: opensAt must be strictly before
// closesAt whenever the day is open. A closed day is always valid.
func (w OperatingWindow) Validate() error {
	if !w.IsOpen {
		return nil
	}
	if err := w.OpensAt.Validate(); err != nil {
		return err
	}
	if err := w.ClosesAt.Validate(); err != nil {
		return err
	}
	if !w.OpensAt.IsBefore(w.ClosesAt) {
		return ErrInvalidOperatingWindow
	}
	return nil
}

// Closed returns an explicitly closed window for the weekday
func Closed(weekday time.Weekday) OperatingWindow {
	return OperatingWindow{Weekday: weekday, IsOpen: false}
}
