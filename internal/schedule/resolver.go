package schedule

import (
	"fmt"
	"time"

	"github.com/velora-spa/SchedulingService/internal/domain"
	"github.com/velora-spa/SchedulingService/pkg/types"
)

// ResolveInput carries everything Resolve needs. All inputs are plain data:
// Now is injected by the caller in the salon's local time zone, never read
// from a global clock, so resolution is deterministic.
type ResolveInput struct {
	Window                 domain.OperatingWindow
	Occupied               []OccupiedInterval
	ServiceDurationMinutes int
	StepMinutes            int
	LeadTimeMinutes        int
	Date                   types.CalendarDate
	Now                    time.Time
}

// SlotVerdict is the availability verdict for one candidate start time
type SlotVerdict struct {
	Start           types.TimeString
	DurationMinutes int
	Available       bool
}

// AvailabilityResult is the full candidate grid for one day, ascending by
// start time with no duplicate starts. Unavailable slots are kept so callers
// can render them as disabled instead of hiding them.
type AvailabilityResult []SlotVerdict

// AvailableStarts returns only the bookable start times, in order
func (r AvailabilityResult) AvailableStarts() []types.TimeString {
	starts := make([]types.TimeString, 0, len(r))
	for _, v := range r {
		if v.Available {
			starts = append(starts, v.Start)
		}
	}
	return starts
}

// IsAvailable reports whether the grid contains start as an available slot
func (r AvailabilityResult) IsAvailable(start types.TimeString) bool {
	for _, v := range r {
		if v.Start.Equal(start) {
			return v.Available
		}
	}
	return false
}

// Resolve turns a day's raw grid into a final availability verdict per slot.
//
// Rules, in evaluation order:
//  1. closed day: empty result before any grid is generated
//  2. past date: empty result (defensive, a stale client may submit yesterday)
//  3. duration fit: a candidate whose end would pass closesAt is unavailable
//  4. overlap: half-open comparison against the occupied intervals; a candidate
//     starting exactly when an occupied interval ends is available
//  5. lead time, only when Date is today: a candidate starting at or before
//     now + lead time is unavailable
//
// A slot excluded by any rule stays excluded, so the per-slot rules are
// order-independent in their net effect; closed-day and past-date run first
// purely to short-circuit grid generation.
//
// Empty results are legitimate outcomes, not errors. Errors are reserved for
// caller-input defects: non-positive duration or step, negative lead time,
// an uninterpretable open window.
func Resolve(in ResolveInput) (AvailabilityResult, error) {
	if in.ServiceDurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDuration, in.ServiceDurationMinutes)
	}
	if in.StepMinutes <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidStep, in.StepMinutes)
	}
	if in.LeadTimeMinutes < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLeadTime, in.LeadTimeMinutes)
	}

	if !in.Window.IsOpen {
		return AvailabilityResult{}, nil
	}

	today := types.DateOf(in.Now)
	if in.Date.Before(today) {
		return AvailabilityResult{}, nil
	}

	grid, err := GenerateGrid(in.Window, in.StepMinutes)
	if err != nil {
		return nil, err
	}

	closesAt, err := in.Window.ClosesAt.MinutesSinceMidnight()
	if err != nil {
		return nil, fmt.Errorf("%w: closes_at %q: %v", ErrInvalidWindow, in.Window.ClosesAt, err)
	}

	occupied := make([][2]int, 0, len(in.Occupied))
	for _, o := range in.Occupied {
		start, err := o.Start.MinutesSinceMidnight()
		if err != nil {
			continue
		}
		end, err := o.End.MinutesSinceMidnight()
		if err != nil {
			continue
		}
		occupied = append(occupied, [2]int{start, end})
	}

	sameDay := in.Date.Equal(today)
	cutoff := in.Now.Hour()*60 + in.Now.Minute() + in.LeadTimeMinutes

	result := make(AvailabilityResult, 0, len(grid))
	for _, start := range grid {
		startMin, err := start.MinutesSinceMidnight()
		if err != nil {
			return nil, err
		}
		endMin := startMin + in.ServiceDurationMinutes

		available := endMin <= closesAt

		if available {
			for _, o := range occupied {
				if overlaps(startMin, endMin, o[0], o[1]) {
					available = false
					break
				}
			}
		}

		if available && sameDay && startMin <= cutoff {
			available = false
		}

		result = append(result, SlotVerdict{
			Start:           start,
			DurationMinutes: in.ServiceDurationMinutes,
			Available:       available,
		})
	}

	return result, nil
}
