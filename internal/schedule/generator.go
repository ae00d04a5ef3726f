package schedule

import (
	"fmt"

	"github.com/velora-spa/SchedulingService/internal/domain"
	"github.com/velora-spa/SchedulingService/pkg/types"
)

// GenerateGrid enumerates the raw candidate start times for one day: every
// start from opensAt stepped by stepMinutes while start < closesAt.
//
// The grid is deliberately duration-unaware. Duration varies per service while
// the grid is fixed per therapist, so the same grid serves services of
// different lengths; filtering starts that cannot fit a duration before close
// belongs to Resolve.
//
// A closed window yields an empty grid, not an error.
func GenerateGrid(window domain.OperatingWindow, stepMinutes int) ([]types.TimeString, error) {
	if stepMinutes <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidStep, stepMinutes)
	}

	if !window.IsOpen {
		return []types.TimeString{}, nil
	}

	open, err := window.OpensAt.MinutesSinceMidnight()
	if err != nil {
		return nil, fmt.Errorf("%w: opens_at %q: %v", ErrInvalidWindow, window.OpensAt, err)
	}

	close, err := window.ClosesAt.MinutesSinceMidnight()
	if err != nil {
		return nil, fmt.Errorf("%w: closes_at %q: %v", ErrInvalidWindow, window.ClosesAt, err)
	}

	if open >= close {
		return nil, fmt.Errorf("%w: opens_at %q is not before closes_at %q", ErrInvalidWindow, window.OpensAt, window.ClosesAt)
	}

	grid := make([]types.TimeString, 0, (close-open)/stepMinutes+1)
	for cur := open; cur < close; cur += stepMinutes {
		start, err := types.NewTimeStringFromMinutes(cur)
		if err != nil {
			return nil, err
		}
		grid = append(grid, start)
	}

	return grid, nil
}
