package schedule

import (
	"github.com/velora-spa/SchedulingService/internal/domain"
	"github.com/velora-spa/SchedulingService/pkg/types"
)

// OccupiedInterval is the half-open time range [Start, End) blocked out by
// one existing booking.
type OccupiedInterval struct {
	Start types.TimeString
	End   types.TimeString
}

// OccupiedFromBookings builds the exclusion set for one (therapist, date) pair.
// Non-active bookings (cancelled, no-show) do not occupy their slot.
// Bookings with malformed times are skipped rather than failing the whole day.
func OccupiedFromBookings(bookings []*domain.Booking) []OccupiedInterval {
	occupied := make([]OccupiedInterval, 0, len(bookings))

	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}

		end, err := b.EndTime()
		if err != nil {
			continue
		}

		occupied = append(occupied, OccupiedInterval{Start: b.StartTime, End: end})
	}

	return occupied
}

// overlaps reports whether the half-open intervals [startA, endA) and
// [startB, endB) intersect, comparing by minutes since midnight.
// Touching boundaries do not overlap, so back-to-back bookings are permitted.
func overlaps(startA, endA, startB, endB int) bool {
	return startA < endB && startB < endA
}
