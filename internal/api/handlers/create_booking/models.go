package create_booking

import (
	"github.com/velora-spa/SchedulingService/pkg/types"

	createBooking "github.com/velora-spa/SchedulingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	TherapistID int64   `json:"therapistId"`
	ServiceID   int64   `json:"serviceId"`
	Date        string  `json:"date"`      // "2026-03-03"
	StartTime   string  `json:"startTime"` // "10:00"
	Notes       *string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (createBooking.Request, error) {
	date, err := types.ParseCalendarDate(r.Date)
	if err != nil {
		return createBooking.Request{}, err
	}

	return createBooking.Request{
		UserID:      userID,
		TherapistID: r.TherapistID,
		ServiceID:   r.ServiceID,
		Date:        date,
		StartTime:   types.TimeString(r.StartTime),
		Notes:       r.Notes,
	}, nil
}
