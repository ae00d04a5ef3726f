package create_booking

import (
	"time"

	"github.com/velora-spa/SchedulingService/internal/domain"
	"github.com/velora-spa/SchedulingService/pkg/types"
)

// Request запрос на создание бронирования
type Request struct {
	UserID      int64
	TherapistID int64
	ServiceID   int64
	Date        types.CalendarDate
	StartTime   types.TimeString
	Notes       *string
}

// Response созданное бронирование
type Response struct {
	ID              int64                `json:"id"`
	UserID          int64                `json:"user_id"`
	SalonID         int64                `json:"salon_id"`
	TherapistID     int64                `json:"therapist_id"`
	ServiceID       int64                `json:"service_id"`
	Date            types.CalendarDate   `json:"date"`
	StartTime       types.TimeString     `json:"start_time"`
	EndTime         types.TimeString     `json:"end_time"`
	DurationMinutes int                  `json:"duration_minutes"`
	Status          domain.BookingStatus `json:"status"`
	ServiceName     string               `json:"service_name"`
	ServicePrice    float64              `json:"service_price"`
	TherapistName   string               `json:"therapist_name"`
	Notes           *string              `json:"notes,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
}

// toResponse преобразует доменную модель в ответ usecase
func toResponse(b *domain.Booking) (*Response, error) {
	endTime, err := b.EndTime()
	if err != nil {
		return nil, err
	}

	return &Response{
		ID:              b.ID,
		UserID:          b.UserID,
		SalonID:         b.SalonID,
		TherapistID:     b.TherapistID,
		ServiceID:       b.ServiceID,
		Date:            b.BookingDate,
		StartTime:       b.StartTime,
		EndTime:         endTime,
		DurationMinutes: b.DurationMinutes,
		Status:          b.Status,
		ServiceName:     b.ServiceName,
		ServicePrice:    b.ServicePrice,
		TherapistName:   b.TherapistName,
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt,
	}, nil
}
