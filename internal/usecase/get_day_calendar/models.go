package get_day_calendar

import (
	"github.com/velora-spa/SchedulingService/internal/domain"
	"github.com/velora-spa/SchedulingService/pkg/types"
)

// Request запрос календаря мастера на день
type Request struct {
	UserID      int64 // ID пользователя (должен быть менеджером салона)
	SalonID     int64
	TherapistID int64
	Date        types.CalendarDate
}

// CalendarSlot слот административной сетки
type CalendarSlot struct {
	StartTime types.TimeString `json:"start_time"`
	Available bool             `json:"available"`
}

// CalendarBooking бронирование в календаре мастера
type CalendarBooking struct {
	ID              int64                `json:"id"`
	UserID          int64                `json:"user_id"`
	ServiceID       int64                `json:"service_id"`
	ServiceName     string               `json:"service_name"`
	StartTime       types.TimeString     `json:"start_time"`
	EndTime         types.TimeString     `json:"end_time"`
	DurationMinutes int                  `json:"duration_minutes"`
	Status          domain.BookingStatus `json:"status"`
	Notes           *string              `json:"notes,omitempty"`
}

// Response календарь мастера на день: административная сетка
// плюс список бронирований, включая отмененные
type Response struct {
	TherapistID int64              `json:"therapist_id"`
	Date        types.CalendarDate `json:"date"`
	IsOpen      bool               `json:"is_open"`
	OpensAt     types.TimeString   `json:"opens_at,omitempty"`
	ClosesAt    types.TimeString   `json:"closes_at,omitempty"`
	StepMinutes int                `json:"step_minutes"`
	Slots       []CalendarSlot     `json:"slots"`
	Bookings    []CalendarBooking  `json:"bookings"`
}
