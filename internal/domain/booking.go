package domain

import (
	"time"

	"github.com/velora-spa/SchedulingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending           BookingStatus = "pending"
	StatusConfirmed         BookingStatus = "confirmed"
	StatusInProgress        BookingStatus = "in_progress"
	StatusCompleted         BookingStatus = "completed"
	StatusCancelledByClient BookingStatus = "cancelled_by_client"
	StatusCancelledBySalon  BookingStatus = "cancelled_by_salon"
	StatusNoShow            BookingStatus = "no_show"
)

// Booking represents a client appointment with a therapist
type Booking struct {
	ID              int64
	UserID          int64
	SalonID         int64
	TherapistID     int64
	ServiceID       int64
	BookingDate     types.CalendarDate
	StartTime       types.TimeString
	DurationMinutes int
	Status          BookingStatus

	// Denormalized data for history: catalog entries may be renamed or
	// repriced after the booking was made
	ServiceName   string
	ServicePrice  float64
	TherapistName string
	Notes         *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its time slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelledByClient &&
		b.Status != StatusCancelledBySalon &&
		b.Status != StatusNoShow
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByClient || b.Status == StatusCancelledBySalon
}

// IsFinished returns true if the booking is completed or was a no-show
func (b *Booking) IsFinished() bool {
	return b.Status == StatusCompleted || b.Status == StatusNoShow
}

// EndTime returns the end of the occupied interval, start + duration
func (b *Booking) EndTime() (types.TimeString, error) {
	return b.StartTime.AddMinutes(b.DurationMinutes)
}

// SalonBookingsFilter фильтр для получения бронирований салона
type SalonBookingsFilter struct {
	SalonID         int64               // Обязательный параметр
	TherapistID     *int64              // Фильтр по мастеру (опционально, если nil - все мастера)
	StartDate       *types.CalendarDate // Начало периода (опционально)
	EndDate         *types.CalendarDate // Конец периода (опционально)
	Status          *BookingStatus      // Фильтр по статусу (опционально)
	IncludeInactive bool                // Включать ли неактивные бронирования (отмененные, no-show)
}
