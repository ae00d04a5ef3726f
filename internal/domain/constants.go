package domain

// Default configuration values.
// Both grid steps and the lead time are deployment-tunable settings,
// never inline literals at call sites.
const (
	DefaultStepMinutes        = 15 // Client booking flow grid
	DefaultAdminStepMinutes   = 30 // Admin calendar grid
	DefaultLeadTimeMinutes    = 30 // Minimum notice for same-day bookings
	DefaultAdvanceBookingDays = 0  // 0 = unlimited
)

// Business validation constants
const (
	MinStepMinutes        = 5
	MaxStepMinutes        = 240 // 4 hours
	MinLeadTimeMinutes    = 0
	MaxLeadTimeMinutes    = 10080 // 1 week
	MinAdvanceBookingDays = 0
	MaxAdvanceBookingDays = 365 // 1 year
	MinServiceDuration    = 5
	MaxServiceDuration    = 480 // 8 hours
	MaxNotesLength        = 500
	MaxCancelReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов неактивных бронирований
// Используется для фильтрации при вычислении занятых интервалов
var InactiveStatuses = []BookingStatus{
	StatusCancelledByClient,
	StatusCancelledBySalon,
	StatusNoShow,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
}
