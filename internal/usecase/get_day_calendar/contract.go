package get_day_calendar

import (
	"context"
	"time"

	"github.com/velora-spa/SchedulingService/internal/domain"
	"github.com/velora-spa/SchedulingService/internal/integrations/catalogservice"
)

// BookingRepository интерфейс репозитория бронирований.
// Календарь показывает и отмененные бронирования, поэтому выборка
// идет через фильтр с IncludeInactive, а не через активную выборку.
type BookingRepository interface {
	GetBySalonWithFilter(ctx context.Context, filter domain.SalonBookingsFilter) ([]*domain.Booking, error)
}

// HoursRepository интерфейс репозитория рабочих часов
type HoursRepository interface {
	GetWeek(ctx context.Context, therapistID int64) ([]domain.OperatingWindow, error)
}

// ConfigRepository интерфейс репозитория конфигурации слотов
type ConfigRepository interface {
	GetConfigWithHierarchy(ctx context.Context, salonID int64, therapistID *int64) (*domain.SlotsConfig, error)
}

// CatalogServiceClient интерфейс клиента для CatalogService
type CatalogServiceClient interface {
	GetSalon(ctx context.Context, salonID int64) (*catalogservice.Salon, error)
	GetTherapist(ctx context.Context, therapistID int64) (*catalogservice.Therapist, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
