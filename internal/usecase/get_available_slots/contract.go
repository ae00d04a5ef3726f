package get_available_slots

import (
	"context"
	"time"

	"github.com/velora-spa/SchedulingService/internal/domain"
	"github.com/velora-spa/SchedulingService/internal/integrations/catalogservice"
	"github.com/velora-spa/SchedulingService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByTherapistAndDate получает активные бронирования мастера на дату
	GetByTherapistAndDate(ctx context.Context, therapistID int64, date types.CalendarDate) ([]*domain.Booking, error)
}

// HoursRepository интерфейс репозитория рабочих часов
type HoursRepository interface {
	GetWeek(ctx context.Context, therapistID int64) ([]domain.OperatingWindow, error)
}

// ConfigRepository интерфейс репозитория конфигурации слотов
type ConfigRepository interface {
	// GetConfigWithHierarchy получает конфигурацию с учетом иерархии приоритетов
	GetConfigWithHierarchy(ctx context.Context, salonID int64, therapistID *int64) (*domain.SlotsConfig, error)
}

// CatalogServiceClient интерфейс клиента для CatalogService
type CatalogServiceClient interface {
	GetTherapist(ctx context.Context, therapistID int64) (*catalogservice.Therapist, error)
	GetService(ctx context.Context, salonID, serviceID int64) (*catalogservice.Service, error)
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

// RealTimeProvider реальный провайдер времени для production.
// Отдаёт время в локальной таймзоне процесса - сервис разворачивается
// в таймзоне салона.
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
