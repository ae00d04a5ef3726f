package create_booking

import (
	"context"
	"time"

	"github.com/velora-spa/SchedulingService/internal/domain"
	"github.com/velora-spa/SchedulingService/internal/integrations/catalogservice"
	"github.com/velora-spa/SchedulingService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)

	// GetByTherapistAndDate внутри транзакции берет блокировку FOR UPDATE
	// на строки бронирований мастера
	GetByTherapistAndDate(ctx context.Context, therapistID int64, date types.CalendarDate) ([]*domain.Booking, error)
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
	GetTherapist(ctx context.Context, therapistID int64) (*catalogservice.Therapist, error)
	GetService(ctx context.Context, salonID, serviceID int64) (*catalogservice.Service, error)
}

// TxManager интерфейс менеджера транзакций.
// Проверка конфликта и вставка выполняются в одной serializable транзакции.
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
