package schedule

import (
	"context"

	"github.com/velora-spa/SchedulingService/internal/domain"
	"github.com/velora-spa/SchedulingService/internal/integrations/catalogservice"
)

// HoursRepository интерфейс репозитория рабочих часов
type HoursRepository interface {
	GetWeek(ctx context.Context, therapistID int64) ([]domain.OperatingWindow, error)
	ReplaceWeek(ctx context.Context, therapistID int64, windows []domain.OperatingWindow) error
}

// ConfigRepository интерфейс репозитория конфигурации слотов
type ConfigRepository interface {
	GetAllBySalon(ctx context.Context, salonID int64) ([]*domain.SlotsConfig, error)
	Upsert(ctx context.Context, config *domain.SlotsConfig) (*domain.SlotsConfig, error)
	Delete(ctx context.Context, id int64) error
}

// CatalogServiceClient интерфейс клиента для CatalogService
type CatalogServiceClient interface {
	GetSalon(ctx context.Context, salonID int64) (*catalogservice.Salon, error)
	GetTherapist(ctx context.Context, therapistID int64) (*catalogservice.Therapist, error)
}

// TransactionManager интерфейс для управления транзакциями.
// Замена недельного расписания выполняется атомарно: delete + insert
// в одной транзакции.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
