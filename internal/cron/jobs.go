package cron

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/velora-spa/SchedulingService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований для фоновых задач
type BookingRepository interface {
	// CompletePastBookings переводит прошедшие подтвержденные бронирования
	// в статус completed. Возвращает количество обновленных строк.
	CompletePastBookings(ctx context.Context, today types.CalendarDate, nowTime types.TimeString) (int64, error)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Runner запускает периодические задачи сервиса
type Runner struct {
	cron         *cron.Cron
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewRunner создает планировщик фоновых задач
func NewRunner(bookingRepo BookingRepository, timeProvider TimeProvider, logger Logger) *Runner {
	return &Runner{
		cron:         cron.New(),
		bookingRepo:  bookingRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Start регистрирует задачи по расписанию и запускает планировщик.
// schedule - cron-выражение для задачи автозавершения бронирований.
func (r *Runner) Start(schedule string) error {
	if _, err := r.cron.AddFunc(schedule, r.completePastBookings); err != nil {
		return err
	}

	r.cron.Start()
	r.logger.Info("Cron runner started: complete_past_bookings schedule=%q", schedule)
	return nil
}

// Stop останавливает планировщик и дожидается завершения текущих задач
func (r *Runner) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	r.logger.Info("Cron runner stopped")
}

// completePastBookings автоматически завершает бронирования, чье время
// окончания уже прошло. Без этой задачи подтвержденные бронирования
// навсегда остаются занимающими слот в прошлом.
func (r *Runner) completePastBookings() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	now := r.timeProvider.Now()
	today := types.DateOf(now)
	nowTime := types.NewTimeString(now)

	updated, err := r.bookingRepo.CompletePastBookings(ctx, today, nowTime)
	if err != nil {
		r.logger.Error("completePastBookings: failed: %v", err)
		return
	}

	if updated > 0 {
		r.logger.Info("completePastBookings: completed %d past bookings", updated)
	}
}
