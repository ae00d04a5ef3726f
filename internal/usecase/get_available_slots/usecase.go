package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/velora-spa/SchedulingService/internal/domain"
	storageconfig "github.com/velora-spa/SchedulingService/internal/infra/storage/config"
	"github.com/velora-spa/SchedulingService/internal/integrations/catalogservice"
	"github.com/velora-spa/SchedulingService/internal/schedule"
	"github.com/velora-spa/SchedulingService/pkg/types"
)

// UseCase получение сетки доступных слотов мастера на дату
type UseCase struct {
	bookingRepo  BookingRepository
	hoursRepo    HoursRepository
	configRepo   ConfigRepository
	catalog      CatalogServiceClient
	timeProvider TimeProvider
	logger       Logger
}

// New создает новый экземпляр UseCase
func New(
	bookingRepo BookingRepository,
	hoursRepo HoursRepository,
	configRepo ConfigRepository,
	catalog CatalogServiceClient,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		hoursRepo:    hoursRepo,
		configRepo:   configRepo,
		catalog:      catalog,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute выполняет получение доступных слотов.
// Возвращает полную сетку на дату: занятые и отсечённые слоты помечены
// Available=false, а не выброшены.
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots started: therapist_id=%d, service_id=%d, date=%s",
		req.TherapistID, req.ServiceID, req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Получаем мастера из CatalogService
	therapist, err := uc.catalog.GetTherapist(ctx, req.TherapistID)
	if err != nil {
		if errors.Is(err, catalogservice.ErrTherapistNotFound) {
			return nil, fmt.Errorf("%w: therapist_id=%d", ErrTherapistNotFound, req.TherapistID)
		}
		uc.logger.Error("GetAvailableSlots: failed to get therapist %d: %v", req.TherapistID, err)
		return nil, fmt.Errorf("%w: failed to get therapist: %v", ErrInternal, err)
	}

	if !therapist.IsActive {
		return nil, fmt.Errorf("%w: therapist_id=%d is inactive", ErrTherapistNotFound, req.TherapistID)
	}

	// 3. Получаем услугу и проверяем длительность
	service, err := uc.catalog.GetService(ctx, therapist.SalonID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogservice.ErrServiceNotFound) {
			return nil, fmt.Errorf("%w: service_id=%d", ErrServiceNotFound, req.ServiceID)
		}
		uc.logger.Error("GetAvailableSlots: failed to get service %d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.IsActive {
		return nil, fmt.Errorf("%w: service_id=%d is inactive", ErrServiceNotFound, req.ServiceID)
	}

	if err := validateServiceDuration(service.DurationMinutes); err != nil {
		uc.logger.Error("GetAvailableSlots: service %d has invalid duration %d",
			req.ServiceID, service.DurationMinutes)
		return nil, err
	}

	// 4. Получаем конфигурацию слотов (мастер -> салон -> дефолты)
	cfg, err := uc.getConfig(ctx, therapist.SalonID, req.TherapistID)
	if err != nil {
		return nil, err
	}

	stepMinutes := cfg.StepMinutes
	if req.StepMinutes > 0 {
		stepMinutes = req.StepMinutes
	}

	// 5. Проверяем горизонт бронирования
	today := types.DateOf(now)
	if cfg.HasAdvanceBookingLimit() {
		maxDate := today.AddDays(cfg.AdvanceBookingDays)
		if req.Date.After(maxDate) {
			return nil, fmt.Errorf("%w: date=%s, max=%s", ErrDateTooFarInFuture, req.Date, maxDate)
		}
	}

	// Прошедшая дата - не ошибка: возвращаем пустую сетку
	if req.Date.Before(today) {
		return uc.emptyResponse(req, stepMinutes), nil
	}

	// 6. Получаем рабочие часы мастера
	windows, err := uc.hoursRepo.GetWeek(ctx, req.TherapistID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get operating hours for therapist %d: %v",
			req.TherapistID, err)
		return nil, fmt.Errorf("%w: failed to get operating hours: %v", ErrInternal, err)
	}

	window := schedule.NewWeekSchedule(windows).WindowForDate(req.Date)
	if !window.IsOpen {
		return uc.emptyResponse(req, stepMinutes), nil
	}

	// 7. Получаем активные бронирования на дату
	bookings, err := uc.bookingRepo.GetByTherapistAndDate(ctx, req.TherapistID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings for therapist %d: %v",
			req.TherapistID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 8. Вычисляем сетку с вердиктами
	result, err := schedule.Resolve(schedule.ResolveInput{
		Window:                 window,
		Occupied:               schedule.OccupiedFromBookings(bookings),
		ServiceDurationMinutes: service.DurationMinutes,
		StepMinutes:            stepMinutes,
		LeadTimeMinutes:        cfg.LeadTimeMinutes,
		Date:                   req.Date,
		Now:                    now,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: resolve failed for therapist %d: %v", req.TherapistID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	slots := make([]Slot, 0, len(result))
	for _, v := range result {
		slots = append(slots, Slot{
			StartTime:       v.Start,
			DurationMinutes: v.DurationMinutes,
			Available:       v.Available,
		})
	}

	uc.logger.Info("GetAvailableSlots completed: therapist_id=%d, date=%s, slots=%d, available=%d",
		req.TherapistID, req.Date, len(slots), len(result.AvailableStarts()))

	return &Response{
		Slots: Slots{
			TherapistID: req.TherapistID,
			ServiceID:   req.ServiceID,
			Date:        req.Date,
			StepMinutes: stepMinutes,
			Slots:       slots,
		},
	}, nil
}

// getConfig получает конфигурацию слотов с fallback на дефолты
func (uc *UseCase) getConfig(ctx context.Context, salonID, therapistID int64) (*domain.SlotsConfig, error) {
	cfg, err := uc.configRepo.GetConfigWithHierarchy(ctx, salonID, &therapistID)
	if err != nil {
		if errors.Is(err, storageconfig.ErrConfigNotFound) {
			return domain.DefaultSlotsConfig(salonID), nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get slots config for salon %d: %v", salonID, err)
		return nil, fmt.Errorf("%w: failed to get slots config: %v", ErrInternal, err)
	}
	return cfg, nil
}

func (uc *UseCase) emptyResponse(req Request, stepMinutes int) *Response {
	return &Response{
		Slots: Slots{
			TherapistID: req.TherapistID,
			ServiceID:   req.ServiceID,
			Date:        req.Date,
			StepMinutes: stepMinutes,
			Slots:       []Slot{},
		},
	}
}
