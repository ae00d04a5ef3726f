package get_day_calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/velora-spa/SchedulingService/internal/domain"
	storageconfig "github.com/velora-spa/SchedulingService/internal/infra/storage/config"
	"github.com/velora-spa/SchedulingService/internal/integrations/catalogservice"
	"github.com/velora-spa/SchedulingService/internal/schedule"
)

// UseCase календарь мастера на день для менеджера салона.
// Использует административный шаг сетки из конфигурации: менеджеру
// нужна обзорная сетка занятости, а не сетка под конкретную услугу.
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

// Execute выполняет получение календаря мастера на день
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	uc.logger.Info("GetDayCalendar started: salon_id=%d, therapist_id=%d, date=%s",
		req.SalonID, req.TherapistID, req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDayCalendar validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем права: пользователь должен быть менеджером салона
	salon, err := uc.catalog.GetSalon(ctx, req.SalonID)
	if err != nil {
		if errors.Is(err, catalogservice.ErrSalonNotFound) {
			return nil, fmt.Errorf("%w: salon_id=%d", ErrSalonNotFound, req.SalonID)
		}
		uc.logger.Error("GetDayCalendar: failed to get salon %d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	if !isManager(salon, req.UserID) {
		uc.logger.Warn("GetDayCalendar: user %d is not a manager of salon %d", req.UserID, req.SalonID)
		return nil, fmt.Errorf("%w: user_id=%d, salon_id=%d", ErrPermissionDenied, req.UserID, req.SalonID)
	}

	// 3. Проверяем, что мастер принадлежит салону
	therapist, err := uc.catalog.GetTherapist(ctx, req.TherapistID)
	if err != nil {
		if errors.Is(err, catalogservice.ErrTherapistNotFound) {
			return nil, fmt.Errorf("%w: therapist_id=%d", ErrTherapistNotFound, req.TherapistID)
		}
		uc.logger.Error("GetDayCalendar: failed to get therapist %d: %v", req.TherapistID, err)
		return nil, fmt.Errorf("%w: failed to get therapist: %v", ErrInternal, err)
	}

	if therapist.SalonID != req.SalonID {
		return nil, fmt.Errorf("%w: therapist_id=%d does not belong to salon_id=%d",
			ErrTherapistNotFound, req.TherapistID, req.SalonID)
	}

	// 4. Получаем конфигурацию слотов
	cfg, err := uc.getConfig(ctx, req.SalonID, req.TherapistID)
	if err != nil {
		return nil, err
	}

	// 5. Получаем рабочие часы мастера
	windows, err := uc.hoursRepo.GetWeek(ctx, req.TherapistID)
	if err != nil {
		uc.logger.Error("GetDayCalendar: failed to get operating hours for therapist %d: %v",
			req.TherapistID, err)
		return nil, fmt.Errorf("%w: failed to get operating hours: %v", ErrInternal, err)
	}
	window := schedule.NewWeekSchedule(windows).WindowForDate(req.Date)

	// 6. Получаем все бронирования на дату, включая отмененные
	bookings, err := uc.bookingRepo.GetBySalonWithFilter(ctx, domain.SalonBookingsFilter{
		SalonID:         req.SalonID,
		TherapistID:     &req.TherapistID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: true,
	})
	if err != nil {
		uc.logger.Error("GetDayCalendar: failed to get bookings for therapist %d: %v",
			req.TherapistID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 7. Вычисляем административную сетку.
	// Lead time здесь не применяется: менеджер работает со всей сеткой дня.
	// Шаг сетки используем и как длительность кандидата: это обзор
	// занятости, длительность услуги заранее неизвестна.
	result, err := schedule.Resolve(schedule.ResolveInput{
		Window:                 window,
		Occupied:               schedule.OccupiedFromBookings(bookings),
		ServiceDurationMinutes: cfg.AdminStepMinutes,
		StepMinutes:            cfg.AdminStepMinutes,
		LeadTimeMinutes:        0,
		Date:                   req.Date,
		Now:                    uc.timeProvider.Now(),
	})
	if err != nil {
		uc.logger.Error("GetDayCalendar: resolve failed for therapist %d: %v", req.TherapistID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	resp := &Response{
		TherapistID: req.TherapistID,
		Date:        req.Date,
		IsOpen:      window.IsOpen,
		StepMinutes: cfg.AdminStepMinutes,
		Slots:       make([]CalendarSlot, 0, len(result)),
		Bookings:    make([]CalendarBooking, 0, len(bookings)),
	}
	if window.IsOpen {
		resp.OpensAt = window.OpensAt
		resp.ClosesAt = window.ClosesAt
	}

	for _, v := range result {
		resp.Slots = append(resp.Slots, CalendarSlot{StartTime: v.Start, Available: v.Available})
	}

	for _, b := range bookings {
		endTime, err := b.EndTime()
		if err != nil {
			uc.logger.Warn("GetDayCalendar: booking %d has malformed time: %v", b.ID, err)
			continue
		}
		resp.Bookings = append(resp.Bookings, CalendarBooking{
			ID:              b.ID,
			UserID:          b.UserID,
			ServiceID:       b.ServiceID,
			ServiceName:     b.ServiceName,
			StartTime:       b.StartTime,
			EndTime:         endTime,
			DurationMinutes: b.DurationMinutes,
			Status:          b.Status,
			Notes:           b.Notes,
		})
	}

	uc.logger.Info("GetDayCalendar completed: therapist_id=%d, date=%s, slots=%d, bookings=%d",
		req.TherapistID, req.Date, len(resp.Slots), len(resp.Bookings))

	return resp, nil
}

// getConfig получает конфигурацию слотов с fallback на дефолты
func (uc *UseCase) getConfig(ctx context.Context, salonID, therapistID int64) (*domain.SlotsConfig, error) {
	cfg, err := uc.configRepo.GetConfigWithHierarchy(ctx, salonID, &therapistID)
	if err != nil {
		if errors.Is(err, storageconfig.ErrConfigNotFound) {
			return domain.DefaultSlotsConfig(salonID), nil
		}
		uc.logger.Error("GetDayCalendar: failed to get slots config for salon %d: %v", salonID, err)
		return nil, fmt.Errorf("%w: failed to get slots config: %v", ErrInternal, err)
	}
	return cfg, nil
}

func isManager(salon *catalogservice.Salon, userID int64) bool {
	for _, id := range salon.ManagerIDs {
		if id == userID {
			return true
		}
	}
	return false
}
