package create_booking

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

// UseCase создание бронирования с проверкой доступности слота
type UseCase struct {
	bookingRepo  BookingRepository
	hoursRepo    HoursRepository
	configRepo   ConfigRepository
	catalog      CatalogServiceClient
	txManager    TxManager
	timeProvider TimeProvider
	logger       Logger
}

// New создает новый экземпляр UseCase
func New(
	bookingRepo BookingRepository,
	hoursRepo HoursRepository,
	configRepo ConfigRepository,
	catalog CatalogServiceClient,
	txManager TxManager,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		hoursRepo:    hoursRepo,
		configRepo:   configRepo,
		catalog:      catalog,
		txManager:    txManager,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute выполняет создание бронирования.
// Доступность слота перепроверяется внутри serializable транзакции
// с блокировкой строк бронирований мастера: между просмотром сетки
// клиентом и подтверждением слот мог занять кто-то другой.
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	uc.logger.Info("CreateBooking started: user_id=%d, therapist_id=%d, date=%s, start=%s",
		req.UserID, req.TherapistID, req.Date, req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Получаем мастера из CatalogService
	therapist, err := uc.catalog.GetTherapist(ctx, req.TherapistID)
	if err != nil {
		if errors.Is(err, catalogservice.ErrTherapistNotFound) {
			return nil, fmt.Errorf("%w: therapist_id=%d", ErrTherapistNotFound, req.TherapistID)
		}
		uc.logger.Error("CreateBooking: failed to get therapist %d: %v", req.TherapistID, err)
		return nil, fmt.Errorf("%w: failed to get therapist: %v", ErrInternal, err)
	}

	if !therapist.IsActive {
		return nil, fmt.Errorf("%w: therapist_id=%d is inactive", ErrTherapistNotFound, req.TherapistID)
	}

	// 3. Получаем услугу
	service, err := uc.catalog.GetService(ctx, therapist.SalonID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogservice.ErrServiceNotFound) {
			return nil, fmt.Errorf("%w: service_id=%d", ErrServiceNotFound, req.ServiceID)
		}
		uc.logger.Error("CreateBooking: failed to get service %d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.IsActive {
		return nil, fmt.Errorf("%w: service_id=%d is inactive", ErrServiceNotFound, req.ServiceID)
	}

	// 4. Получаем конфигурацию слотов
	cfg, err := uc.getConfig(ctx, therapist.SalonID, req.TherapistID)
	if err != nil {
		return nil, err
	}

	// 5. Проверяем горизонт бронирования
	today := types.DateOf(now)
	if cfg.HasAdvanceBookingLimit() {
		maxDate := today.AddDays(cfg.AdvanceBookingDays)
		if req.Date.After(maxDate) {
			return nil, fmt.Errorf("%w: date=%s, max=%s", ErrDateTooFarInFuture, req.Date, maxDate)
		}
	}

	// 6. Получаем рабочие часы мастера
	windows, err := uc.hoursRepo.GetWeek(ctx, req.TherapistID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get operating hours for therapist %d: %v",
			req.TherapistID, err)
		return nil, fmt.Errorf("%w: failed to get operating hours: %v", ErrInternal, err)
	}

	window := schedule.NewWeekSchedule(windows).WindowForDate(req.Date)

	var created *domain.Booking

	// 7. Проверка доступности и вставка в одной транзакции
	txErr := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		bookings, err := uc.bookingRepo.GetByTherapistAndDate(txCtx, req.TherapistID, req.Date)
		if err != nil {
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		result, err := schedule.Resolve(schedule.ResolveInput{
			Window:                 window,
			Occupied:               schedule.OccupiedFromBookings(bookings),
			ServiceDurationMinutes: service.DurationMinutes,
			StepMinutes:            cfg.StepMinutes,
			LeadTimeMinutes:        cfg.LeadTimeMinutes,
			Date:                   req.Date,
			Now:                    now,
		})
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}

		if !result.IsAvailable(req.StartTime) {
			return fmt.Errorf("%w: therapist_id=%d, date=%s, start=%s",
				ErrSlotTaken, req.TherapistID, req.Date, req.StartTime)
		}

		created, err = uc.bookingRepo.Create(txCtx, &domain.Booking{
			UserID:          req.UserID,
			SalonID:         therapist.SalonID,
			TherapistID:     req.TherapistID,
			ServiceID:       req.ServiceID,
			BookingDate:     req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: service.DurationMinutes,
			Status:          domain.StatusPending,
			ServiceName:     service.Name,
			ServicePrice:    servicePrice(service),
			TherapistName:   therapist.FullName,
			Notes:           req.Notes,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, ErrSlotTaken) || errors.Is(txErr, ErrInternal) {
			if errors.Is(txErr, ErrInternal) {
				uc.logger.Error("CreateBooking failed: %v", txErr)
			}
			return nil, txErr
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", txErr)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, txErr)
	}

	uc.logger.Info("CreateBooking completed: booking_id=%d, user_id=%d, therapist_id=%d",
		created.ID, req.UserID, req.TherapistID)

	return toResponse(created)
}

// getConfig получает конфигурацию слотов с fallback на дефолты
func (uc *UseCase) getConfig(ctx context.Context, salonID, therapistID int64) (*domain.SlotsConfig, error) {
	cfg, err := uc.configRepo.GetConfigWithHierarchy(ctx, salonID, &therapistID)
	if err != nil {
		if errors.Is(err, storageconfig.ErrConfigNotFound) {
			return domain.DefaultSlotsConfig(salonID), nil
		}
		uc.logger.Error("CreateBooking: failed to get slots config for salon %d: %v", salonID, err)
		return nil, fmt.Errorf("%w: failed to get slots config: %v", ErrInternal, err)
	}
	return cfg, nil
}

func servicePrice(s *catalogservice.Service) float64 {
	if s.Price == nil {
		return 0
	}
	return *s.Price
}
