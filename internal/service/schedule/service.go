package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/velora-spa/SchedulingService/internal/domain"
	configRepo "github.com/velora-spa/SchedulingService/internal/infra/storage/config"
	catalogClient "github.com/velora-spa/SchedulingService/internal/integrations/catalogservice"
	"github.com/velora-spa/SchedulingService/internal/service/schedule/models"
)

// Service сервис управления расписанием мастеров и конфигурацией слотов
type Service struct {
	hoursRepo  HoursRepository
	configRepo ConfigRepository
	catalog    CatalogServiceClient
	txManager  TransactionManager
	logger     Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	hoursRepo HoursRepository,
	configRepo ConfigRepository,
	catalog CatalogServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		hoursRepo:  hoursRepo,
		configRepo: configRepo,
		catalog:    catalog,
		txManager:  txManager,
		logger:     logger,
	}
}

// GetWeekSchedule получает недельное расписание мастера.
// Публичная операция: расписание нужно клиенту до выбора слота.
func (s *Service) GetWeekSchedule(ctx context.Context, therapistID int64) (*models.WeekScheduleResponse, error) {
	s.logger.Info("GetWeekSchedule: fetching schedule for therapist=%d", therapistID)

	if _, err := s.getTherapist(ctx, therapistID); err != nil {
		return nil, err
	}

	windows, err := s.hoursRepo.GetWeek(ctx, therapistID)
	if err != nil {
		s.logger.Error("GetWeekSchedule: repository error for therapist=%d: %v", therapistID, err)
		return nil, fmt.Errorf("%w: GetWeekSchedule - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainWindows(therapistID, windows), nil
}

// UpdateWeekSchedule заменяет недельное расписание мастера целиком
// Доступно только менеджерам салона
func (s *Service) UpdateWeekSchedule(ctx context.Context, req *models.UpdateWeekScheduleRequest) (*models.WeekScheduleResponse, error) {
	s.logger.Info("UpdateWeekSchedule: updating schedule for therapist=%d by user=%d",
		req.TherapistID, req.UserID)

	// 1. Проверяем права доступа менеджера
	if err := s.checkManagerAccess(ctx, req.SalonID, req.UserID); err != nil {
		return nil, err
	}

	// 2. Проверяем, что мастер принадлежит салону
	therapist, err := s.getTherapist(ctx, req.TherapistID)
	if err != nil {
		return nil, err
	}
	if therapist.SalonID != req.SalonID {
		s.logger.Warn("UpdateWeekSchedule: therapist=%d does not belong to salon=%d",
			req.TherapistID, req.SalonID)
		return nil, ErrTherapistNotFound
	}

	// 3. Конвертируем и валидируем окна
	windows, err := models.ToDomainWindows(req.Days)
	if err != nil {
		s.logger.Warn("UpdateWeekSchedule: invalid schedule for therapist=%d: %v", req.TherapistID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 4. Атомарно заменяем расписание
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.hoursRepo.ReplaceWeek(txCtx, req.TherapistID, windows)
	})
	if err != nil {
		s.logger.Error("UpdateWeekSchedule: failed to replace week for therapist=%d: %v",
			req.TherapistID, err)
		return nil, fmt.Errorf("%w: UpdateWeekSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateWeekSchedule: successfully updated schedule for therapist=%d, days=%d",
		req.TherapistID, len(windows))
	return models.FromDomainWindows(req.TherapistID, windows), nil
}

// GetSalonConfigs получает все конфигурации слотов салона
// Доступно только менеджерам салона
func (s *Service) GetSalonConfigs(ctx context.Context, salonID, userID int64) (*models.ConfigListResponse, error) {
	s.logger.Info("GetSalonConfigs: fetching configs for salon=%d by user=%d", salonID, userID)

	if err := s.checkManagerAccess(ctx, salonID, userID); err != nil {
		return nil, err
	}

	configs, err := s.configRepo.GetAllBySalon(ctx, salonID)
	if err != nil {
		s.logger.Error("GetSalonConfigs: repository error for salon=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: GetSalonConfigs - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainConfigList(configs), nil
}

// UpsertConfig создает или обновляет конфигурацию слотов
// Доступно только менеджерам салона
func (s *Service) UpsertConfig(ctx context.Context, req *models.UpsertConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("UpsertConfig: upserting config for salon=%d, therapist=%v by user=%d",
		req.SalonID, req.TherapistID, req.UserID)

	// 1. Валидируем настройки
	if err := s.validateConfigData(req); err != nil {
		s.logger.Warn("UpsertConfig: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем права доступа менеджера
	if err := s.checkManagerAccess(ctx, req.SalonID, req.UserID); err != nil {
		return nil, err
	}

	// 3. Если конфигурация для конкретного мастера, проверяем его принадлежность салону
	if req.TherapistID != nil {
		therapist, err := s.getTherapist(ctx, *req.TherapistID)
		if err != nil {
			return nil, err
		}
		if therapist.SalonID != req.SalonID {
			s.logger.Warn("UpsertConfig: therapist=%d does not belong to salon=%d",
				*req.TherapistID, req.SalonID)
			return nil, ErrTherapistNotFound
		}
	}

	// 4. Сохраняем конфигурацию
	saved, err := s.configRepo.Upsert(ctx, &domain.SlotsConfig{
		SalonID:            req.SalonID,
		TherapistID:        req.TherapistID,
		StepMinutes:        req.StepMinutes,
		AdminStepMinutes:   req.AdminStepMinutes,
		LeadTimeMinutes:    req.LeadTimeMinutes,
		AdvanceBookingDays: req.AdvanceBookingDays,
	})
	if err != nil {
		s.logger.Error("UpsertConfig: repository error for salon=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: UpsertConfig - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpsertConfig: successfully upserted config id=%d for salon=%d", saved.ID, req.SalonID)
	return models.FromDomainConfig(saved), nil
}

// DeleteConfig удаляет конфигурацию слотов
// Доступно только менеджерам салона. Конфигурация должна принадлежать салону.
func (s *Service) DeleteConfig(ctx context.Context, req *models.DeleteConfigRequest) error {
	s.logger.Info("DeleteConfig: deleting config id=%d for salon=%d by user=%d",
		req.ConfigID, req.SalonID, req.UserID)

	if err := s.checkManagerAccess(ctx, req.SalonID, req.UserID); err != nil {
		return err
	}

	configs, err := s.configRepo.GetAllBySalon(ctx, req.SalonID)
	if err != nil {
		s.logger.Error("DeleteConfig: repository error for salon=%d: %v", req.SalonID, err)
		return fmt.Errorf("%w: DeleteConfig - repository error: %v", ErrInternal, err)
	}

	found := false
	for _, c := range configs {
		if c.ID == req.ConfigID {
			found = true
			break
		}
	}
	if !found {
		s.logger.Warn("DeleteConfig: config id=%d not found in salon=%d", req.ConfigID, req.SalonID)
		return ErrConfigNotFound
	}

	if err := s.configRepo.Delete(ctx, req.ConfigID); err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			return ErrConfigNotFound
		}
		s.logger.Error("DeleteConfig: repository error for config id=%d: %v", req.ConfigID, err)
		return fmt.Errorf("%w: DeleteConfig - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteConfig: successfully deleted config id=%d", req.ConfigID)
	return nil
}

// Вспомогательные методы

// validateConfigData проверяет настройки конфигурации на допустимые границы
func (s *Service) validateConfigData(req *models.UpsertConfigRequest) error {
	if req.StepMinutes < domain.MinStepMinutes || req.StepMinutes > domain.MaxStepMinutes {
		return fmt.Errorf("%w: stepMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinStepMinutes, domain.MaxStepMinutes)
	}
	if req.AdminStepMinutes < domain.MinStepMinutes || req.AdminStepMinutes > domain.MaxStepMinutes {
		return fmt.Errorf("%w: adminStepMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinStepMinutes, domain.MaxStepMinutes)
	}
	if req.LeadTimeMinutes < domain.MinLeadTimeMinutes || req.LeadTimeMinutes > domain.MaxLeadTimeMinutes {
		return fmt.Errorf("%w: leadTimeMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinLeadTimeMinutes, domain.MaxLeadTimeMinutes)
	}
	if req.AdvanceBookingDays < domain.MinAdvanceBookingDays || req.AdvanceBookingDays > domain.MaxAdvanceBookingDays {
		return fmt.Errorf("%w: advanceBookingDays must be between %d and %d",
			ErrInvalidInput, domain.MinAdvanceBookingDays, domain.MaxAdvanceBookingDays)
	}
	return nil
}

// getTherapist получает мастера из CatalogService
func (s *Service) getTherapist(ctx context.Context, therapistID int64) (*catalogClient.Therapist, error) {
	therapist, err := s.catalog.GetTherapist(ctx, therapistID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrTherapistNotFound) {
			s.logger.Warn("getTherapist: therapist id=%d not found", therapistID)
			return nil, ErrTherapistNotFound
		}
		s.logger.Error("getTherapist: failed to get therapist id=%d: %v", therapistID, err)
		return nil, fmt.Errorf("%w: failed to get therapist: %v", ErrInternal, err)
	}
	return therapist, nil
}

// checkManagerAccess проверяет, что пользователь является менеджером салона
func (s *Service) checkManagerAccess(ctx context.Context, salonID int64, userID int64) error {
	salon, err := s.catalog.GetSalon(ctx, salonID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrSalonNotFound) {
			s.logger.Warn("checkManagerAccess: salon id=%d not found", salonID)
			return ErrSalonNotFound
		}
		s.logger.Error("checkManagerAccess: failed to get salon id=%d: %v", salonID, err)
		return fmt.Errorf("%w: checkManagerAccess - failed to get salon: %v", ErrInternal, err)
	}

	for _, managerID := range salon.ManagerIDs {
		if managerID == userID {
			return nil
		}
	}

	s.logger.Warn("checkManagerAccess: user=%d is not a manager of salon=%d", userID, salonID)
	return ErrAccessDenied
}
