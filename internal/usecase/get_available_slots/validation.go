package get_available_slots

import (
	"fmt"

	"github.com/velora-spa/SchedulingService/internal/domain"
)

// validateRequest проверяет корректность входных данных
func validateRequest(req Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: user_id must be positive", ErrInvalidInput)
	}

	if req.TherapistID <= 0 {
		return fmt.Errorf("%w: therapist_id must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: service_id must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 0 означает "взять шаг из конфигурации"
	if req.StepMinutes != 0 && (req.StepMinutes < domain.MinStepMinutes || req.StepMinutes > domain.MaxStepMinutes) {
		return fmt.Errorf("%w: step_minutes must be between %d and %d",
			ErrInvalidInput, domain.MinStepMinutes, domain.MaxStepMinutes)
	}

	return nil
}

// validateServiceDuration проверяет длительность услуги из каталога.
// Невалидная длительность - проблема данных каталога, а не запроса.
func validateServiceDuration(durationMinutes int) error {
	if durationMinutes < domain.MinServiceDuration || durationMinutes > domain.MaxServiceDuration {
		return fmt.Errorf("%w: duration_minutes=%d, must be between %d and %d",
			ErrInvalidServiceDuration, durationMinutes,
			domain.MinServiceDuration, domain.MaxServiceDuration)
	}
	return nil
}
