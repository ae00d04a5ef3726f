package update_salon_config

import (
	"github.com/velora-spa/SchedulingService/internal/service/schedule/models"
)

// UpsertConfigRequest HTTP request model
type UpsertConfigRequest struct {
	TherapistID        *int64 `json:"therapistId,omitempty"` // NULL = для всех мастеров салона
	StepMinutes        int    `json:"stepMinutes"`
	AdminStepMinutes   int    `json:"adminStepMinutes"`
	LeadTimeMinutes    int    `json:"leadTimeMinutes"`
	AdvanceBookingDays int    `json:"advanceBookingDays"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpsertConfigRequest) ToServiceRequest(salonID, userID int64) *models.UpsertConfigRequest {
	return &models.UpsertConfigRequest{
		UserID:             userID,
		SalonID:            salonID,
		TherapistID:        r.TherapistID,
		StepMinutes:        r.StepMinutes,
		AdminStepMinutes:   r.AdminStepMinutes,
		LeadTimeMinutes:    r.LeadTimeMinutes,
		AdvanceBookingDays: r.AdvanceBookingDays,
	}
}
