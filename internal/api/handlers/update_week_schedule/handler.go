package update_week_schedule

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/velora-spa/SchedulingService/internal/api/handlers"
	"github.com/velora-spa/SchedulingService/internal/api/middleware"
	"github.com/velora-spa/SchedulingService/internal/service/schedule"
	"github.com/velora-spa/SchedulingService/internal/service/schedule/models"
)

const (
	msgInvalidSalonID     = "некорректный ID салона"
	msgInvalidTherapistID = "некорректный ID мастера"
	msgInvalidBody        = "некорректное тело запроса"
	msgInvalidSchedule    = "некорректное расписание"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgSalonNotFound      = "салон не найден"
	msgTherapistNotFound  = "мастер не найден"
	msgForbidden          = "доступ запрещен"
)

// UpdateWeekScheduleRequest HTTP request model
type UpdateWeekScheduleRequest struct {
	SalonID int64                `json:"salonId"`
	Days    []models.DaySchedule `json:"days"`
}

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/therapists/{therapistId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	therapistID, err := strconv.ParseInt(vars["therapistId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /therapists/{id}/schedule - Invalid therapist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTherapistID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /therapists/{id}/schedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateWeekScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("PUT /therapists/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if req.SalonID <= 0 {
		h.logger.Warn("PUT /therapists/{id}/schedule - Invalid salon ID: %d", req.SalonID)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	result, err := h.service.UpdateWeekSchedule(r.Context(), &models.UpdateWeekScheduleRequest{
		UserID:      userID,
		SalonID:     req.SalonID,
		TherapistID: therapistID,
		Days:        req.Days,
	})
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrSalonNotFound):
			h.logger.Warn("PUT /therapists/{id}/schedule - Salon not found: salon_id=%d", req.SalonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, schedule.ErrTherapistNotFound):
			h.logger.Warn("PUT /therapists/{id}/schedule - Therapist not found: therapist_id=%d", therapistID)
			handlers.RespondNotFound(w, msgTherapistNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("PUT /therapists/{id}/schedule - Access denied: therapist_id=%d, user_id=%d",
				therapistID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /therapists/{id}/schedule - Invalid schedule: therapist_id=%d, error=%v",
				therapistID, err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)

		default:
			h.logger.Error("PUT /therapists/{id}/schedule - Failed to update schedule: therapist_id=%d, error=%v",
				therapistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /therapists/{id}/schedule - Schedule updated successfully: therapist_id=%d, days=%d",
		therapistID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, result)
}
