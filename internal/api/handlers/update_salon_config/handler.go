package update_salon_config

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
	msgInvalidSalonID    = "некорректный ID салона"
	msgInvalidConfigID   = "некорректный ID конфигурации"
	msgInvalidBody       = "некорректное тело запроса"
	msgInvalidConfig     = "некорректные настройки конфигурации"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgSalonNotFound     = "салон не найден"
	msgTherapistNotFound = "мастер не найден"
	msgConfigNotFound    = "конфигурация не найдена"
	msgForbidden         = "доступ запрещен"
)

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

// Handle PUT /api/v1/salons/{salonId}/slots-config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	salonID, err := strconv.ParseInt(vars["salonId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /salons/{id}/slots-config - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /salons/{id}/slots-config - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpsertConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("PUT /salons/{id}/slots-config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.UpsertConfig(r.Context(), req.ToServiceRequest(salonID, userID))
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrSalonNotFound):
			h.logger.Warn("PUT /salons/{id}/slots-config - Salon not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, schedule.ErrTherapistNotFound):
			h.logger.Warn("PUT /salons/{id}/slots-config - Therapist not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgTherapistNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("PUT /salons/{id}/slots-config - Access denied: salon_id=%d, user_id=%d",
				salonID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /salons/{id}/slots-config - Invalid config: salon_id=%d, error=%v", salonID, err)
			handlers.RespondBadRequest(w, msgInvalidConfig)

		default:
			h.logger.Error("PUT /salons/{id}/slots-config - Failed to upsert config: salon_id=%d, error=%v",
				salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /salons/{id}/slots-config - Config upserted successfully: config_id=%d, salon_id=%d",
		result.ID, salonID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/salons/{salonId}/slots-config/{configId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	salonID, err := strconv.ParseInt(vars["salonId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /salons/{id}/slots-config/{id} - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	configID, err := strconv.ParseInt(vars["configId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /salons/{id}/slots-config/{id} - Invalid config ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidConfigID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /salons/{id}/slots-config/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	err = h.service.DeleteConfig(r.Context(), &models.DeleteConfigRequest{
		UserID:   userID,
		SalonID:  salonID,
		ConfigID: configID,
	})
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrSalonNotFound):
			h.logger.Warn("DELETE /salons/{id}/slots-config/{id} - Salon not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, schedule.ErrConfigNotFound):
			h.logger.Warn("DELETE /salons/{id}/slots-config/{id} - Config not found: config_id=%d", configID)
			handlers.RespondNotFound(w, msgConfigNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("DELETE /salons/{id}/slots-config/{id} - Access denied: salon_id=%d, user_id=%d",
				salonID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /salons/{id}/slots-config/{id} - Failed to delete config: config_id=%d, error=%v",
				configID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /salons/{id}/slots-config/{id} - Config deleted successfully: config_id=%d, salon_id=%d",
		configID, salonID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
