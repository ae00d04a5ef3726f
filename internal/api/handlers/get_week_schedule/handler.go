package get_week_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/velora-spa/SchedulingService/internal/api/handlers"
	"github.com/velora-spa/SchedulingService/internal/service/schedule"
)

const (
	msgInvalidTherapistID = "некорректный ID мастера"
	msgTherapistNotFound  = "мастер не найден"
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

// Handle GET /api/v1/therapists/{therapistId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	therapistID, err := strconv.ParseInt(vars["therapistId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /therapists/{id}/schedule - Invalid therapist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTherapistID)
		return
	}

	result, err := h.service.GetWeekSchedule(r.Context(), therapistID)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrTherapistNotFound):
			h.logger.Warn("GET /therapists/{id}/schedule - Therapist not found: therapist_id=%d", therapistID)
			handlers.RespondNotFound(w, msgTherapistNotFound)

		default:
			h.logger.Error("GET /therapists/{id}/schedule - Failed to get schedule: therapist_id=%d, error=%v",
				therapistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /therapists/{id}/schedule - Schedule retrieved successfully: therapist_id=%d, days=%d",
		therapistID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, result)
}
