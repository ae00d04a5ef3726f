package get_day_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/velora-spa/SchedulingService/internal/api/handlers"
	"github.com/velora-spa/SchedulingService/internal/api/middleware"
	getDayCalendar "github.com/velora-spa/SchedulingService/internal/usecase/get_day_calendar"
	"github.com/velora-spa/SchedulingService/pkg/types"
)

const (
	msgInvalidSalonID     = "некорректный ID салона"
	msgInvalidTherapistID = "некорректный ID мастера"
	msgMissingDate        = "дата обязательна"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgSalonNotFound      = "салон не найден"
	msgTherapistNotFound  = "мастер не найден"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	useCase GetDayCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetDayCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/therapists/{therapistId}/calendar
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	salonID, err := strconv.ParseInt(vars["salonId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/therapists/{id}/calendar - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	therapistID, err := strconv.ParseInt(vars["therapistId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/therapists/{id}/calendar - Invalid therapist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTherapistID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /salons/{id}/therapists/{id}/calendar - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /salons/{id}/therapists/{id}/calendar - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := types.ParseCalendarDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/therapists/{id}/calendar - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), getDayCalendar.Request{
		UserID:      userID,
		SalonID:     salonID,
		TherapistID: therapistID,
		Date:        date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getDayCalendar.ErrSalonNotFound):
			h.logger.Warn("GET /salons/{id}/therapists/{id}/calendar - Salon not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, getDayCalendar.ErrTherapistNotFound):
			h.logger.Warn("GET /salons/{id}/therapists/{id}/calendar - Therapist not found: therapist_id=%d",
				therapistID)
			handlers.RespondNotFound(w, msgTherapistNotFound)

		case errors.Is(err, getDayCalendar.ErrPermissionDenied):
			h.logger.Warn("GET /salons/{id}/therapists/{id}/calendar - Access denied: salon_id=%d, user_id=%d",
				salonID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, getDayCalendar.ErrInvalidInput):
			h.logger.Warn("GET /salons/{id}/therapists/{id}/calendar - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /salons/{id}/therapists/{id}/calendar - Failed to get calendar: therapist_id=%d, error=%v",
				therapistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /salons/{id}/therapists/{id}/calendar - Calendar retrieved successfully: therapist_id=%d, date=%s, bookings=%d",
		therapistID, dateStr, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
