package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/velora-spa/SchedulingService/internal/api/handlers"
	"github.com/velora-spa/SchedulingService/internal/api/middleware"
	getAvailableSlots "github.com/velora-spa/SchedulingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidTherapistID = "некорректный ID мастера"
	msgInvalidServiceID   = "некорректный ID услуги"
	msgMissingServiceID   = "ID услуги обязателен"
	msgMissingDate        = "дата обязательна"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStep        = "некорректный шаг сетки"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgTherapistNotFound  = "мастер не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgDateTooFar         = "дата превышает горизонт бронирования"
	msgInvalidInput       = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/therapists/{therapistId}/available-slots
// Query params: serviceId (required), date (required, YYYY-MM-DD), step (optional, minutes)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	therapistID, err := strconv.ParseInt(vars["therapistId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /therapists/{id}/available-slots - Invalid therapist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTherapistID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /therapists/{id}/available-slots - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	serviceIDStr := r.URL.Query().Get("serviceId")
	if serviceIDStr == "" {
		h.logger.Warn("GET /therapists/{id}/available-slots - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /therapists/{id}/available-slots - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /therapists/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Шаг сетки опционален: 0 - взять из конфигурации салона
	stepMinutes := 0
	if stepStr := r.URL.Query().Get("step"); stepStr != "" {
		stepMinutes, err = strconv.Atoi(stepStr)
		if err != nil || stepMinutes <= 0 {
			h.logger.Warn("GET /therapists/{id}/available-slots - Invalid step: %q", stepStr)
			handlers.RespondBadRequest(w, msgInvalidStep)
			return
		}
	}

	useCaseReq, err := ToUseCaseRequest(userID, therapistID, serviceID, dateStr, stepMinutes)
	if err != nil {
		h.logger.Warn("GET /therapists/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrTherapistNotFound):
			h.logger.Warn("GET /therapists/{id}/available-slots - Therapist not found: therapist_id=%d", therapistID)
			handlers.RespondNotFound(w, msgTherapistNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /therapists/{id}/available-slots - Service not found: therapist_id=%d, service_id=%d",
				therapistID, serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			h.logger.Warn("GET /therapists/{id}/available-slots - Date too far in future: therapist_id=%d, date=%s",
				therapistID, dateStr)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput),
			errors.Is(err, getAvailableSlots.ErrInvalidServiceDuration):
			h.logger.Warn("GET /therapists/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /therapists/{id}/available-slots - Failed to get slots: therapist_id=%d, service_id=%d, error=%v",
				therapistID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /therapists/{id}/available-slots - Slots retrieved successfully: therapist_id=%d, service_id=%d, slots_count=%d",
		therapistID, serviceID, len(response.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
