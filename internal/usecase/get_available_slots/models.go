package get_available_slots

import (
	"github.com/velora-spa/SchedulingService/pkg/types"
)

// Request запрос на получение доступных слотов
type Request struct {
	UserID      int64              // ID пользователя (из заголовка аутентификации)
	TherapistID int64              // ID мастера
	ServiceID   int64              // ID услуги
	Date        types.CalendarDate // дата в локальной таймзоне салона
	StepMinutes int                // шаг сетки; 0 - взять из конфигурации
}

// Slot один слот сетки с вердиктом доступности
type Slot struct {
	StartTime       types.TimeString `json:"start_time"`
	DurationMinutes int              `json:"duration_minutes"`
	Available       bool             `json:"available"`
}

// Response ответ со всей сеткой слотов на дату.
// Возвращаем полную сетку, а не только свободные слоты:
// клиенту нужно показывать занятые позиции серым.
type Slots struct {
	TherapistID int64              `json:"therapist_id"`
	ServiceID   int64              `json:"service_id"`
	Date        types.CalendarDate `json:"date"`
	StepMinutes int                `json:"step_minutes"`
	Slots       []Slot             `json:"slots"`
}

// Response результат usecase
type Response struct {
	Slots Slots
}
