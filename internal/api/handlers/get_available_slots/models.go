package get_available_slots

import (
	getAvailableSlots "github.com/velora-spa/SchedulingService/internal/usecase/get_available_slots"
	"github.com/velora-spa/SchedulingService/pkg/types"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date        string `json:"date"`
	TherapistID int64  `json:"therapistId"`
	ServiceID   int64  `json:"serviceId"`
	StepMinutes int    `json:"stepMinutes"`
	Slots       []Slot `json:"slots"`
}

// Slot модель временного слота с вердиктом доступности
type Slot struct {
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Available       bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]Slot, len(resp.Slots.Slots))
	for i, slot := range resp.Slots.Slots {
		slots[i] = Slot{
			StartTime:       slot.StartTime.String(),
			DurationMinutes: slot.DurationMinutes,
			Available:       slot.Available,
		}
	}

	return &AvailableSlotsResponse{
		Date:        resp.Slots.Date.String(),
		TherapistID: resp.Slots.TherapistID,
		ServiceID:   resp.Slots.ServiceID,
		StepMinutes: resp.Slots.StepMinutes,
		Slots:       slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров HTTP запроса
func ToUseCaseRequest(userID, therapistID, serviceID int64, dateStr string, stepMinutes int) (getAvailableSlots.Request, error) {
	date, err := types.ParseCalendarDate(dateStr)
	if err != nil {
		return getAvailableSlots.Request{}, err
	}

	return getAvailableSlots.Request{
		UserID:      userID,
		TherapistID: therapistID,
		ServiceID:   serviceID,
		Date:        date,
		StepMinutes: stepMinutes,
	}, nil
}
