package models

import (
	"errors"
	"time"

	"github.com/velora-spa/SchedulingService/internal/domain"
	"github.com/velora-spa/SchedulingService/pkg/types"
)

var (
	// ErrInvalidWeekday возвращается при некорректном дне недели
	ErrInvalidWeekday = errors.New("invalid weekday")

	// ErrDuplicateWeekday возвращается, когда день недели указан дважды
	ErrDuplicateWeekday = errors.New("duplicate weekday")
)

// Request модели

// DaySchedule расписание одного дня недели
// Weekday: 0 = воскресенье ... 6 = суббота
type DaySchedule struct {
	Weekday  int     `json:"weekday"`
	IsOpen   bool    `json:"isOpen"`
	OpensAt  *string `json:"opensAt,omitempty"`  // "09:00", обязательно при isOpen
	ClosesAt *string `json:"closesAt,omitempty"` // "18:00", обязательно при isOpen
}

// UpdateWeekScheduleRequest запрос на замену недельного расписания мастера
type UpdateWeekScheduleRequest struct {
	UserID      int64         `json:"userId"`
	SalonID     int64         `json:"salonId"`
	TherapistID int64         `json:"therapistId"`
	Days        []DaySchedule `json:"days"`
}

// UpsertConfigRequest запрос на создание или обновление конфигурации слотов
type UpsertConfigRequest struct {
	UserID             int64  `json:"userId"`
	SalonID            int64  `json:"salonId"`
	TherapistID        *int64 `json:"therapistId,omitempty"` // NULL = для всех мастеров салона
	StepMinutes        int    `json:"stepMinutes"`
	AdminStepMinutes   int    `json:"adminStepMinutes"`
	LeadTimeMinutes    int    `json:"leadTimeMinutes"`
	AdvanceBookingDays int    `json:"advanceBookingDays"` // 0 = без ограничений
}

// DeleteConfigRequest запрос на удаление конфигурации
type DeleteConfigRequest struct {
	UserID   int64 `json:"userId"`
	SalonID  int64 `json:"salonId"`
	ConfigID int64 `json:"configId"`
}

// Response модели

// WeekScheduleResponse недельное расписание мастера
type WeekScheduleResponse struct {
	TherapistID int64         `json:"therapistId"`
	Days        []DaySchedule `json:"days"`
}

// ConfigResponse ответ с данными конфигурации слотов
type ConfigResponse struct {
	ID                 int64     `json:"id"`
	SalonID            int64     `json:"salonId"`
	TherapistID        *int64    `json:"therapistId,omitempty"`
	StepMinutes        int       `json:"stepMinutes"`
	AdminStepMinutes   int       `json:"adminStepMinutes"`
	LeadTimeMinutes    int       `json:"leadTimeMinutes"`
	AdvanceBookingDays int       `json:"advanceBookingDays"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// ConfigListResponse список конфигураций салона
type ConfigListResponse struct {
	Configs []ConfigResponse `json:"configs"`
}

// Методы конвертации

// ToDomainWindows конвертирует дни недели в доменные окна.
// Каждый день недели может встретиться не более одного раза.
func ToDomainWindows(days []DaySchedule) ([]domain.OperatingWindow, error) {
	seen := make(map[int]bool, len(days))
	windows := make([]domain.OperatingWindow, 0, len(days))

	for _, d := range days {
		if d.Weekday < 0 || d.Weekday > 6 {
			return nil, ErrInvalidWeekday
		}
		if seen[d.Weekday] {
			return nil, ErrDuplicateWeekday
		}
		seen[d.Weekday] = true

		w := domain.OperatingWindow{
			Weekday: time.Weekday(d.Weekday),
			IsOpen:  d.IsOpen,
		}
		if d.IsOpen {
			if d.OpensAt == nil || d.ClosesAt == nil {
				return nil, domain.ErrInvalidOperatingWindow
			}
			opens, err := types.NewTimeStringFromString(*d.OpensAt)
			if err != nil {
				return nil, err
			}
			closes, err := types.NewTimeStringFromString(*d.ClosesAt)
			if err != nil {
				return nil, err
			}
			w.OpensAt = opens
			w.ClosesAt = closes
		}

		if err := w.Validate(); err != nil {
			return nil, err
		}

		windows = append(windows, w)
	}

	return windows, nil
}

// FromDomainWindows конвертирует доменные окна в дни недели
func FromDomainWindows(therapistID int64, windows []domain.OperatingWindow) *WeekScheduleResponse {
	days := make([]DaySchedule, 0, len(windows))
	for _, w := range windows {
		d := DaySchedule{
			Weekday: int(w.Weekday),
			IsOpen:  w.IsOpen,
		}
		if w.IsOpen {
			opens := w.OpensAt.String()
			closes := w.ClosesAt.String()
			d.OpensAt = &opens
			d.ClosesAt = &closes
		}
		days = append(days, d)
	}
	return &WeekScheduleResponse{TherapistID: therapistID, Days: days}
}

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(c *domain.SlotsConfig) *ConfigResponse {
	if c == nil {
		return nil
	}
	return &ConfigResponse{
		ID:                 c.ID,
		SalonID:            c.SalonID,
		TherapistID:        c.TherapistID,
		StepMinutes:        c.StepMinutes,
		AdminStepMinutes:   c.AdminStepMinutes,
		LeadTimeMinutes:    c.LeadTimeMinutes,
		AdvanceBookingDays: c.AdvanceBookingDays,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

// FromDomainConfigList конвертирует список domain моделей в DTO
func FromDomainConfigList(configs []*domain.SlotsConfig) *ConfigListResponse {
	resp := &ConfigListResponse{
		Configs: make([]ConfigResponse, 0, len(configs)),
	}
	for _, c := range configs {
		if converted := FromDomainConfig(c); converted != nil {
			resp.Configs = append(resp.Configs, *converted)
		}
	}
	return resp
}
