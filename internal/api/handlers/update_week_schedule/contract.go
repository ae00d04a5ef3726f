package update_week_schedule

import (
	"context"

	"github.com/velora-spa/SchedulingService/internal/service/schedule/models"
)

type ScheduleService interface {
	UpdateWeekSchedule(ctx context.Context, req *models.UpdateWeekScheduleRequest) (*models.WeekScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
