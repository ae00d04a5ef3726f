package get_week_schedule

import (
	"context"

	"github.com/velora-spa/SchedulingService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetWeekSchedule(ctx context.Context, therapistID int64) (*models.WeekScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
