package get_salon_config

import (
	"context"

	"github.com/velora-spa/SchedulingService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetSalonConfigs(ctx context.Context, salonID, userID int64) (*models.ConfigListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
