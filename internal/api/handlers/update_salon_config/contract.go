package update_salon_config

import (
	"context"

	"github.com/velora-spa/SchedulingService/internal/service/schedule/models"
)

type ScheduleService interface {
	UpsertConfig(ctx context.Context, req *models.UpsertConfigRequest) (*models.ConfigResponse, error)
	DeleteConfig(ctx context.Context, req *models.DeleteConfigRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
