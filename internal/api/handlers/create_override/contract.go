package create_override

import (
	"context"

	"github.com/CurtBryan/party-lab-sub000/internal/service/overrides/models"
)

type OverrideService interface {
	Create(ctx context.Context, req *models.CreateOverrideRequest) (*models.OverrideResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
