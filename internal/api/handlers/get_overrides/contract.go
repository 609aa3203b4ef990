package get_overrides

import (
	"context"
	"time"

	"github.com/CurtBryan/party-lab-sub000/internal/service/overrides/models"
)

type OverrideService interface {
	ListForDate(ctx context.Context, date time.Time) (*models.OverrideListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
