package create_draft

import (
	"context"

	"github.com/CurtBryan/party-lab-sub000/internal/service/drafts/models"
)

type DraftService interface {
	Start(ctx context.Context) (*models.DraftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
