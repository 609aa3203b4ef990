package apply_draft_action

import (
	"context"

	"github.com/CurtBryan/party-lab-sub000/internal/service/drafts/models"
)

type DraftService interface {
	Apply(ctx context.Context, sessionID string, req *models.ApplyActionRequest) (*models.DraftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
