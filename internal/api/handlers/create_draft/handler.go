package create_draft

import (
	"net/http"

	"github.com/CurtBryan/party-lab-sub000/internal/api/handlers"
)

type Handler struct {
	service DraftService
	logger  Logger
}

func NewHandler(service DraftService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/drafts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draft, err := h.service.Start(r.Context())
	if err != nil {
		h.logger.Error("POST /drafts - Failed to start draft: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /drafts - Draft created: session=%s", draft.SessionID)
	handlers.RespondJSON(w, http.StatusCreated, draft)
}
