package delete_draft

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/CurtBryan/party-lab-sub000/internal/api/handlers"
	"github.com/CurtBryan/party-lab-sub000/internal/service/drafts"
)

const (
	msgInvalidSession = "некорректный идентификатор сессии"
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

// Handle DELETE /api/v1/drafts/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	if err := h.service.Delete(r.Context(), sessionID); err != nil {
		switch {
		case errors.Is(err, drafts.ErrInvalidInput):
			h.logger.Warn("DELETE /drafts/{sessionId} - Invalid session id")
			handlers.RespondBadRequest(w, msgInvalidSession)

		default:
			h.logger.Error("DELETE /drafts/{sessionId} - Failed: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /drafts/{sessionId} - Draft deleted: session=%s", sessionID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
