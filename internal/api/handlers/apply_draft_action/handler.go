package apply_draft_action

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/CurtBryan/party-lab-sub000/internal/api/handlers"
	"github.com/CurtBryan/party-lab-sub000/internal/service/drafts"
	"github.com/CurtBryan/party-lab-sub000/internal/service/drafts/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgDraftNotFound      = "черновик не найден или истек"
	msgUnknownAction      = "неизвестное действие"
	msgInvalidAction      = "некорректные данные действия"
	msgStepNotReady       = "предыдущие шаги не заполнены"
	msgSlotUnavailable    = "выбранный слот недоступен"
	msgOutOfServiceArea   = "адрес вне зоны обслуживания"
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

// Handle POST /api/v1/drafts/{sessionId}/actions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req models.ApplyActionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /drafts/{sessionId}/actions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	draft, err := h.service.Apply(r.Context(), sessionID, &req)
	if err != nil {
		switch {
		case errors.Is(err, drafts.ErrDraftNotFound):
			h.logger.Warn("POST /drafts/{sessionId}/actions - Draft not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		case errors.Is(err, drafts.ErrUnknownAction):
			h.logger.Warn("POST /drafts/{sessionId}/actions - Unknown action %q: session=%s", req.Action, sessionID)
			handlers.RespondBadRequest(w, msgUnknownAction)

		case errors.Is(err, drafts.ErrInvalidInput):
			h.logger.Warn("POST /drafts/{sessionId}/actions - Invalid action data: session=%s, action=%s, error=%v",
				sessionID, req.Action, err)
			handlers.RespondBadRequest(w, msgInvalidAction)

		case errors.Is(err, drafts.ErrStepNotReady):
			h.logger.Warn("POST /drafts/{sessionId}/actions - Step not ready: session=%s, action=%s", sessionID, req.Action)
			handlers.RespondError(w, http.StatusConflict, msgStepNotReady)

		case errors.Is(err, drafts.ErrSlotUnavailable):
			h.logger.Warn("POST /drafts/{sessionId}/actions - Slot unavailable: session=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable)

		case errors.Is(err, drafts.ErrOutOfServiceArea):
			h.logger.Warn("POST /drafts/{sessionId}/actions - Out of service area: session=%s", sessionID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgOutOfServiceArea)

		default:
			h.logger.Error("POST /drafts/{sessionId}/actions - Failed: session=%s, action=%s, error=%v",
				sessionID, req.Action, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /drafts/{sessionId}/actions - Applied %s: session=%s, step=%d",
		req.Action, sessionID, draft.Step)
	handlers.RespondJSON(w, http.StatusOK, draft)
}
