package delete_override

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/CurtBryan/party-lab-sub000/internal/api/handlers"
	"github.com/CurtBryan/party-lab-sub000/internal/service/overrides"
)

const (
	msgInvalidOverrideID = "некорректный ID правила"
	msgNotFound          = "правило не найдено"
)

type Handler struct {
	service OverrideService
	logger  Logger
}

func NewHandler(service OverrideService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/overrides/{overrideId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	overrideIDStr := mux.Vars(r)["overrideId"]

	overrideID, err := strconv.ParseInt(overrideIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/overrides/{id} - Invalid override ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOverrideID)
		return
	}

	if err := h.service.Delete(r.Context(), overrideID); err != nil {
		switch {
		case errors.Is(err, overrides.ErrOverrideNotFound):
			h.logger.Warn("DELETE /admin/overrides/{id} - Override not found: id=%d", overrideID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, overrides.ErrInvalidInput):
			h.logger.Warn("DELETE /admin/overrides/{id} - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidOverrideID)

		default:
			h.logger.Error("DELETE /admin/overrides/{id} - Failed: id=%d, error=%v", overrideID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/overrides/{id} - Override deleted: id=%d", overrideID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
