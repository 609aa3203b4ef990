package create_override

import (
	"errors"
	"net/http"

	"github.com/CurtBryan/party-lab-sub000/internal/api/handlers"
	"github.com/CurtBryan/party-lab-sub000/internal/service/overrides"
	"github.com/CurtBryan/party-lab-sub000/internal/service/overrides/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidOverride    = "некорректные данные правила"
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

// Handle POST /api/v1/admin/overrides
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOverrideRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/overrides - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	override, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, overrides.ErrInvalidInput):
			h.logger.Warn("POST /admin/overrides - Invalid override: %v", err)
			handlers.RespondBadRequest(w, msgInvalidOverride)

		default:
			h.logger.Error("POST /admin/overrides - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/overrides - Override created: id=%d, date=%s", override.ID, override.Date)
	handlers.RespondJSON(w, http.StatusCreated, override)
}
