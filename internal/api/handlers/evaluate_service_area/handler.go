package evaluate_service_area

import (
	"errors"
	"net/http"

	"github.com/CurtBryan/party-lab-sub000/internal/api/handlers"
	evaluateServiceArea "github.com/CurtBryan/party-lab-sub000/internal/usecase/evaluate_service_area"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingAddress     = "отсутствует адрес"
)

type Handler struct {
	useCase EvaluateServiceAreaUseCase
	logger  Logger
}

func NewHandler(useCase EvaluateServiceAreaUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/service-area
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req EvaluateServiceAreaRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /service-area - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &evaluateServiceArea.Request{Address: req.Address})
	if err != nil {
		switch {
		case errors.Is(err, evaluateServiceArea.ErrInvalidInput):
			h.logger.Warn("POST /service-area - Missing address")
			handlers.RespondBadRequest(w, msgMissingAddress)

		default:
			h.logger.Error("POST /service-area - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /service-area - Address classified as %s (%.1f miles)",
		result.Status, result.DistanceMiles)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
