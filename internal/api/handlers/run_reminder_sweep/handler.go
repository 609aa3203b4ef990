package run_reminder_sweep

import (
	"net/http"

	"github.com/CurtBryan/party-lab-sub000/internal/api/handlers"
	reminderSweep "github.com/CurtBryan/party-lab-sub000/internal/usecase/reminder_sweep"
)

// SweepResponse HTTP response model
type SweepResponse struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

type Handler struct {
	useCase ReminderSweepUseCase
	logger  Logger
}

func NewHandler(useCase ReminderSweepUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/jobs/reminder-sweep
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context(), &reminderSweep.Request{})
	if err != nil {
		h.logger.Error("POST /jobs/reminder-sweep - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /jobs/reminder-sweep - Swept %d bookings: %d reminded, %d failed",
		result.Total, result.Successful, result.Failed)
	handlers.RespondJSON(w, http.StatusOK, &SweepResponse{
		Total:      result.Total,
		Successful: result.Successful,
		Failed:     result.Failed,
	})
}
