package evaluate_service_area

import (
	"context"

	evaluateServiceArea "github.com/CurtBryan/party-lab-sub000/internal/usecase/evaluate_service_area"
)

type EvaluateServiceAreaUseCase interface {
	Execute(ctx context.Context, req *evaluateServiceArea.Request) (*evaluateServiceArea.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
