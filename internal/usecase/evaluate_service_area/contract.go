package evaluate_service_area

import (
	"context"

	"github.com/CurtBryan/party-lab-sub000/internal/integrations/geocoder"
)

// Geocoder интерфейс клиента геокодирования адресов
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*geocoder.Coordinates, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
