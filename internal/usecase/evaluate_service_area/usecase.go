package evaluate_service_area

import (
	"context"
	"fmt"
	"strings"

	"github.com/CurtBryan/party-lab-sub000/internal/domain"
)

// UseCase бизнес-логика оценки адреса относительно зоны обслуживания
type UseCase struct {
	geocoder Geocoder
	log      Logger
}

func New(geocoder Geocoder, log Logger) *UseCase {
	return &UseCase{
		geocoder: geocoder,
		log:      log,
	}
}

// Execute geocodes the delivery address and classifies it against the two
// service radii measured from the warehouse. Both radii are inclusive on the
// cheaper side: exactly 25 miles is free delivery, exactly 50 miles is still
// served with the surcharge.
//
// A geocoding failure never rejects the customer. The address is classified
// as unresolved so the wizard can proceed and the crew can confirm the
// distance by hand before the event.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || strings.TrimSpace(req.Address) == "" {
		return nil, fmt.Errorf("%w: address is required", ErrInvalidInput)
	}

	coords, err := uc.geocoder.Geocode(ctx, req.Address)
	if err != nil {
		uc.log.Warn("[evaluate_service_area.Execute] could not geocode %q: %v", req.Address, err)
		return &Response{
			Status:  domain.AreaUnresolved,
			Message: "We could not verify this address automatically. We will confirm delivery details with you before the event.",
		}, nil
	}

	miles := domain.RoundDistance(haversineMiles(
		domain.OriginLatitude, domain.OriginLongitude,
		coords.Lat, coords.Lng,
	))

	switch {
	case miles <= domain.ServiceAreaInnerRadiusMiles:
		return &Response{
			Status:        domain.AreaNoSurcharge,
			DistanceMiles: miles,
			Message:       fmt.Sprintf("You are %.1f miles away. Delivery is free.", miles),
		}, nil
	case miles <= domain.ServiceAreaOuterRadiusMiles:
		return &Response{
			Status:        domain.AreaSurcharge,
			DistanceMiles: miles,
			TripSurcharge: domain.TripSurcharge,
			Message: fmt.Sprintf("You are %.1f miles away. A $%.0f trip charge applies.",
				miles, domain.TripSurcharge),
		}, nil
	default:
		return &Response{
			Status:        domain.AreaOutOfService,
			DistanceMiles: miles,
			Message: fmt.Sprintf("You are %.1f miles away, outside our %.0f-mile service area.",
				miles, domain.ServiceAreaOuterRadiusMiles),
		}, nil
	}
}
