package evaluate_service_area

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CurtBryan/party-lab-sub000/internal/domain"
	"github.com/CurtBryan/party-lab-sub000/internal/integrations/geocoder"
)

type stubGeocoder struct {
	coords *geocoder.Coordinates
	err    error
}

func (s *stubGeocoder) Geocode(_ context.Context, _ string) (*geocoder.Coordinates, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.coords, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// pointAtMiles returns coordinates due north of the warehouse at roughly the
// requested distance. One degree of latitude is about 69.17 miles.
func pointAtMiles(miles float64) *geocoder.Coordinates {
	return &geocoder.Coordinates{
		Lat: domain.OriginLatitude + miles/69.17,
		Lng: domain.OriginLongitude,
	}
}

func TestHaversineMiles(t *testing.T) {
	// Warehouse to downtown Tulsa is roughly 100 miles.
	got := haversineMiles(domain.OriginLatitude, domain.OriginLongitude, 36.154, -95.9928)
	assert.InDelta(t, 100, got, 5)

	assert.Zero(t, haversineMiles(domain.OriginLatitude, domain.OriginLongitude,
		domain.OriginLatitude, domain.OriginLongitude))
}

func TestExecute_Classification(t *testing.T) {
	tests := []struct {
		name       string
		miles      float64
		wantStatus domain.ServiceAreaStatus
		wantCharge float64
	}{
		{"well inside inner radius", 10, domain.AreaNoSurcharge, 0},
		{"inner boundary is free", 25.0, domain.AreaNoSurcharge, 0},
		{"just past inner radius", 26, domain.AreaSurcharge, domain.TripSurcharge},
		{"outer boundary is served", 49.9, domain.AreaSurcharge, domain.TripSurcharge},
		{"beyond outer radius", 55, domain.AreaOutOfService, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := New(&stubGeocoder{coords: pointAtMiles(tt.miles)}, nopLogger{})

			resp, err := uc.Execute(context.Background(), &Request{Address: "123 Main St, Edmond OK"})
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, tt.wantCharge, resp.TripSurcharge)
			assert.InDelta(t, tt.miles, resp.DistanceMiles, 0.5)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestExecute_DistanceIsRounded(t *testing.T) {
	uc := New(&stubGeocoder{coords: pointAtMiles(12.34)}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Address: "somewhere"})
	require.NoError(t, err)

	assert.Equal(t, resp.DistanceMiles, math.Round(resp.DistanceMiles*10)/10)
}

func TestExecute_GeocoderNoMatchIsUnresolved(t *testing.T) {
	uc := New(&stubGeocoder{err: geocoder.ErrNoMatch}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Address: "asdf qwerty"})
	require.NoError(t, err)

	assert.Equal(t, domain.AreaUnresolved, resp.Status)
	assert.Zero(t, resp.DistanceMiles)
	assert.Zero(t, resp.TripSurcharge)
}

func TestExecute_GeocoderOutageIsUnresolved(t *testing.T) {
	uc := New(&stubGeocoder{err: errors.New("connection timeout")}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Address: "500 N Broadway"})
	require.NoError(t, err)

	assert.Equal(t, domain.AreaUnresolved, resp.Status)
}

func TestExecute_EmptyAddress(t *testing.T) {
	uc := New(&stubGeocoder{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Address: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
