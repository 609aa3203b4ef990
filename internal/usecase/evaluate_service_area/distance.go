package evaluate_service_area

import "math"

const (
	earthRadiusKm   = 6371.0
	milesPerKm      = 0.621371
	degreesToRadian = math.Pi / 180
)

// haversineMiles вычисляет расстояние по дуге большого круга между двумя
// точками в милях
func haversineMiles(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * degreesToRadian
	dLng := (lng2 - lng1) * degreesToRadian

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*degreesToRadian)*math.Cos(lat2*degreesToRadian)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c * milesPerKm
}
