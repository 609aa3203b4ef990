package geocoder

// Coordinates координаты, возвращаемые геокодером
type Coordinates struct {
	Lat float64
	Lng float64
}

// searchResult элемент ответа геокодера в формате Nominatim
type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}
