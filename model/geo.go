package model

// GeoCoordinates is a latitude/longitude pair. Plain value type,
// comparable with ==.
type GeoCoordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}
