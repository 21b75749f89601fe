package domain

import "math"

const earthRadiusKm = 6371.0

// Coordinates is a GPS position in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Validate checks latitude and longitude ranges.
func (c Coordinates) Validate() error {
	if c.Lat < -90 || c.Lat > 90 || c.Lng < -180 || c.Lng > 180 {
		return ErrInvalidCoordinates
	}
	return nil
}

// DistanceKm returns the great-circle distance to other (haversine).
func (c Coordinates) DistanceKm(other Coordinates) (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	if err := other.Validate(); err != nil {
		return 0, err
	}

	lat1, lat2 := radians(c.Lat), radians(other.Lat)
	dLat := lat2 - lat1
	dLng := radians(other.Lng - c.Lng)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a)), nil
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
