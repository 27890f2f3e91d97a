package valueobject

// Coordinates is a signed decimal-degree latitude/longitude pair. A nil
// *Coordinates means "no location found"; zero values are valid coordinates
// and must not be used as the absent marker.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

func NewCoordinates(lat, lon float64) *Coordinates {
	return &Coordinates{
		Latitude:  lat,
		Longitude: lon,
	}
}

func (c *Coordinates) IsValid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}
