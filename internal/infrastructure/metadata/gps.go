package metadata

import (
	"github.com/mdourado/box-geotag-service/internal/domain/valueobject"
)

const (
	keyGPSInfo      = "GPSInfo"
	keyLatitude     = "GPSLatitude"
	keyLatitudeRef  = "GPSLatitudeRef"
	keyLongitude    = "GPSLongitude"
	keyLongitudeRef = "GPSLongitudeRef"
)

// Extractor turns image bytes into decimal-degree coordinates.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// Coordinates returns the location embedded in the image, nil when the image
// carries no complete GPS block, or domain.ErrUnreadableImage when the bytes
// are not a parseable image container.
func (e *Extractor) Coordinates(data []byte) (*valueobject.Coordinates, error) {
	tags, err := ParseTags(data)
	if err != nil {
		return nil, err
	}
	return FromTags(tags), nil
}

// FromTags resolves a decoded tag map to coordinates. All four GPS keys must
// be present with their expected shapes; anything less is "not found" (nil),
// never an error.
func FromTags(tags TagMap) *valueobject.Coordinates {
	gps, ok := tags[keyGPSInfo].(TagMap)
	if !ok {
		return nil
	}

	lat, ok := sexagesimal(gps[keyLatitude])
	if !ok {
		return nil
	}
	latRef, ok := gps[keyLatitudeRef].(string)
	if !ok {
		return nil
	}
	lon, ok := sexagesimal(gps[keyLongitude])
	if !ok {
		return nil
	}
	lonRef, ok := gps[keyLongitudeRef].(string)
	if !ok {
		return nil
	}

	latitude := toDegrees(lat)
	if latRef != "N" {
		latitude = -latitude
	}

	longitude := toDegrees(lon)
	if lonRef != "E" {
		longitude = -longitude
	}

	return valueobject.NewCoordinates(latitude, longitude)
}

// toDegrees converts a degrees/minutes/seconds triple to decimal degrees.
// Shared by the latitude and longitude paths.
func toDegrees(v [3]float64) float64 {
	return v[0] + v[1]/60 + v[2]/3600
}

func sexagesimal(v any) ([3]float64, bool) {
	values, ok := v.([]float64)
	if !ok || len(values) != 3 {
		return [3]float64{}, false
	}
	return [3]float64{values[0], values[1], values[2]}, true
}
