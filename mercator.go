package tileconv

import (
	"errors"
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// MapCoords is a projected coordinate with easting/northing in meters.
type MapCoords struct {
	Easting  float64
	Northing float64
}

// WebMercator provides conversions between geodetic coordinates (latitude
// and longitude) and spherical Web Mercator projection coordinates (easting
// and northing), the planar space the tile grid is laid over.
type WebMercator struct {
	semiMajorAxis float64 // Sphere radius in meters
	halfExtent    float64 // Easting/northing of the grid's east/north edge
}

// NewWebMercator constructs a new WebMercator converter on a sphere of the
// given radius.
func NewWebMercator(semiMajorAxis float64) (*WebMercator, error) {
	if semiMajorAxis <= 0.0 {
		return nil, errors.New("Semi-major axis must be greater than zero")
	}
	return &WebMercator{
		semiMajorAxis: semiMajorAxis,
		halfExtent:    math.Pi * semiMajorAxis,
	}, nil
}

// ConvertFromGeodetic converts geodetic coordinates to Web Mercator
// coordinates. The input is not range checked; the poles project to
// infinite northings.
func (w *WebMercator) ConvertFromGeodetic(geodeticCoordinates s2.LatLng) MapCoords {
	longitude := geodeticCoordinates.Lng.Radians()
	latitude := geodeticCoordinates.Lat.Radians()

	return MapCoords{
		Easting:  w.semiMajorAxis * longitude,
		Northing: w.semiMajorAxis * math.Log(math.Tan(math.Pi/4+latitude/2)),
	}
}

// ConvertToGeodetic converts Web Mercator coordinates to geodetic
// coordinates.
func (w *WebMercator) ConvertToGeodetic(mapProjectionCoordinates MapCoords) s2.LatLng {
	longitude := mapProjectionCoordinates.Easting / w.semiMajorAxis
	latitude := math.Atan(math.Sinh(mapProjectionCoordinates.Northing / w.semiMajorAxis))

	return s2.LatLng{Lat: s1.Angle(latitude), Lng: s1.Angle(longitude)}
}

// TileBounds returns the north-west and south-east corners of tile x/y at the
// given zoom level in Web Mercator coordinates.
func (w *WebMercator) TileBounds(x, y uint32, zoom uint8) (nw, se MapCoords) {
	size := 2 * w.halfExtent / gridSize(zoom)
	nw = MapCoords{
		Easting:  float64(x)*size - w.halfExtent,
		Northing: w.halfExtent - float64(y)*size,
	}
	se = MapCoords{
		Easting:  nw.Easting + size,
		Northing: nw.Northing - size,
	}
	return nw, se
}
