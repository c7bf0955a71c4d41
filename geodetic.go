package tileconv

import (
	"github.com/golang/geo/r1"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// LatLngToTile returns the tile containing the geodetic coordinate at the
// given zoom level.
func LatLngToTile(geodeticCoordinates s2.LatLng, zoom uint8) Tile {
	x, y := LonLatToTile(geodeticCoordinates.Lng.Degrees(), geodeticCoordinates.Lat.Degrees(), zoom)
	return Tile{X: x, Y: y}
}

// TileToLatLng returns the north-west corner of the tile as a geodetic
// coordinate.
func TileToLatLng(t Tile, zoom uint8) s2.LatLng {
	lon, lat := TileToLonLat(t.X, t.Y, zoom)
	return s2.LatLngFromDegrees(lat, lon)
}

// TileBounds returns the geodetic rectangle covered by tile x/y at the given
// zoom level.
func TileBounds(x, y uint32, zoom uint8) s2.Rect {
	west, north := gridToLonLat(float64(x), float64(y), zoom)
	east, south := gridToLonLat(float64(x)+1, float64(y)+1, zoom)
	return s2.Rect{
		Lat: r1.Interval{Lo: south * degToRad, Hi: north * degToRad},
		Lng: s1.IntervalFromEndpoints(west*degToRad, east*degToRad),
	}
}
