// Package tileconv converts between geographic coordinates and Web Mercator
// ("slippy map") tile indices, and navigates the tile pyramid between zoom
// levels.
//
// None of the functions check their input. They are plain evaluations of the
// projection formulas and always return a result, which is meaningless when
// the input is out of range.
//
// See https://wiki.openstreetmap.org/wiki/Slippy_map_tilenames for details.
package tileconv

import "math"

const degToRad = math.Pi / 180
const radToDeg = 180 / math.Pi

// Tile is a tile index, X is the column and Y the row counted from the
// north-west corner of the world.
type Tile struct {
	X uint32
	Y uint32
}

// Quadrant indices into the result of Split.
const (
	NorthWest = iota
	NorthEast
	SouthWest
	SouthEast
)

// LonLatToTile returns the tile containing the point lon/lat (in degrees) at
// the given zoom level.
//
// Fractional tile positions are truncated toward zero and saturate: NaN and
// negative positions give 0, positions past the uint32 range give
// math.MaxUint32.
func LonLatToTile(lon, lat float64, zoom uint8) (x, y uint32) {
	latRad := lat * degToRad
	n := gridSize(zoom)
	x = truncate((lon + 180) / 360 * n)
	y = truncate((1 - math.Log(math.Tan(latRad)+1/math.Cos(latRad))/math.Pi) / 2 * n)
	return x, y
}

// TileToLonLat returns the longitude and latitude, in degrees, of the
// north-west corner of tile x/y at the given zoom level.
func TileToLonLat(x, y uint32, zoom uint8) (lon, lat float64) {
	return gridToLonLat(float64(x), float64(y), zoom)
}

// TileCenter returns the longitude and latitude, in degrees, of the center of
// tile x/y at the given zoom level.
func TileCenter(x, y uint32, zoom uint8) (lon, lat float64) {
	return gridToLonLat(float64(x)+0.5, float64(y)+0.5, zoom)
}

// Split returns the four tiles tile x/y is divided into at the next zoom
// level, in the order NorthWest, NorthEast, SouthWest, SouthEast.
//
//	+----------+----------+
//	| 2x, 2y   | 2x+1, 2y |
//	+----------+----------+
//	| 2x, 2y+1 | 2x+1,2y+1|
//	+----------+----------+
func Split(x, y uint32) [4]Tile {
	x2 := 2 * x
	y2 := 2 * y
	return [4]Tile{
		NorthWest: {x2, y2},
		NorthEast: {x2 + 1, y2},
		SouthWest: {x2, y2 + 1},
		SouthEast: {x2 + 1, y2 + 1},
	}
}

// Merge returns the tile that contains tile x/y at the previous zoom level.
// It is not meaningful at zoom level 0 but still returns x/2, y/2.
func Merge(x, y uint32) (uint32, uint32) {
	return x / 2, y / 2
}

// Children is Split for a Tile value.
func (t Tile) Children() [4]Tile {
	return Split(t.X, t.Y)
}

// Parent is Merge for a Tile value.
func (t Tile) Parent() Tile {
	x, y := Merge(t.X, t.Y)
	return Tile{x, y}
}

// gridToLonLat inverts the projection for a (possibly fractional) grid
// position.
func gridToLonLat(gx, gy float64, zoom uint8) (lon, lat float64) {
	n := gridSize(zoom)
	lon = gx/n*360 - 180
	lat = math.Atan(math.Sinh(math.Pi*(1-2*gy/n))) * radToDeg
	return lon, lat
}

// gridSize is the number of tiles along each axis, 2^zoom.
func gridSize(zoom uint8) float64 {
	return math.Pow(2, float64(zoom))
}

// truncate converts a grid position to a tile index, truncating toward zero.
// NaN and values <= 0 map to 0, values >= math.MaxUint32 map to
// math.MaxUint32.
func truncate(v float64) uint32 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= math.MaxUint32:
		return math.MaxUint32
	}
	return uint32(v)
}
