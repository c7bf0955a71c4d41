package tileconv

import "github.com/paulmach/orb/maptile"

// MapTile returns the tile as an orb maptile at the given zoom level.
func (t Tile) MapTile(zoom uint8) maptile.Tile {
	return maptile.New(t.X, t.Y, maptile.Zoom(zoom))
}

// FromMapTile splits an orb maptile into its tile index and zoom level.
// Zoom levels above 255 are truncated.
func FromMapTile(mt maptile.Tile) (Tile, uint8) {
	return Tile{X: mt.X, Y: mt.Y}, uint8(mt.Z)
}
