package tileconv_test

import (
	"fmt"

	"github.com/golang/geo/s2"
	"github.com/slippymap/tileconv"
)

func ExampleLonLatToTile() {
	x, y := tileconv.LonLatToTile(12.3046875, 45.460130637921, 13)
	fmt.Println(x, y)
	// Output: 4376 2932
}

func ExampleTileToLonLat() {
	lon, lat := tileconv.TileToLonLat(4376, 2932, 13)
	fmt.Printf("%.4f %.4f\n", lon, lat)
	// Output: 12.3047 45.4601
}

func ExampleSplit() {
	fmt.Println(tileconv.Split(1, 1))
	// Output: [{2 2} {3 2} {2 3} {3 3}]
}

func ExampleMerge() {
	fmt.Println(tileconv.Merge(5, 7))
	// Output: 2 3
}

func ExampleLatLngToTile() {
	tile := tileconv.LatLngToTile(s2.LatLngFromDegrees(0, 0), 1)
	fmt.Println(tile.X, tile.Y)
	// Output: 1 1
}
