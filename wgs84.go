package tileconv

import "fmt"

var wgs84WebMercator *WebMercator

func init() {
	const semiMajorAxis = 6378137
	var err error
	wgs84WebMercator, err = NewWebMercator(semiMajorAxis)
	if err != nil {
		panic(fmt.Sprintf("error constructing WGS84 Web Mercator converter: %s", err))
	}
}

// WGS84WebMercator returns the Web Mercator converter on the WGS84
// semi-major axis sphere (EPSG:3857). The converter has no mutable state.
func WGS84WebMercator() *WebMercator {
	return wgs84WebMercator
}
