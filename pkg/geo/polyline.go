package geo

import (
	"github.com/golang/geo/r2"
	"github.com/twpayne/go-polyline"
)

// PolylineFromPoints encodes points as a Google encoded polyline, y is stored in the latitude slot
// and x in the longitude slot.
func PolylineFromPoints(points []r2.Point) string {
	coords := make([][]float64, len(points))
	for i, p := range points {
		coords[i] = []float64{p.Y, p.X}
	}
	return string(polyline.EncodeCoords(coords))
}

func PointsFromPolyline(s string) ([]r2.Point, error) {
	coords, _, err := polyline.DecodeCoords([]byte(s))
	if err != nil {
		return nil, err
	}
	points := make([]r2.Point, len(coords))
	for i, c := range coords {
		points[i] = r2.Point{X: c[1], Y: c[0]}
	}
	return points, nil
}
