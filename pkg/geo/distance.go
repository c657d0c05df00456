package geo

import (
	"github.com/golang/geo/r2"
	"github.com/lintang-b-s/metroplanner/pkg/datastructure"
)

// Coordinate is the JSON form of a schematic station position.
type Coordinate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewCoordinateFromPoint(p r2.Point) Coordinate {
	return Coordinate{
		X: p.X,
		Y: p.Y,
	}
}

// PathLength sums the straight-line distances between consecutive points, in coordinate units.
func PathLength(points []r2.Point) float64 {
	length := 0.0
	for i := 1; i < len(points); i++ {
		length += datastructure.EuclideanDistance(points[i-1], points[i])
	}
	return length
}
