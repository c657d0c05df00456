package datastructure

import (
	"math"
	"sort"

	"github.com/golang/geo/r2"
)

// CoordinateIndex maps station names to planar (x, y) positions. Positions are only used for
// heuristic distance, they are not geographic.
type CoordinateIndex struct {
	coords map[string]r2.Point
}

func NewCoordinateIndex(coords map[string][2]float64) *CoordinateIndex {
	ci := &CoordinateIndex{coords: make(map[string]r2.Point, len(coords))}
	for name, xy := range coords {
		ci.coords[name] = r2.Point{X: xy[0], Y: xy[1]}
	}
	return ci
}

func (ci *CoordinateIndex) Len() int {
	return len(ci.coords)
}

func (ci *CoordinateIndex) Coordinate(name string) (r2.Point, error) {
	p, ok := ci.coords[name]
	if !ok {
		return r2.Point{}, UnknownStationError(name)
	}
	return p, nil
}

// Distance is the straight-line distance between two stations.
func (ci *CoordinateIndex) Distance(a, b string) (float64, error) {
	pa, err := ci.Coordinate(a)
	if err != nil {
		return 0, err
	}
	pb, err := ci.Coordinate(b)
	if err != nil {
		return 0, err
	}
	return EuclideanDistance(pa, pb), nil
}

// ForEach visits stations in name order.
func (ci *CoordinateIndex) ForEach(handle func(name string, p r2.Point)) {
	names := make([]string, 0, len(ci.coords))
	for name := range ci.coords {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		handle(name, ci.coords[name])
	}
}

// EuclideanDistance rounds each square before summing, no fused multiply-add.
func EuclideanDistance(a, b r2.Point) float64 {
	d := a.Sub(b)
	return math.Sqrt(float64(d.X*d.X) + float64(d.Y*d.Y))
}
