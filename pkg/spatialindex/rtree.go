package spatialindex

import (
	"math"
	"sort"

	"github.com/golang/geo/r2"
	"github.com/lintang-b-s/metroplanner/pkg/datastructure"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

// Rtree indexes station positions so that a query point can be snapped to a station.
type Rtree struct {
	tr *rtree.RTreeG[StationPoint]
}

type StationPoint struct {
	name  string
	point r2.Point
}

func (sp StationPoint) GetName() string {
	return sp.name
}

func (sp StationPoint) GetPoint() r2.Point {
	return sp.point
}

func newStationPoint(name string, p r2.Point) StationPoint {
	return StationPoint{name: name, point: p}
}

// StationDistance is a station found by a query with its distance to the query point.
type StationDistance struct {
	StationPoint
	Distance float64
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[StationPoint]
	return &Rtree{
		tr: &tr,
	}
}

// Build indexes every station of network that has a coordinate.
func (rt *Rtree) Build(network *datastructure.Network, coords *datastructure.CoordinateIndex, log *zap.Logger) {
	log.Info("Building R-tree spatial index...", zap.String("network", network.Name()))
	skipped := 0
	for _, name := range network.Stations() {
		p, err := coords.Coordinate(name)
		if err != nil {
			skipped++
			continue
		}
		xy := [2]float64{p.X, p.Y}
		rt.tr.Insert(xy, xy, newStationPoint(name, p))
	}
	log.Info("R-tree spatial index built.", zap.Int("stations", rt.tr.Len()), zap.Int("withoutCoordinate", skipped))
}

func (rt *Rtree) Len() int {
	return rt.tr.Len()
}

// NearestStation returns the station closest to (x, y). Equidistant stations are resolved by name.
func (rt *Rtree) NearestStation(x, y float64) (StationDistance, bool) {
	q := [2]float64{x, y}
	best := make([]StationDistance, 0, 1)
	bestSq := math.Inf(1)

	rt.tr.Nearby(
		rtree.BoxDist(q, q, func(min, max [2]float64, data StationPoint) float64 {
			return squaredDistance(q, min)
		}),
		func(min, max [2]float64, data StationPoint, distSq float64) bool {
			if distSq > bestSq {
				return false
			}
			bestSq = distSq
			best = append(best, StationDistance{StationPoint: data, Distance: math.Sqrt(distSq)})
			return true
		},
	)
	if len(best) == 0 {
		return StationDistance{}, false
	}
	sortByDistance(best)
	return best[0], true
}

// SearchWithinRadius returns the stations within radius of (x, y), nearest first.
func (rt *Rtree) SearchWithinRadius(x, y, radius float64) []StationDistance {
	q := [2]float64{x, y}
	results := make([]StationDistance, 0, 10)
	rt.tr.Search([2]float64{x - radius, y - radius}, [2]float64{x + radius, y + radius},
		func(min, max [2]float64, data StationPoint) bool {
			d := math.Sqrt(squaredDistance(q, min))
			if d <= radius {
				results = append(results, StationDistance{StationPoint: data, Distance: d})
			}
			return true
		})
	sortByDistance(results)
	return results
}

func squaredDistance(a, b [2]float64) float64 {
	dx, dy := a[0]-b[0], a[1]-b[1]
	return dx*dx + dy*dy
}

func sortByDistance(sds []StationDistance) {
	sort.Slice(sds, func(i, j int) bool {
		if sds[i].Distance != sds[j].Distance {
			return sds[i].Distance < sds[j].Distance
		}
		return sds[i].name < sds[j].name
	})
}
