package usecases

import (
	"github.com/lintang-b-s/metroplanner/pkg"
	"github.com/lintang-b-s/metroplanner/pkg/costfunction"
	"github.com/lintang-b-s/metroplanner/pkg/datastructure"
	"github.com/lintang-b-s/metroplanner/pkg/engine/routing"
	"github.com/lintang-b-s/metroplanner/pkg/spatialindex"
)

type RoutingEngine interface {
	Search(topology pkg.Topology, algorithm pkg.Algorithm, start, goal string,
		timeOfDay pkg.TimeOfDay) (*routing.SearchResult, error)
	PathLegs(topology pkg.Topology, path []string, timeOfDay pkg.TimeOfDay) ([]costfunction.Leg, bool, error)
	PathLegsAlongLines(topology pkg.Topology, path, lines []string,
		timeOfDay pkg.TimeOfDay) ([]costfunction.Leg, bool, error)
	Network(topology pkg.Topology) (*datastructure.Network, error)
	Coordinates(topology pkg.Topology) (*datastructure.CoordinateIndex, error)
}

type SpatialIndex interface {
	NearestStation(x, y float64) (spatialindex.StationDistance, bool)
	SearchWithinRadius(x, y, radius float64) []spatialindex.StationDistance
}
