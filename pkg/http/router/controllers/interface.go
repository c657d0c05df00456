package controllers

import (
	"github.com/lintang-b-s/metroplanner/pkg"
	"github.com/lintang-b-s/metroplanner/pkg/http/usecases"
	"github.com/lintang-b-s/metroplanner/pkg/spatialindex"
)

type RoutingService interface {
	ComputeRoute(topology pkg.Topology, algorithm pkg.Algorithm, origin, destination usecases.Location,
		timeOfDay pkg.TimeOfDay) (*usecases.Route, error)
	CompareRoutes(topology pkg.Topology, origin, destination usecases.Location,
		timeOfDay pkg.TimeOfDay) ([]*usecases.Route, error)
	PathCost(topology pkg.Topology, stations []string, timeOfDay pkg.TimeOfDay) (*usecases.PathCostResult, error)
	Stations(topology pkg.Topology) ([]usecases.StationInfo, error)
	NearestStations(topology pkg.Topology, x, y, radius float64) ([]spatialindex.StationDistance, error)
}
