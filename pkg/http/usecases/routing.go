package usecases

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lintang-b-s/metroplanner/pkg"
	"github.com/lintang-b-s/metroplanner/pkg/costfunction"
	"github.com/lintang-b-s/metroplanner/pkg/engine/routing"
	"github.com/lintang-b-s/metroplanner/pkg/metrics"
	"github.com/lintang-b-s/metroplanner/pkg/spatialindex"
	"github.com/lintang-b-s/metroplanner/pkg/util"
	"go.uber.org/zap"
)

// Location is a route endpoint given either by station name or by a point that is snapped to the
// nearest station.
type Location struct {
	Station string
	X, Y    float64
	byPoint bool
}

func StationLocation(name string) Location {
	return Location{Station: name}
}

func PointLocation(x, y float64) Location {
	return Location{X: x, Y: y, byPoint: true}
}

func (l Location) ByPoint() bool {
	return l.byPoint
}

type Route struct {
	Topology        pkg.Topology
	Algorithm       pkg.Algorithm
	TimeOfDay       pkg.TimeOfDay
	Origin          string
	Destination     string
	OriginSnap      *spatialindex.StationDistance
	DestinationSnap *spatialindex.StationDistance

	Path          []string
	Lines         []string
	Legs          []costfunction.Leg
	Cost          float64
	NodesExpanded int
	Found         bool

	Polyline string
	Length   float64
	Cached   bool
}

type PathCostResult struct {
	Topology  pkg.Topology
	Stations  []string
	Legs      []costfunction.Leg
	Cost      float64
	Reachable bool
}

type StationInfo struct {
	Name          string
	X, Y          float64
	HasCoordinate bool
	Lines         []string
	OutDegree     int
}

type searchKey struct {
	topology    pkg.Topology
	algorithm   pkg.Algorithm
	origin      string
	destination string
	timeOfDay   pkg.TimeOfDay
}

type RoutingService struct {
	log          *zap.Logger
	engine       RoutingEngine
	spatialIndex map[pkg.Topology]SpatialIndex
	cache        *lru.Cache[searchKey, *routing.SearchResult]
	metric       *metrics.Metric
}

// NewRoutingService caches up to cacheSize search results. Searches are deterministic over
// immutable networks so a cached result never goes stale.
func NewRoutingService(log *zap.Logger, engine RoutingEngine, spatialIndex map[pkg.Topology]SpatialIndex,
	cacheSize int, metric *metrics.Metric) (*RoutingService, error) {
	if cacheSize < 1 {
		cacheSize = 1
	}
	cache, err := lru.New[searchKey, *routing.SearchResult](cacheSize)
	if err != nil {
		return nil, err
	}
	return &RoutingService{
		log:          log,
		engine:       engine,
		spatialIndex: spatialIndex,
		cache:        cache,
		metric:       metric,
	}, nil
}

func (rs *RoutingService) ComputeRoute(topology pkg.Topology, algorithm pkg.Algorithm, origin, destination Location,
	timeOfDay pkg.TimeOfDay) (*Route, error) {
	if !algorithm.Valid() {
		return nil, util.WrapErrorf(pkg.ErrUnknownAlgorithm, util.ErrBadParamInput, "%s", pkg.ErrUnknownAlgorithm)
	}
	originName, originSnap, err := rs.resolveLocation(topology, origin)
	if err != nil {
		return nil, err
	}
	destinationName, destinationSnap, err := rs.resolveLocation(topology, destination)
	if err != nil {
		return nil, err
	}

	route, err := rs.route(topology, algorithm, originName, destinationName, timeOfDay)
	if err != nil {
		return nil, err
	}
	route.OriginSnap, route.DestinationSnap = originSnap, destinationSnap
	return route, nil
}

// CompareRoutes runs every algorithm for the same query, in DFS, BFS, GBFS, A* order.
func (rs *RoutingService) CompareRoutes(topology pkg.Topology, origin, destination Location,
	timeOfDay pkg.TimeOfDay) ([]*Route, error) {
	originName, originSnap, err := rs.resolveLocation(topology, origin)
	if err != nil {
		return nil, err
	}
	destinationName, destinationSnap, err := rs.resolveLocation(topology, destination)
	if err != nil {
		return nil, err
	}

	routes := make([]*Route, 0, len(pkg.Algorithms))
	for _, algorithm := range pkg.Algorithms {
		route, err := rs.route(topology, algorithm, originName, destinationName, timeOfDay)
		if err != nil {
			return nil, err
		}
		route.OriginSnap, route.DestinationSnap = originSnap, destinationSnap
		routes = append(routes, route)
	}
	return routes, nil
}

func (rs *RoutingService) route(topology pkg.Topology, algorithm pkg.Algorithm, origin, destination string,
	timeOfDay pkg.TimeOfDay) (*Route, error) {
	res, cached, err := rs.search(searchKey{
		topology:    topology,
		algorithm:   algorithm,
		origin:      origin,
		destination: destination,
		timeOfDay:   timeOfDay,
	})
	if err != nil {
		return nil, err
	}

	route := &Route{
		Topology:      topology,
		Algorithm:     algorithm,
		TimeOfDay:     timeOfDay,
		Origin:        origin,
		Destination:   destination,
		Path:          res.Path,
		Lines:         res.Lines,
		Cost:          res.Cost,
		NodesExpanded: res.NodesExpanded,
		Found:         res.Found,
		Cached:        cached,
		Legs:          []costfunction.Leg{},
	}
	if !res.Found {
		return route, nil
	}

	legs, ok, err := rs.engine.PathLegsAlongLines(topology, res.Path, res.Lines, timeOfDay)
	if err != nil {
		return nil, translateError(err)
	}
	if ok {
		route.Legs = legs
	}
	route.Polyline, route.Length, err = rs.routeGeometry(topology, res.Path)
	if err != nil {
		return nil, err
	}
	return route, nil
}

func (rs *RoutingService) search(key searchKey) (*routing.SearchResult, bool, error) {
	if res, ok := rs.cache.Get(key); ok {
		rs.metric.ObserveCacheLookup(true)
		return res, true, nil
	}
	rs.metric.ObserveCacheLookup(false)

	start := time.Now()
	res, err := rs.engine.Search(key.topology, key.algorithm, key.origin, key.destination, key.timeOfDay)
	if err != nil {
		return nil, false, translateError(err)
	}
	elapsed := time.Since(start)

	rs.metric.ObserveSearch(key.topology.String(), key.algorithm.String(), res.Found, res.NodesExpanded, elapsed)
	rs.log.Debug("search done",
		zap.String("topology", key.topology.String()),
		zap.String("algorithm", key.algorithm.String()),
		zap.String("origin", key.origin),
		zap.String("destination", key.destination),
		zap.Bool("found", res.Found),
		zap.Int("nodesExpanded", res.NodesExpanded),
		zap.Duration("elapsed", elapsed))

	rs.cache.Add(key, res)
	return res, false, nil
}

// PathCost prices a station sequence on the first listed line of every pair.
func (rs *RoutingService) PathCost(topology pkg.Topology, stations []string,
	timeOfDay pkg.TimeOfDay) (*PathCostResult, error) {
	legs, ok, err := rs.engine.PathLegs(topology, stations, timeOfDay)
	if err != nil {
		return nil, translateError(err)
	}

	result := &PathCostResult{
		Topology:  topology,
		Stations:  stations,
		Legs:      legs,
		Reachable: ok,
		Cost:      pkg.INF_WEIGHT,
	}
	if ok {
		result.Cost = 0
		for _, l := range legs {
			result.Cost += l.Cost
		}
	}
	return result, nil
}

func (rs *RoutingService) Stations(topology pkg.Topology) ([]StationInfo, error) {
	network, err := rs.engine.Network(topology)
	if err != nil {
		return nil, translateError(err)
	}
	coords, err := rs.engine.Coordinates(topology)
	if err != nil {
		return nil, translateError(err)
	}

	stations := make([]StationInfo, 0, network.NumberOfStations())
	for _, name := range network.Stations() {
		conns, err := network.OutgoingEdges(name)
		if err != nil {
			return nil, translateError(err)
		}
		info := StationInfo{
			Name:      name,
			Lines:     distinctLines(conns),
			OutDegree: len(conns),
		}
		if p, err := coords.Coordinate(name); err == nil {
			info.X, info.Y, info.HasCoordinate = p.X, p.Y, true
		}
		stations = append(stations, info)
	}
	return stations, nil
}

// NearestStations returns the stations within radius of (x, y), nearest first. A non-positive
// radius returns only the nearest station.
func (rs *RoutingService) NearestStations(topology pkg.Topology, x, y, radius float64) (
	[]spatialindex.StationDistance, error) {
	index, err := rs.spatialIndexOf(topology)
	if err != nil {
		return nil, err
	}
	if radius > 0 {
		return index.SearchWithinRadius(x, y, radius), nil
	}
	nearest, ok := index.NearestStation(x, y)
	if !ok {
		return nil, util.WrapErrorf(ErrNoStationNearby, util.ErrNotFound, "no station near %v,%v", x, y)
	}
	return []spatialindex.StationDistance{nearest}, nil
}
