package routing

import (
	"fmt"

	"github.com/lintang-b-s/metroplanner/pkg"
	da "github.com/lintang-b-s/metroplanner/pkg/datastructure"
	"go.uber.org/zap"
)

// SearchResult is the outcome of one search. An unreachable goal is reported with Found false,
// a nil Path and Cost pkg.INF_WEIGHT.
type SearchResult struct {
	Path          []string
	Lines         []string // Lines[i] is the line ridden from Path[i] to Path[i+1]
	Cost          float64
	NodesExpanded int
	Found         bool
}

func newSearchResult(path, lines []string, cost float64, nodesExpanded int) *SearchResult {
	return &SearchResult{
		Path:          path,
		Lines:         lines,
		Cost:          cost,
		NodesExpanded: nodesExpanded,
		Found:         true,
	}
}

func newNoPathResult(nodesExpanded int) *SearchResult {
	return &SearchResult{
		Cost:          pkg.INF_WEIGHT,
		NodesExpanded: nodesExpanded,
	}
}

// SearchEngine runs the four search strategies over one immutable network. It keeps no state
// between calls, so concurrent Run calls on the same engine are safe.
type SearchEngine struct {
	network      *da.Network
	coords       *da.CoordinateIndex
	costFunction CostFunction
	logger       *zap.Logger
}

func NewSearchEngine(network *da.Network, coords *da.CoordinateIndex, costFunction CostFunction,
	logger *zap.Logger) *SearchEngine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if coords == nil {
		coords = da.NewCoordinateIndex(nil)
	}
	return &SearchEngine{
		network:      network,
		coords:       coords,
		costFunction: costFunction,
		logger:       logger,
	}
}

func (se *SearchEngine) GetNetwork() *da.Network {
	return se.network
}

func (se *SearchEngine) GetCoordinates() *da.CoordinateIndex {
	return se.coords
}

func (se *SearchEngine) GetCostFunction() CostFunction {
	return se.costFunction
}

func (se *SearchEngine) newRouter(algorithm pkg.Algorithm) (Router, error) {
	switch algorithm {
	case pkg.DFS:
		return NewDepthFirstSearch(se), nil
	case pkg.BFS:
		return NewBreadthFirstSearch(se), nil
	case pkg.GBFS:
		return NewGreedyBestFirstSearch(se), nil
	case pkg.ASTAR:
		return NewAStar(se), nil
	default:
		return nil, fmt.Errorf("%w: %v", pkg.ErrUnknownAlgorithm, algorithm)
	}
}

// Run searches a path from start to goal with algorithm. Unknown stations (and, for GBFS and A*,
// stations without a coordinate) fail with datastructure.ErrUnknownStation.
func (se *SearchEngine) Run(algorithm pkg.Algorithm, start, goal string,
	timeOfDay pkg.TimeOfDay) (*SearchResult, error) {
	router, err := se.newRouter(algorithm)
	if err != nil {
		return nil, err
	}

	s, err := se.network.StationIndex(start)
	if err != nil {
		return nil, err
	}
	t, err := se.network.StationIndex(goal)
	if err != nil {
		return nil, err
	}
	if algorithm == pkg.GBFS || algorithm == pkg.ASTAR {
		if _, err := se.coords.Coordinate(start); err != nil {
			return nil, err
		}
		if _, err := se.coords.Coordinate(goal); err != nil {
			return nil, err
		}
	}

	if s == t {
		return newSearchResult([]string{start}, []string{}, 0, 0), nil
	}

	res, err := router.Search(s, t, timeOfDay)
	if err != nil {
		return nil, err
	}

	se.logger.Debug("search finished",
		zap.String("network", se.network.Name()),
		zap.String("algorithm", algorithm.String()),
		zap.String("start", start),
		zap.String("goal", goal),
		zap.String("time_of_day", string(timeOfDay)),
		zap.Bool("found", res.Found),
		zap.Float64("cost", res.Cost),
		zap.Int("nodes_expanded", res.NodesExpanded),
	)
	return res, nil
}

// RunAll runs every algorithm in pkg.Algorithms order.
func (se *SearchEngine) RunAll(start, goal string, timeOfDay pkg.TimeOfDay) ([]*SearchResult, error) {
	results := make([]*SearchResult, 0, len(pkg.Algorithms))
	for _, algorithm := range pkg.Algorithms {
		res, err := se.Run(algorithm, start, goal, timeOfDay)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// heuristicTable memoizes the heuristic towards one goal for a single search.
type heuristicTable struct {
	engine *SearchEngine
	goal   string
	values []float64
	known  []bool
}

func newHeuristicTable(engine *SearchEngine, goal da.Index) *heuristicTable {
	n := engine.network.NumberOfStations()
	return &heuristicTable{
		engine: engine,
		goal:   engine.network.StationName(goal),
		values: make([]float64, n),
		known:  make([]bool, n),
	}
}

func (ht *heuristicTable) get(u da.Index) (float64, error) {
	if ht.known[u] {
		return ht.values[u], nil
	}
	h, err := ht.engine.costFunction.Heuristic(ht.engine.coords, ht.engine.network.StationName(u), ht.goal)
	if err != nil {
		return 0, err
	}
	ht.values[u] = h
	ht.known[u] = true
	return h, nil
}

// finishWithPathCost reports the path ending at node priced by CostFunction.PathCost.
func (se *SearchEngine) finishWithPathCost(arena *nodeArena, node int, timeOfDay pkg.TimeOfDay,
	nodesExpanded int) (*SearchResult, error) {
	path, lines := arena.reconstructPath(se.network, node)
	cost, err := se.costFunction.PathCost(se.network, path, timeOfDay)
	if err != nil {
		return nil, err
	}
	return newSearchResult(path, lines, cost, nodesExpanded), nil
}
