package engine

import (
	"fmt"

	"github.com/lintang-b-s/metroplanner/pkg"
	"github.com/lintang-b-s/metroplanner/pkg/costfunction"
	"github.com/lintang-b-s/metroplanner/pkg/dataset"
	"github.com/lintang-b-s/metroplanner/pkg/datastructure"
	"github.com/lintang-b-s/metroplanner/pkg/engine/routing"
	"go.uber.org/zap"
)

// Engine holds one search engine per topology. Both networks are immutable once loaded.
type Engine struct {
	searchEngines map[pkg.Topology]*routing.SearchEngine
	costFunction  *costfunction.TransitCostFunction
	logger        *zap.Logger
}

func (e *Engine) GetRoutingEngine(topology pkg.Topology) (*routing.SearchEngine, error) {
	se, ok := e.searchEngines[topology]
	if !ok {
		return nil, fmt.Errorf("%w: %v", pkg.ErrUnknownTopology, topology)
	}
	return se, nil
}

func (e *Engine) GetCostFunction() *costfunction.TransitCostFunction {
	return e.costFunction
}

// NewEngine loads the networks from bzip2 network files. An empty path selects the built-in
// network of that topology. A network file without coordinate records uses the built-in
// coordinates.
func NewEngine(todayNetworkFile, futureNetworkFile string, costConfig costfunction.Config,
	logger *zap.Logger) (*Engine, error) {
	logger.Info("Starting metro route planning engine...")

	costFunction := costfunction.NewTransitCostFunction(costConfig)
	e := &Engine{
		searchEngines: make(map[pkg.Topology]*routing.SearchEngine, 2),
		costFunction:  costFunction,
		logger:        logger,
	}

	for topology, networkFile := range map[pkg.Topology]string{
		pkg.TODAY:  todayNetworkFile,
		pkg.FUTURE: futureNetworkFile,
	} {
		network, coords, err := loadNetwork(topology, networkFile, logger)
		if err != nil {
			return nil, err
		}
		e.searchEngines[topology] = routing.NewSearchEngine(network, coords, costFunction, logger)
	}
	return e, nil
}

// NewEngineFromNetworks wraps already built networks sharing one coordinate index.
func NewEngineFromNetworks(today, future *datastructure.Network, coords *datastructure.CoordinateIndex,
	costFunction *costfunction.TransitCostFunction, logger *zap.Logger) *Engine {
	return &Engine{
		searchEngines: map[pkg.Topology]*routing.SearchEngine{
			pkg.TODAY:  routing.NewSearchEngine(today, coords, costFunction, logger),
			pkg.FUTURE: routing.NewSearchEngine(future, coords, costFunction, logger),
		},
		costFunction: costFunction,
		logger:       logger,
	}
}

func loadNetwork(topology pkg.Topology, networkFile string, logger *zap.Logger) (*datastructure.Network,
	*datastructure.CoordinateIndex, error) {
	if networkFile == "" {
		logger.Info("Using built-in network", zap.String("topology", topology.String()))
		network, err := dataset.Network(topology)
		if err != nil {
			return nil, nil, err
		}
		return network, dataset.Coordinates(), nil
	}

	logger.Info("Reading network from ", zap.String("topology", topology.String()),
		zap.String("networkFile", networkFile))
	network, coords, err := datastructure.ReadNetwork(networkFile)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s network: %w", topology, err)
	}
	if coords.Len() == 0 {
		coords = dataset.Coordinates()
	}
	logger.Info("Network loaded", zap.String("topology", topology.String()),
		zap.Int("stations", network.NumberOfStations()), zap.Int("edges", network.NumberOfEdges()))
	return network, coords, nil
}

func (e *Engine) Search(topology pkg.Topology, algorithm pkg.Algorithm, start, goal string,
	timeOfDay pkg.TimeOfDay) (*routing.SearchResult, error) {
	se, err := e.GetRoutingEngine(topology)
	if err != nil {
		return nil, err
	}
	return se.Run(algorithm, start, goal, timeOfDay)
}

func (e *Engine) PathCost(topology pkg.Topology, path []string, timeOfDay pkg.TimeOfDay) (float64, error) {
	se, err := e.GetRoutingEngine(topology)
	if err != nil {
		return 0, err
	}
	return e.costFunction.PathCost(se.GetNetwork(), path, timeOfDay)
}

func (e *Engine) PathLegs(topology pkg.Topology, path []string,
	timeOfDay pkg.TimeOfDay) ([]costfunction.Leg, bool, error) {
	se, err := e.GetRoutingEngine(topology)
	if err != nil {
		return nil, false, err
	}
	return e.costFunction.PathLegs(se.GetNetwork(), path, timeOfDay)
}

// PathLegsAlongLines prices a searched route on the lines it actually rode.
func (e *Engine) PathLegsAlongLines(topology pkg.Topology, path, lines []string,
	timeOfDay pkg.TimeOfDay) ([]costfunction.Leg, bool, error) {
	se, err := e.GetRoutingEngine(topology)
	if err != nil {
		return nil, false, err
	}
	return e.costFunction.PathLegsAlongLines(se.GetNetwork(), path, lines, timeOfDay)
}

func (e *Engine) Network(topology pkg.Topology) (*datastructure.Network, error) {
	se, err := e.GetRoutingEngine(topology)
	if err != nil {
		return nil, err
	}
	return se.GetNetwork(), nil
}

func (e *Engine) Coordinates(topology pkg.Topology) (*datastructure.CoordinateIndex, error) {
	se, err := e.GetRoutingEngine(topology)
	if err != nil {
		return nil, err
	}
	return se.GetCoordinates(), nil
}
