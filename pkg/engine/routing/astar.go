package routing

import (
	"github.com/lintang-b-s/metroplanner/pkg"
	da "github.com/lintang-b-s/metroplanner/pkg/datastructure"
)

// stationLineKey is the A* state: the same station reached on different lines has different
// onward costs because of the transfer penalty.
type stationLineKey struct {
	station da.Index
	line    string
}

// AStar orders the frontier by g + h. A popped node is skipped when its (station, arrival line)
// state was already finalized with an equal or smaller g. The first popped goal node is returned
// with its tracked g as cost.
type AStar struct {
	engine   *SearchEngine
	arena    *nodeArena
	frontier Frontier
	bestG    map[stationLineKey]float64

	numExpandedNodes int
}

func NewAStar(engine *SearchEngine) *AStar {
	return &AStar{
		engine:   engine,
		arena:    newNodeArena(engine.network.NumberOfEdges()),
		frontier: newPriorityFrontier(),
		bestG:    make(map[stationLineKey]float64),
	}
}

func (as *AStar) Search(s, t da.Index, timeOfDay pkg.TimeOfDay) (*SearchResult, error) {
	network := as.engine.network
	costFunction := as.engine.costFunction
	heuristic := newHeuristicTable(as.engine, t)

	hs, err := heuristic.get(s)
	if err != nil {
		return nil, err
	}
	as.frontier.Add(as.arena.newRoot(s), hs)

	for !as.frontier.Empty() {
		cur := as.frontier.Remove()
		as.numExpandedNodes++

		node := as.arena.get(cur)
		u, g, prevLine := node.getStation(), node.getG(), node.getLine()
		if u == t {
			path, lines := as.arena.reconstructPath(network, cur)
			return newSearchResult(path, lines, g, as.numExpandedNodes), nil
		}

		key := stationLineKey{station: u, line: prevLine}
		if best, ok := as.bestG[key]; ok && best <= g {
			continue
		}
		as.bestG[key] = g

		var herr error
		network.ForOutEdgesOf(u, func(e *da.OutEdge) {
			if herr != nil {
				return
			}
			transfer := costFunction.IsTransfer(prevLine, e.GetLine())
			newG := g + costFunction.EdgeCost(e.GetMinutes(), timeOfDay, transfer)
			hv, err := heuristic.get(e.GetHead())
			if err != nil {
				herr = err
				return
			}
			as.frontier.Add(as.arena.newChild(cur, e, newG), newG+hv)
		})
		if herr != nil {
			return nil, herr
		}
	}

	return newNoPathResult(as.numExpandedNodes), nil
}
