package routing

import (
	"github.com/lintang-b-s/metroplanner/pkg"
	da "github.com/lintang-b-s/metroplanner/pkg/datastructure"
)

// GreedyBestFirstSearch orders the frontier by the heuristic alone and ignores the cost so far.
// Explored stations are never expanded again, but a station may be pending several times.
type GreedyBestFirstSearch struct {
	engine   *SearchEngine
	arena    *nodeArena
	frontier Frontier

	numExpandedNodes int
}

func NewGreedyBestFirstSearch(engine *SearchEngine) *GreedyBestFirstSearch {
	return &GreedyBestFirstSearch{
		engine:   engine,
		arena:    newNodeArena(engine.network.NumberOfEdges()),
		frontier: newPriorityFrontier(),
	}
}

func (gs *GreedyBestFirstSearch) Search(s, t da.Index, timeOfDay pkg.TimeOfDay) (*SearchResult, error) {
	network := gs.engine.network
	heuristic := newHeuristicTable(gs.engine, t)
	explored := make([]bool, network.NumberOfStations())

	hs, err := heuristic.get(s)
	if err != nil {
		return nil, err
	}
	gs.frontier.Add(gs.arena.newRoot(s), hs)

	for !gs.frontier.Empty() {
		cur := gs.frontier.Remove()
		gs.numExpandedNodes++

		u := gs.arena.get(cur).getStation()
		if u == t {
			return gs.engine.finishWithPathCost(gs.arena, cur, timeOfDay, gs.numExpandedNodes)
		}

		if explored[u] {
			continue
		}
		explored[u] = true

		var herr error
		network.ForOutEdgesOf(u, func(e *da.OutEdge) {
			v := e.GetHead()
			if herr != nil || explored[v] {
				return
			}
			hv, err := heuristic.get(v)
			if err != nil {
				herr = err
				return
			}
			gs.frontier.Add(gs.arena.newChild(cur, e, 0), hv)
		})
		if herr != nil {
			return nil, herr
		}
	}

	return newNoPathResult(gs.numExpandedNodes), nil
}
