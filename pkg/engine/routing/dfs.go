package routing

import (
	"github.com/lintang-b-s/metroplanner/pkg"
	da "github.com/lintang-b-s/metroplanner/pkg/datastructure"
)

// DepthFirstSearch is uninformed LIFO search. A child is never a station already on its own root
// chain, and nodes deeper than the number of stations are not expanded. The first path reaching
// the goal is returned, it is not necessarily the cheapest one.
type DepthFirstSearch struct {
	engine   *SearchEngine
	arena    *nodeArena
	frontier Frontier
	maxDepth int

	numExpandedNodes int
}

func NewDepthFirstSearch(engine *SearchEngine) *DepthFirstSearch {
	return &DepthFirstSearch{
		engine:   engine,
		arena:    newNodeArena(engine.network.NumberOfStations()),
		frontier: newStackFrontier(),
		maxDepth: engine.network.NumberOfStations(),
	}
}

func (ds *DepthFirstSearch) Search(s, t da.Index, timeOfDay pkg.TimeOfDay) (*SearchResult, error) {
	network := ds.engine.network
	onPath := make([]bool, network.NumberOfStations())

	ds.frontier.Add(ds.arena.newRoot(s), 0)

	for !ds.frontier.Empty() {
		cur := ds.frontier.Remove()
		ds.numExpandedNodes++

		node := ds.arena.get(cur)
		u := node.getStation()
		if u == t {
			return ds.engine.finishWithPathCost(ds.arena, cur, timeOfDay, ds.numExpandedNodes)
		}

		if node.getDepth() >= ds.maxDepth {
			continue
		}

		clear(onPath)
		ds.arena.onPath(cur, onPath)

		network.ForOutEdgesOf(u, func(e *da.OutEdge) {
			if onPath[e.GetHead()] {
				return
			}
			ds.frontier.Add(ds.arena.newChild(cur, e, 0), 0)
		})
	}

	return newNoPathResult(ds.numExpandedNodes), nil
}
