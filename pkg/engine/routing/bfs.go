package routing

import (
	"github.com/lintang-b-s/metroplanner/pkg"
	da "github.com/lintang-b-s/metroplanner/pkg/datastructure"
)

// BreadthFirstSearch is uninformed FIFO search, it minimizes the number of hops. A station is
// enqueued at most once: never when it is already explored or pending.
type BreadthFirstSearch struct {
	engine   *SearchEngine
	arena    *nodeArena
	frontier Frontier

	numExpandedNodes int
}

func NewBreadthFirstSearch(engine *SearchEngine) *BreadthFirstSearch {
	return &BreadthFirstSearch{
		engine:   engine,
		arena:    newNodeArena(engine.network.NumberOfStations()),
		frontier: newQueueFrontier(),
	}
}

func (bs *BreadthFirstSearch) Search(s, t da.Index, timeOfDay pkg.TimeOfDay) (*SearchResult, error) {
	network := bs.engine.network
	// explored or pending
	discovered := make([]bool, network.NumberOfStations())

	bs.frontier.Add(bs.arena.newRoot(s), 0)
	discovered[s] = true

	for !bs.frontier.Empty() {
		cur := bs.frontier.Remove()
		bs.numExpandedNodes++

		u := bs.arena.get(cur).getStation()
		if u == t {
			return bs.engine.finishWithPathCost(bs.arena, cur, timeOfDay, bs.numExpandedNodes)
		}

		network.ForOutEdgesOf(u, func(e *da.OutEdge) {
			v := e.GetHead()
			if discovered[v] {
				return
			}
			discovered[v] = true
			bs.frontier.Add(bs.arena.newChild(cur, e, 0), 0)
		})
	}

	return newNoPathResult(bs.numExpandedNodes), nil
}
