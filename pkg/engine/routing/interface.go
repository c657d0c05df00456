package routing

import (
	"github.com/lintang-b-s/metroplanner/pkg"
	da "github.com/lintang-b-s/metroplanner/pkg/datastructure"
)

type CostFunction interface {
	IsTransfer(prevLine, line string) bool
	EdgeCost(baseMinutes float64, timeOfDay pkg.TimeOfDay, transfer bool) float64
	Heuristic(coords *da.CoordinateIndex, a, b string) (float64, error)
	PathCost(network *da.Network, path []string, timeOfDay pkg.TimeOfDay) (float64, error)
}

// Router runs one search from s to t. s != t and both are valid station ids of the engine network.
type Router interface {
	Search(s, t da.Index, timeOfDay pkg.TimeOfDay) (*SearchResult, error)
}

// Frontier holds arena indices of pending search nodes. priority is ignored by the stack and
// queue disciplines.
type Frontier interface {
	Add(node int, priority float64)
	Remove() int
	Empty() bool
	Len() int
}
