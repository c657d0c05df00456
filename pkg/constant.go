package pkg

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// TimeOfDay is the declared time-of-day category of a query. Unknown categories are valid
// values and are priced like OFF_PEAK.
type TimeOfDay string

const (
	PEAK      TimeOfDay = "peak"
	OFF_PEAK  TimeOfDay = "off_peak"
	DISRUPTED TimeOfDay = "disrupted"
)

// enum of search algorithm
type Algorithm uint8

const (
	DFS Algorithm = iota
	BFS
	GBFS
	ASTAR
)

var Algorithms = []Algorithm{DFS, BFS, GBFS, ASTAR}

func (a Algorithm) String() string {
	switch a {
	case DFS:
		return "DFS"
	case BFS:
		return "BFS"
	case GBFS:
		return "GBFS"
	case ASTAR:
		return "A*"
	default:
		return fmt.Sprintf("Algorithm(%d)", uint8(a))
	}
}

func (a Algorithm) Valid() bool {
	return a <= ASTAR
}

var (
	ErrUnknownAlgorithm = errors.New("unknown search algorithm")
	ErrUnknownTopology  = errors.New("unknown network topology")
)

func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dfs":
		return DFS, nil
	case "bfs":
		return BFS, nil
	case "gbfs", "greedy":
		return GBFS, nil
	case "astar", "a*", "a_star", "a-star":
		return ASTAR, nil
	default:
		return DFS, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Topology selects one of the two network states.
type Topology uint8

const (
	TODAY Topology = iota
	FUTURE
)

func (t Topology) String() string {
	switch t {
	case TODAY:
		return "today"
	case FUTURE:
		return "future"
	default:
		return fmt.Sprintf("Topology(%d)", uint8(t))
	}
}

func ParseTopology(s string) (Topology, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "today", "current", "":
		return TODAY, nil
	case "future":
		return FUTURE, nil
	default:
		return TODAY, fmt.Errorf("%w: %q", ErrUnknownTopology, s)
	}
}

var (
	// INF_WEIGHT is the cost reported for an unreachable goal.
	INF_WEIGHT = math.Inf(1)
)

const (
	DEFAULT_TRANSFER_PENALTY_MINUTES   = 5.0
	DEFAULT_HEURISTIC_MINUTES_PER_UNIT = 3.0
	DEFAULT_PEAK_MULTIPLIER            = 1.3
	DEFAULT_OFF_PEAK_MULTIPLIER        = 1.0
	DEFAULT_DISRUPTED_MULTIPLIER       = 1.5
)

func IsInf(cost float64) bool {
	return math.IsInf(cost, 1)
}
