package costfunction

import (
	"fmt"

	"github.com/lintang-b-s/metroplanner/pkg"
	da "github.com/lintang-b-s/metroplanner/pkg/datastructure"
	"github.com/lintang-b-s/metroplanner/pkg/util"
)

// Leg is one priced hop of a station sequence.
type Leg struct {
	From        string  `json:"from"`
	To          string  `json:"to"`
	Line        string  `json:"line"`
	BaseMinutes float64 `json:"base_minutes"`
	Cost        float64 `json:"cost"`
	Transfer    bool    `json:"transfer"`
}

// PathLegs prices every consecutive pair of path on the first listed connecting edge. ok is false
// when some pair has no connecting edge, legs then holds the hops priced before it.
func (tf *TransitCostFunction) PathLegs(network *da.Network, path []string,
	timeOfDay pkg.TimeOfDay) (legs []Leg, ok bool, err error) {
	ids, err := resolveStations(network, path)
	if err != nil {
		return nil, false, err
	}

	legs = make([]Leg, 0, util.MaxG(len(ids)-1, 0))
	prevLine := ""
	for i := 0; i+1 < len(ids); i++ {
		e, found := network.FirstConnectingEdge(ids[i], ids[i+1])
		if !found {
			return legs, false, nil
		}
		legs = append(legs, tf.priceLeg(network, e, prevLine, timeOfDay))
		prevLine = e.GetLine()
	}
	return legs, true, nil
}

// PathCost re-scores a station sequence independently of the search that produced it. When
// several lines connect the same pair the first listed one is used. Returns pkg.INF_WEIGHT if a
// pair has no connecting edge, 0 for sequences shorter than two stations.
func (tf *TransitCostFunction) PathCost(network *da.Network, path []string,
	timeOfDay pkg.TimeOfDay) (float64, error) {
	legs, ok, err := tf.PathLegs(network, path, timeOfDay)
	if err != nil {
		return 0, err
	}
	if !ok {
		return pkg.INF_WEIGHT, nil
	}
	return sumLegs(legs), nil
}

// PathLegsAlongLines prices path riding lines[i] between path[i] and path[i+1]. ok is false when a
// pair is not connected by the requested line.
func (tf *TransitCostFunction) PathLegsAlongLines(network *da.Network, path []string, lines []string,
	timeOfDay pkg.TimeOfDay) (legs []Leg, ok bool, err error) {
	ids, err := resolveStations(network, path)
	if err != nil {
		return nil, false, err
	}
	if len(ids) < 2 {
		return []Leg{}, true, nil
	}
	if len(lines) != len(ids)-1 {
		return nil, false, fmt.Errorf("path of %d stations needs %d lines, got %d", len(ids), len(ids)-1, len(lines))
	}

	legs = make([]Leg, 0, len(lines))
	prevLine := ""
	for i := 0; i+1 < len(ids); i++ {
		e, found := network.ConnectingEdgeOnLine(ids[i], ids[i+1], lines[i])
		if !found {
			return legs, false, nil
		}
		legs = append(legs, tf.priceLeg(network, e, prevLine, timeOfDay))
		prevLine = e.GetLine()
	}
	return legs, true, nil
}

// PathCostAlongLines re-scores path riding lines[i] between path[i] and path[i+1]. It prices
// exactly the edges a line-aware search used, also where parallel lines connect a pair.
func (tf *TransitCostFunction) PathCostAlongLines(network *da.Network, path []string, lines []string,
	timeOfDay pkg.TimeOfDay) (float64, error) {
	legs, ok, err := tf.PathLegsAlongLines(network, path, lines, timeOfDay)
	if err != nil {
		return 0, err
	}
	if !ok {
		return pkg.INF_WEIGHT, nil
	}
	return sumLegs(legs), nil
}

func (tf *TransitCostFunction) priceLeg(network *da.Network, e *da.OutEdge, prevLine string,
	timeOfDay pkg.TimeOfDay) Leg {
	transfer := tf.IsTransfer(prevLine, e.GetLine())
	return Leg{
		From:        network.StationName(e.GetTail()),
		To:          network.StationName(e.GetHead()),
		Line:        e.GetLine(),
		BaseMinutes: e.GetMinutes(),
		Cost:        tf.EdgeCost(e.GetMinutes(), timeOfDay, transfer),
		Transfer:    transfer,
	}
}

func resolveStations(network *da.Network, path []string) ([]da.Index, error) {
	ids := make([]da.Index, len(path))
	for i, name := range path {
		id, err := network.StationIndex(name)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

func sumLegs(legs []Leg) float64 {
	cost := 0.0
	for _, l := range legs {
		cost += l.Cost
	}
	return cost
}
