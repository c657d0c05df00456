package costfunction

import (
	"github.com/lintang-b-s/metroplanner/pkg"
	da "github.com/lintang-b-s/metroplanner/pkg/datastructure"
)

// TransitCostFunction prices line-labeled edges:
//
//	edge_cost = base_minutes * congestion(time_of_day) + (transfer_penalty if the line changes)
//
// and estimates remaining time as straight-line distance * minutes per unit.
type TransitCostFunction struct {
	congestion              CongestionTable
	transferPenalty         float64
	heuristicMinutesPerUnit float64
}

func NewTransitCostFunction(cfg Config) *TransitCostFunction {
	return &TransitCostFunction{
		congestion:              NewCongestionTable(cfg.Congestion),
		transferPenalty:         cfg.TransferPenalty,
		heuristicMinutesPerUnit: cfg.HeuristicMinutesPerUnit,
	}
}

func NewDefaultTransitCostFunction() *TransitCostFunction {
	return NewTransitCostFunction(DefaultConfig())
}

func (tf *TransitCostFunction) TransferPenalty() float64 {
	return tf.transferPenalty
}

func (tf *TransitCostFunction) CongestionMultiplier(timeOfDay pkg.TimeOfDay) float64 {
	return tf.congestion.Multiplier(timeOfDay)
}

func (tf *TransitCostFunction) GetWeight(baseMinutes float64, timeOfDay pkg.TimeOfDay) float64 {
	return tf.congestion.GetWeightAtTime(baseMinutes, timeOfDay)
}

// IsTransfer reports a line change. prevLine is empty for the first edge of a path, which is
// never a transfer.
func (tf *TransitCostFunction) IsTransfer(prevLine, line string) bool {
	return prevLine != "" && prevLine != line
}

func (tf *TransitCostFunction) GetTransferCost(prevLine, line string) float64 {
	if tf.IsTransfer(prevLine, line) {
		return tf.transferPenalty
	}
	return 0
}

func (tf *TransitCostFunction) EdgeCost(baseMinutes float64, timeOfDay pkg.TimeOfDay, transfer bool) float64 {
	cost := tf.GetWeight(baseMinutes, timeOfDay)
	if transfer {
		cost += tf.transferPenalty
	}
	return cost
}

// Heuristic fails with ErrUnknownStation when either station has no coordinate.
func (tf *TransitCostFunction) Heuristic(coords *da.CoordinateIndex, a, b string) (float64, error) {
	dist, err := coords.Distance(a, b)
	if err != nil {
		return 0, err
	}
	return float64(dist * tf.heuristicMinutesPerUnit), nil
}
