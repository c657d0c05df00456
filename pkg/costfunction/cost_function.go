package costfunction

import (
	"github.com/lintang-b-s/metroplanner/pkg"
	da "github.com/lintang-b-s/metroplanner/pkg/datastructure"
	"github.com/spf13/viper"
)

type CostFunction interface {
	GetWeight(baseMinutes float64, timeOfDay pkg.TimeOfDay) float64
	GetTransferCost(prevLine, line string) float64
	IsTransfer(prevLine, line string) bool
	EdgeCost(baseMinutes float64, timeOfDay pkg.TimeOfDay, transfer bool) float64
	Heuristic(coords *da.CoordinateIndex, a, b string) (float64, error)
	PathCost(network *da.Network, path []string, timeOfDay pkg.TimeOfDay) (float64, error)
}

// Config holds the pricing constants. Costs are in minutes.
type Config struct {
	TransferPenalty         float64
	HeuristicMinutesPerUnit float64
	Congestion              map[pkg.TimeOfDay]float64
}

func DefaultConfig() Config {
	return Config{
		TransferPenalty:         pkg.DEFAULT_TRANSFER_PENALTY_MINUTES,
		HeuristicMinutesPerUnit: pkg.DEFAULT_HEURISTIC_MINUTES_PER_UNIT,
		Congestion: map[pkg.TimeOfDay]float64{
			pkg.PEAK:      pkg.DEFAULT_PEAK_MULTIPLIER,
			pkg.OFF_PEAK:  pkg.DEFAULT_OFF_PEAK_MULTIPLIER,
			pkg.DISRUPTED: pkg.DEFAULT_DISRUPTED_MULTIPLIER,
		},
	}
}

// ConfigFromViper reads the pricing constants, util.SetConfigDefaults supplies the defaults.
func ConfigFromViper() Config {
	cfg := DefaultConfig()
	if viper.IsSet("TRANSFER_PENALTY_MINUTES") {
		cfg.TransferPenalty = viper.GetFloat64("TRANSFER_PENALTY_MINUTES")
	}
	if viper.IsSet("HEURISTIC_MINUTES_PER_UNIT") {
		cfg.HeuristicMinutesPerUnit = viper.GetFloat64("HEURISTIC_MINUTES_PER_UNIT")
	}
	if viper.IsSet("CONGESTION_PEAK") {
		cfg.Congestion[pkg.PEAK] = viper.GetFloat64("CONGESTION_PEAK")
	}
	if viper.IsSet("CONGESTION_OFF_PEAK") {
		cfg.Congestion[pkg.OFF_PEAK] = viper.GetFloat64("CONGESTION_OFF_PEAK")
	}
	if viper.IsSet("CONGESTION_DISRUPTED") {
		cfg.Congestion[pkg.DISRUPTED] = viper.GetFloat64("CONGESTION_DISRUPTED")
	}
	return cfg
}
