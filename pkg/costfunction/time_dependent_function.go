package costfunction

import "github.com/lintang-b-s/metroplanner/pkg"

// CongestionTable scales base durations by the declared time-of-day category.
type CongestionTable struct {
	multipliers map[pkg.TimeOfDay]float64
}

func NewCongestionTable(multipliers map[pkg.TimeOfDay]float64) CongestionTable {
	m := make(map[pkg.TimeOfDay]float64, len(multipliers))
	for tod, mult := range multipliers {
		m[tod] = mult
	}
	return CongestionTable{multipliers: m}
}

// Multiplier never fails: unknown categories are priced at 1.0.
func (ct CongestionTable) Multiplier(timeOfDay pkg.TimeOfDay) float64 {
	mult, ok := ct.multipliers[timeOfDay]
	if !ok {
		return 1.0
	}
	return mult
}

func (ct CongestionTable) GetWeightAtTime(baseMinutes float64, timeOfDay pkg.TimeOfDay) float64 {
	return float64(baseMinutes * ct.Multiplier(timeOfDay))
}
