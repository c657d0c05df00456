package evaluation

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lintang-b-s/metroplanner/pkg"
	"github.com/lintang-b-s/metroplanner/pkg/util"
)

// Average summarizes the found paths of one algorithm. Count is zero when no query found a path,
// the averages are then meaningless and reported as missing.
type Average struct {
	Algorithm     pkg.Algorithm
	Count         int
	CostMinutes   float64
	NodesExpanded float64
	TimeMs        float64
}

func (a Average) Valid() bool {
	return a.Count > 0
}

// Averages accumulates records per algorithm, in pkg.Algorithms order. Records without a path are
// skipped.
func Averages(records []Record) []Average {
	type total struct {
		cost, time float64
		nodes      int
		count      int
	}
	totals := make(map[pkg.Algorithm]*total, len(pkg.Algorithms))
	for _, algorithm := range pkg.Algorithms {
		totals[algorithm] = &total{}
	}

	for _, rec := range records {
		if !rec.Found {
			continue
		}
		t, ok := totals[rec.Algorithm]
		if !ok {
			continue
		}
		t.cost += rec.Cost
		t.nodes += rec.NodesExpanded
		t.time += rec.ElapsedMilliseconds()
		t.count++
	}

	avgs := make([]Average, 0, len(pkg.Algorithms))
	for _, algorithm := range pkg.Algorithms {
		t := totals[algorithm]
		avg := Average{Algorithm: algorithm, Count: t.count}
		if t.count > 0 {
			c := float64(t.count)
			avg.CostMinutes = t.cost / c
			avg.NodesExpanded = float64(t.nodes) / c
			avg.TimeMs = t.time / c
		}
		avgs = append(avgs, avg)
	}
	return avgs
}

// CombinedAverages pools several runs, every algorithm is averaged over the pairs of all runs.
func CombinedAverages(runs ...[]Record) []Average {
	n := 0
	for _, run := range runs {
		n += len(run)
	}
	all := make([]Record, 0, n)
	for _, run := range runs {
		all = append(all, run...)
	}
	return Averages(all)
}

const summaryRule = 72

func formatRounded(x float64, decimals uint) string {
	return strconv.FormatFloat(util.RoundFloat(x, decimals), 'f', -1, 64)
}

func PrintSummary(w io.Writer, title string, avgs []Average) error {
	var sb strings.Builder
	sb.WriteString("\n" + strings.Repeat("=", summaryRule) + "\n")
	sb.WriteString(title + "\n")
	sb.WriteString(strings.Repeat("=", summaryRule) + "\n")
	fmt.Fprintf(&sb, "%-10s | %14s %12s %14s\n", "Algorithm", "Avg Cost (min)", "Avg Nodes", "Avg Time (ms)")
	sb.WriteString(strings.Repeat("-", summaryRule) + "\n")
	for _, a := range avgs {
		cost, nodes, elapsed := "N/A", "N/A", "N/A"
		if a.Valid() {
			cost = formatRounded(a.CostMinutes, 2)
			nodes = formatRounded(a.NodesExpanded, 2)
			elapsed = formatRounded(a.TimeMs, 3)
		}
		fmt.Fprintf(&sb, "%-10s | %14s %12s %14s\n", a.Algorithm, cost, nodes, elapsed)
	}
	sb.WriteString(strings.Repeat("=", summaryRule) + "\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

var averagesHeader = []string{"Algorithm", "AvgCostMinutes", "AvgNodesExpanded", "AvgTimeMilliseconds"}

// WriteAveragesCSV writes one row per algorithm, leaving the value columns blank for an algorithm
// that found no path.
func WriteAveragesCSV(w io.Writer, avgs []Average) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(averagesHeader); err != nil {
		return err
	}
	for _, a := range avgs {
		row := []string{a.Algorithm.String(), "", "", ""}
		if a.Valid() {
			row[1] = formatRounded(a.CostMinutes, 6)
			row[2] = formatRounded(a.NodesExpanded, 6)
			row[3] = formatRounded(a.TimeMs, 6)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type queryKey struct {
	algorithm   pkg.Algorithm
	origin      string
	destination string
}

func keyOf(r Record) queryKey {
	return queryKey{r.Algorithm, r.Origin, r.Destination}
}

// Comparison pairs the today and future outcome of the same query. A side is nil when that
// topology found no path.
type Comparison struct {
	Algorithm   pkg.Algorithm
	Origin      string
	Destination string
	Today       *Record
	Future      *Record
}

func (c Comparison) Complete() bool {
	return c.Today != nil && c.Future != nil
}

func (c Comparison) DeltaCost() float64 {
	return c.Future.Cost - c.Today.Cost
}

func (c Comparison) DeltaNodes() int {
	return c.Future.NodesExpanded - c.Today.NodesExpanded
}

func (c Comparison) DeltaTimeMs() float64 {
	return c.Future.ElapsedMilliseconds() - c.Today.ElapsedMilliseconds()
}

// Compare matches future records to today records by algorithm and od pair, in today order.
func Compare(today, future []Record) []Comparison {
	futureByKey := make(map[queryKey]*Record, len(future))
	for i := range future {
		if _, ok := futureByKey[keyOf(future[i])]; !ok {
			futureByKey[keyOf(future[i])] = &future[i]
		}
	}

	comparisons := make([]Comparison, 0, len(today))
	for i := range today {
		t := &today[i]
		c := Comparison{Algorithm: t.Algorithm, Origin: t.Origin, Destination: t.Destination}
		if t.Found {
			c.Today = t
		}
		if f, ok := futureByKey[keyOf(*t)]; ok && f.Found {
			c.Future = f
		}
		comparisons = append(comparisons, c)
	}
	return comparisons
}

var comparisonHeader = []string{
	"Algorithm", "Start", "Goal",
	"TodayCostMin", "TodayNodes", "TodayTimeMs",
	"FutureCostMin", "FutureNodes", "FutureTimeMs",
	"DeltaCostMin_FutureMinusToday", "DeltaNodes_FutureMinusToday", "DeltaTimeMs_FutureMinusToday",
}

func recordColumns(r *Record) []string {
	if r == nil {
		return []string{"", "", ""}
	}
	return []string{
		formatRounded(r.Cost, 6),
		strconv.Itoa(r.NodesExpanded),
		formatRounded(r.ElapsedMilliseconds(), 6),
	}
}

// WriteComparisonCSV writes the today vs future rows. When either side has no path the delta
// columns are left blank.
func WriteComparisonCSV(w io.Writer, comparisons []Comparison) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(comparisonHeader); err != nil {
		return err
	}
	for _, c := range comparisons {
		row := []string{c.Algorithm.String(), c.Origin, c.Destination}
		row = append(row, recordColumns(c.Today)...)
		row = append(row, recordColumns(c.Future)...)
		if c.Complete() {
			row = append(row,
				formatRounded(c.DeltaCost(), 6),
				strconv.Itoa(c.DeltaNodes()),
				formatRounded(c.DeltaTimeMs(), 6))
		} else {
			row = append(row, "", "", "")
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
