package evaluation

import (
	"bytes"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"github.com/lintang-b-s/metroplanner/pkg"
	"github.com/lintang-b-s/metroplanner/pkg/costfunction"
	"github.com/lintang-b-s/metroplanner/pkg/dataset"
	"github.com/lintang-b-s/metroplanner/pkg/engine"
	"github.com/lintang-b-s/metroplanner/pkg/engine/routing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDatasetEngine(t *testing.T) *engine.Engine {
	t.Helper()
	today, err := dataset.TodayNetwork()
	require.NoError(t, err)
	future, err := dataset.FutureNetwork()
	require.NoError(t, err)
	return engine.NewEngineFromNetworks(today, future, dataset.Coordinates(),
		costfunction.NewDefaultTransitCostFunction(), nil)
}

func TestRunnerKeepsQueryOrder(t *testing.T) {
	runner := NewRunner(newDatasetEngine(t), 4, nil)

	records, err := runner.Run(pkg.TODAY, []dataset.ODPair{{Origin: "Changi Airport", Destination: "City Hall"}},
		pkg.OFF_PEAK)
	require.NoError(t, err)
	require.Len(t, records, len(pkg.Algorithms))

	testCases := []struct {
		algorithm pkg.Algorithm
		cost      float64
		nodes     int
	}{
		{pkg.DFS, 127, 14},
		{pkg.BFS, 39, 7},
		{pkg.GBFS, 70, 7},
		{pkg.ASTAR, 39, 6},
	}
	for i, tt := range testCases {
		t.Run(tt.algorithm.String(), func(t *testing.T) {
			rec := records[i]
			assert.Equal(t, tt.algorithm, rec.Algorithm)
			assert.True(t, rec.Found)
			assert.Equal(t, "Changi Airport", rec.Path[0])
			assert.Equal(t, "City Hall", rec.Path[len(rec.Path)-1])
			assert.InDelta(t, tt.cost, rec.Cost, 1e-9)
			assert.Equal(t, tt.nodes, rec.NodesExpanded)
		})
	}
}

func TestRunnerStandardPairs(t *testing.T) {
	runner := NewRunner(newDatasetEngine(t), 0, nil)

	today, err := runner.Run(pkg.TODAY, dataset.TodayODPairs(), pkg.OFF_PEAK)
	require.NoError(t, err)
	future, err := runner.Run(pkg.FUTURE, dataset.FutureODPairs(), pkg.OFF_PEAK)
	require.NoError(t, err)

	assert.Len(t, today, len(dataset.TodayODPairs())*len(pkg.Algorithms))
	assert.Len(t, future, len(dataset.FutureODPairs())*len(pkg.Algorithms))
	for _, rec := range append(today, future...) {
		assert.True(t, rec.Found, "%s %s -> %s", rec.Algorithm, rec.Origin, rec.Destination)
	}

	avgs := CombinedAverages(today, future)
	require.Len(t, avgs, len(pkg.Algorithms))

	testCases := []struct {
		algorithm pkg.Algorithm
		cost      float64
		nodes     float64
	}{
		{pkg.DFS, 119.25, 172.75},
		{pkg.BFS, 505.0 / 12, 16},
		{pkg.GBFS, 628.0 / 12, 73.0 / 12},
		{pkg.ASTAR, 39.5, 19.5},
	}
	for i, tt := range testCases {
		t.Run(tt.algorithm.String(), func(t *testing.T) {
			a := avgs[i]
			assert.Equal(t, tt.algorithm, a.Algorithm)
			assert.Equal(t, len(dataset.TodayODPairs())+len(dataset.FutureODPairs()), a.Count)
			assert.InDelta(t, tt.cost, a.CostMinutes, 1e-9)
			assert.InDelta(t, tt.nodes, a.NodesExpanded, 1e-9)
		})
	}

	var buf bytes.Buffer
	require.NoError(t, WriteAveragesCSV(&buf, avgs))
	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1+len(pkg.Algorithms))
	labels := make([]string, 0, len(pkg.Algorithms))
	for _, row := range rows[1:] {
		labels = append(labels, row[0])
	}
	assert.Equal(t, []string{"DFS", "BFS", "GBFS", "A*"}, labels)
	assert.Equal(t, []string{"DFS", "119.25", "172.75"}, rows[1][:3])
}

func TestNewRunnerDefaultsToOneWorker(t *testing.T) {
	assert.Equal(t, 1, NewRunner(newDatasetEngine(t), 0, nil).numWorkers)
	assert.Equal(t, 1, NewRunner(newDatasetEngine(t), -3, nil).numWorkers)
	assert.Equal(t, 3, NewRunner(newDatasetEngine(t), 3, nil).numWorkers)
}

func TestRunnerPropagatesSearchError(t *testing.T) {
	runner := NewRunner(newDatasetEngine(t), 2, nil)

	_, err := runner.Run(pkg.TODAY, []dataset.ODPair{{Origin: "Changi Airport", Destination: "T5"}}, pkg.OFF_PEAK)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "T5")
}

type stubSearcher struct {
	results map[pkg.Algorithm]*routing.SearchResult
}

func (s stubSearcher) Search(topology pkg.Topology, algorithm pkg.Algorithm, start, goal string,
	timeOfDay pkg.TimeOfDay) (*routing.SearchResult, error) {
	res, ok := s.results[algorithm]
	if !ok {
		return nil, errors.New("stub: no result")
	}
	return res, nil
}

func TestRunnerRecordsNoPath(t *testing.T) {
	searcher := stubSearcher{results: map[pkg.Algorithm]*routing.SearchResult{
		pkg.DFS:   {Cost: pkg.INF_WEIGHT, NodesExpanded: 3},
		pkg.BFS:   {Path: []string{"A", "B"}, Cost: 2, NodesExpanded: 1, Found: true},
		pkg.GBFS:  {Path: []string{"A", "B"}, Cost: 2, NodesExpanded: 1, Found: true},
		pkg.ASTAR: {Path: []string{"A", "B"}, Cost: 2, NodesExpanded: 1, Found: true},
	}}
	records, err := NewRunner(searcher, 1, nil).Run(pkg.TODAY, []dataset.ODPair{{Origin: "A", Destination: "B"}},
		pkg.OFF_PEAK)
	require.NoError(t, err)

	assert.False(t, records[0].Found)
	assert.Nil(t, records[0].Path)
	avgs := Averages(records)
	assert.False(t, avgs[0].Valid())
	assert.True(t, avgs[1].Valid())
}

func fixedRecord(algorithm pkg.Algorithm, origin, destination string, cost float64, nodes int,
	elapsed time.Duration) Record {
	return Record{
		Query:         Query{Algorithm: algorithm, Origin: origin, Destination: destination},
		Path:          []string{origin, destination},
		Cost:          cost,
		NodesExpanded: nodes,
		Elapsed:       elapsed,
		Found:         true,
	}
}

func TestAverages(t *testing.T) {
	records := []Record{
		fixedRecord(pkg.BFS, "A", "B", 10, 4, 2*time.Millisecond),
		fixedRecord(pkg.BFS, "A", "C", 20, 6, 4*time.Millisecond),
		{Query: Query{Algorithm: pkg.BFS, Origin: "A", Destination: "D"}, Cost: pkg.INF_WEIGHT, NodesExpanded: 99},
		fixedRecord(pkg.ASTAR, "A", "B", 9, 3, time.Millisecond),
	}

	avgs := Averages(records)
	require.Len(t, avgs, 4)

	testCases := []struct {
		name  string
		avg   Average
		count int
		cost  float64
		nodes float64
		ms    float64
	}{
		{"dfs has no path", avgs[0], 0, 0, 0, 0},
		{"bfs skips unreachable", avgs[1], 2, 15, 5, 3},
		{"gbfs has no path", avgs[2], 0, 0, 0, 0},
		{"astar", avgs[3], 1, 9, 3, 1},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.count, tt.avg.Count)
			assert.InDelta(t, tt.cost, tt.avg.CostMinutes, 1e-9)
			assert.InDelta(t, tt.nodes, tt.avg.NodesExpanded, 1e-9)
			assert.InDelta(t, tt.ms, tt.avg.TimeMs, 1e-9)
		})
	}
}

func TestWriteAveragesCSV(t *testing.T) {
	avgs := Averages([]Record{
		fixedRecord(pkg.BFS, "A", "B", 10, 4, 2*time.Millisecond),
		fixedRecord(pkg.BFS, "A", "C", 11, 5, 3*time.Millisecond),
	})

	var buf bytes.Buffer
	require.NoError(t, WriteAveragesCSV(&buf, avgs))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Algorithm", "AvgCostMinutes", "AvgNodesExpanded", "AvgTimeMilliseconds"},
		{"DFS", "", "", ""},
		{"BFS", "10.5", "4.5", "2.5"},
		{"GBFS", "", "", ""},
		{"A*", "", "", ""},
	}, rows)
}

func TestPrintSummary(t *testing.T) {
	avgs := Averages([]Record{fixedRecord(pkg.ASTAR, "A", "B", 39, 6, 1500*time.Microsecond)})

	var buf bytes.Buffer
	require.NoError(t, PrintSummary(&buf, "TODAY", avgs))

	out := buf.String()
	assert.Contains(t, out, "TODAY\n")
	assert.Contains(t, out, "Algorithm  | Avg Cost (min)    Avg Nodes  Avg Time (ms)\n")
	assert.Contains(t, out, "A*         |             39            6            1.5\n")
	assert.Contains(t, out, "DFS        |            N/A          N/A            N/A\n")
}

func TestCompareAndWriteCSV(t *testing.T) {
	today := []Record{
		fixedRecord(pkg.BFS, "A", "B", 10, 4, 2*time.Millisecond),
		fixedRecord(pkg.ASTAR, "A", "B", 10, 3, time.Millisecond),
	}
	future := []Record{
		fixedRecord(pkg.ASTAR, "A", "B", 7, 5, 3*time.Millisecond),
		{Query: Query{Algorithm: pkg.BFS, Origin: "A", Destination: "B"}, Cost: pkg.INF_WEIGHT},
	}

	comparisons := Compare(today, future)
	require.Len(t, comparisons, 2)
	assert.False(t, comparisons[0].Complete())
	assert.True(t, comparisons[1].Complete())
	assert.InDelta(t, -3, comparisons[1].DeltaCost(), 1e-9)
	assert.Equal(t, 2, comparisons[1].DeltaNodes())

	var buf bytes.Buffer
	require.NoError(t, WriteComparisonCSV(&buf, comparisons))
	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, comparisonHeader, rows[0])
	assert.Equal(t, []string{"BFS", "A", "B", "10", "4", "2", "", "", "", "", "", ""}, rows[1])
	assert.Equal(t, []string{"A*", "A", "B", "10", "3", "1", "7", "5", "3", "-3", "2", "2"}, rows[2])
}
