package routing

import (
	"testing"

	"github.com/lintang-b-s/metroplanner/pkg"
	"github.com/lintang-b-s/metroplanner/pkg/costfunction"
	"github.com/lintang-b-s/metroplanner/pkg/dataset"
	da "github.com/lintang-b-s/metroplanner/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func newTestEngine(t *testing.T, topology pkg.Topology) *SearchEngine {
	t.Helper()
	network, err := dataset.Network(topology)
	require.NoError(t, err)
	return NewSearchEngine(network, dataset.Coordinates(), costfunction.NewDefaultTransitCostFunction(), nil)
}

func TestSearchToday(t *testing.T) {
	engine := newTestEngine(t, pkg.TODAY)

	testCases := []struct {
		name          string
		algorithm     pkg.Algorithm
		start, goal   string
		timeOfDay     pkg.TimeOfDay
		wantPath      []string
		wantCost      float64
		wantExpansion int
	}{
		{
			name: "dfs changi airport to city hall", algorithm: pkg.DFS,
			start: "Changi Airport", goal: "City Hall", timeOfDay: pkg.OFF_PEAK,
			wantPath: []string{"Changi Airport", "Expo", "Tampines", "MacPherson", "Promenade", "Stevens",
				"Caldecott", "Bishan", "Serangoon", "Dhoby Ghaut", "Outram Park", "Marina Bay", "City Hall"},
			wantCost: 127, wantExpansion: 14,
		},
		{
			name: "bfs changi airport to city hall", algorithm: pkg.BFS,
			start: "Changi Airport", goal: "City Hall", timeOfDay: pkg.OFF_PEAK,
			wantPath: []string{"Changi Airport", "Expo", "Tanah Merah", "Paya Lebar", "City Hall"},
			wantCost: 39, wantExpansion: 7,
		},
		{
			name: "gbfs changi airport to city hall", algorithm: pkg.GBFS,
			start: "Changi Airport", goal: "City Hall", timeOfDay: pkg.OFF_PEAK,
			wantPath: []string{"Changi Airport", "Expo", "Tampines", "MacPherson", "Promenade", "Marina Bay",
				"City Hall"},
			wantCost: 70, wantExpansion: 7,
		},
		{
			name: "astar changi airport to city hall", algorithm: pkg.ASTAR,
			start: "Changi Airport", goal: "City Hall", timeOfDay: pkg.OFF_PEAK,
			wantPath: []string{"Changi Airport", "Expo", "Tanah Merah", "Paya Lebar", "City Hall"},
			wantCost: 39, wantExpansion: 6,
		},
		{
			name: "bfs changi airport to orchard", algorithm: pkg.BFS,
			start: "Changi Airport", goal: "Orchard", timeOfDay: pkg.OFF_PEAK,
			wantPath: []string{"Changi Airport", "Expo", "Tanah Merah", "Paya Lebar", "City Hall",
				"Dhoby Ghaut", "Orchard"},
			wantCost: 49, wantExpansion: 16,
		},
		{
			name: "gbfs changi airport to orchard", algorithm: pkg.GBFS,
			start: "Changi Airport", goal: "Orchard", timeOfDay: pkg.OFF_PEAK,
			wantPath: []string{"Changi Airport", "Expo", "Tampines", "MacPherson", "Serangoon", "Dhoby Ghaut",
				"Orchard"},
			wantCost: 70, wantExpansion: 7,
		},
		{
			name: "astar changi airport to orchard", algorithm: pkg.ASTAR,
			start: "Changi Airport", goal: "Orchard", timeOfDay: pkg.OFF_PEAK,
			wantPath: []string{"Changi Airport", "Expo", "Tanah Merah", "Paya Lebar", "City Hall",
				"Dhoby Ghaut", "Orchard"},
			wantCost: 49, wantExpansion: 13,
		},
		{
			name: "astar changi airport to gardens by the bay", algorithm: pkg.ASTAR,
			start: "Changi Airport", goal: "Gardens by the Bay", timeOfDay: pkg.OFF_PEAK,
			wantPath: []string{"Changi Airport", "Expo", "Tanah Merah", "Paya Lebar", "Promenade", "Marina Bay",
				"Gardens by the Bay"},
			wantCost: 54, wantExpansion: 30,
		},
		{
			name: "dfs paya lebar to changi airport", algorithm: pkg.DFS,
			start: "Paya Lebar", goal: "Changi Airport", timeOfDay: pkg.OFF_PEAK,
			wantPath: []string{"Paya Lebar", "Promenade", "Stevens", "Caldecott", "Bishan", "Serangoon",
				"MacPherson", "Tampines", "Expo", "Changi Airport"},
			wantCost: 94, wantExpansion: 11,
		},
		{
			name: "gbfs paya lebar to changi airport", algorithm: pkg.GBFS,
			start: "Paya Lebar", goal: "Changi Airport", timeOfDay: pkg.OFF_PEAK,
			wantPath: []string{"Paya Lebar", "Tanah Merah", "Expo", "Changi Airport"},
			wantCost: 27, wantExpansion: 4,
		},
		{
			name: "dfs tampines to changi airport backtracks", algorithm: pkg.DFS,
			start: "Tampines", goal: "Changi Airport", timeOfDay: pkg.OFF_PEAK,
			wantPath: []string{"Tampines", "Expo", "Changi Airport"},
			wantCost: 19, wantExpansion: 1883,
		},
		{
			name: "astar changi airport to city hall at peak", algorithm: pkg.ASTAR,
			start: "Changi Airport", goal: "City Hall", timeOfDay: pkg.PEAK,
			wantPath: []string{"Changi Airport", "Expo", "Tanah Merah", "Paya Lebar", "City Hall"},
			wantCost: 49.2, wantExpansion: 9,
		},
		{
			name: "astar changi airport to gardens by the bay at peak", algorithm: pkg.ASTAR,
			start: "Changi Airport", goal: "Gardens by the Bay", timeOfDay: pkg.PEAK,
			wantPath: []string{"Changi Airport", "Expo", "Tanah Merah", "Paya Lebar", "Promenade", "Marina Bay",
				"Gardens by the Bay"},
			wantCost: 65.7, wantExpansion: 31,
		},
		{
			name: "gbfs changi airport to city hall at peak", algorithm: pkg.GBFS,
			start: "Changi Airport", goal: "City Hall", timeOfDay: pkg.PEAK,
			wantPath: []string{"Changi Airport", "Expo", "Tampines", "MacPherson", "Promenade", "Marina Bay",
				"City Hall"},
			wantCost: 86.5, wantExpansion: 7,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			res, err := engine.Run(tt.algorithm, tt.start, tt.goal, tt.timeOfDay)
			require.NoError(t, err)
			assert.True(t, res.Found)
			assert.Equal(t, tt.wantPath, res.Path)
			assert.InDelta(t, tt.wantCost, res.Cost, 1e-9)
			assert.Equal(t, tt.wantExpansion, res.NodesExpanded)
			assert.Len(t, res.Lines, len(res.Path)-1)
		})
	}
}

func TestSearchFuture(t *testing.T) {
	engine := newTestEngine(t, pkg.FUTURE)

	testCases := []struct {
		name          string
		algorithm     pkg.Algorithm
		start, goal   string
		wantPath      []string
		wantCost      float64
		wantExpansion int
	}{
		{
			name: "astar changi airport to city hall", algorithm: pkg.ASTAR,
			start: "Changi Airport", goal: "City Hall",
			wantPath: []string{"Changi Airport", "Expo", "Tanah Merah", "Paya Lebar", "City Hall"},
			wantCost: 39, wantExpansion: 9,
		},
		{
			name: "bfs changi airport to city hall", algorithm: pkg.BFS,
			start: "Changi Airport", goal: "City Hall",
			wantPath: []string{"Changi Airport", "Expo", "Tanah Merah", "Paya Lebar", "City Hall"},
			wantCost: 39, wantExpansion: 15,
		},
		{
			name: "bfs changi airport to orchard", algorithm: pkg.BFS,
			start: "Changi Airport", goal: "Orchard",
			wantPath: []string{"Changi Airport", "Pasir Ris", "Hougang", "Ang Mo Kio", "Bishan", "Orchard"},
			wantCost: 51, wantExpansion: 24,
		},
		{
			name: "astar tampines to t5", algorithm: pkg.ASTAR,
			start: "Tampines", goal: "T5",
			wantPath: []string{"Tampines", "Expo", "Sungei Bedok", "T5"},
			wantCost: 24, wantExpansion: 11,
		},
		{
			name: "gbfs tampines to t5", algorithm: pkg.GBFS,
			start: "Tampines", goal: "T5",
			wantPath: []string{"Tampines", "Expo", "Changi Airport", "T5"},
			wantCost: 30, wantExpansion: 4,
		},
		{
			name: "dfs tampines to t5", algorithm: pkg.DFS,
			start: "Tampines", goal: "T5",
			wantPath: []string{"Tampines", "Expo", "Sungei Bedok", "T5"},
			wantCost: 24, wantExpansion: 4,
		},
		{
			name: "astar harbourfront to t5", algorithm: pkg.ASTAR,
			start: "Harbourfront", goal: "T5",
			wantPath: []string{"Harbourfront", "Outram Park", "Marina Bay", "Gardens by the Bay", "Sungei Bedok", "T5"},
			wantCost: 44, wantExpansion: 34,
		},
		{
			name: "bfs harbourfront to t5", algorithm: pkg.BFS,
			start: "Harbourfront", goal: "T5",
			wantPath: []string{"Harbourfront", "Marina Bay", "Gardens by the Bay", "Sungei Bedok", "T5"},
			wantCost: 48, wantExpansion: 20,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			res, err := engine.Run(tt.algorithm, tt.start, tt.goal, pkg.OFF_PEAK)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, res.Path)
			assert.InDelta(t, tt.wantCost, res.Cost, 1e-9)
			assert.Equal(t, tt.wantExpansion, res.NodesExpanded)
		})
	}
}

func TestSearchStartEqualsGoal(t *testing.T) {
	for _, topology := range []pkg.Topology{pkg.TODAY, pkg.FUTURE} {
		engine := newTestEngine(t, topology)
		for _, algorithm := range pkg.Algorithms {
			t.Run(topology.String()+" "+algorithm.String(), func(t *testing.T) {
				res, err := engine.Run(algorithm, "Expo", "Expo", pkg.PEAK)
				require.NoError(t, err)
				assert.True(t, res.Found)
				assert.Equal(t, []string{"Expo"}, res.Path)
				assert.Empty(t, res.Lines)
				assert.Equal(t, 0.0, res.Cost)
				assert.Equal(t, 0, res.NodesExpanded)
			})
		}
	}
}

func TestSearchUnknownStation(t *testing.T) {
	testCases := []struct {
		name        string
		topology    pkg.Topology
		start, goal string
	}{
		{name: "unknown start", topology: pkg.TODAY, start: "Atlantis", goal: "City Hall"},
		{name: "unknown goal", topology: pkg.TODAY, start: "City Hall", goal: "Atlantis"},
		{name: "future station on today network", topology: pkg.TODAY, start: "T5", goal: "City Hall"},
		{name: "station with coordinate but not in network", topology: pkg.TODAY, start: "Changi Airport", goal: "Harbourfront"},
		{name: "unknown both on future network", topology: pkg.FUTURE, start: "Atlantis", goal: "Lemuria"},
		{name: "unknown start equals goal", topology: pkg.FUTURE, start: "Atlantis", goal: "Atlantis"},
	}

	for _, tt := range testCases {
		engine := newTestEngine(t, tt.topology)
		for _, algorithm := range pkg.Algorithms {
			t.Run(tt.name+" "+algorithm.String(), func(t *testing.T) {
				res, err := engine.Run(algorithm, tt.start, tt.goal, pkg.OFF_PEAK)
				assert.ErrorIs(t, err, da.ErrUnknownStation)
				assert.Nil(t, res)
			})
		}
	}
}

func TestSearchUnknownAlgorithm(t *testing.T) {
	engine := newTestEngine(t, pkg.TODAY)
	_, err := engine.Run(pkg.Algorithm(42), "Expo", "City Hall", pkg.OFF_PEAK)
	assert.ErrorIs(t, err, pkg.ErrUnknownAlgorithm)
}

func TestSearchUnreachable(t *testing.T) {
	network, err := da.NewNetworkBuilder("oneway").
		AddEdge("A", "B", 1, "L1").
		AddEdge("C", "A", 1, "L1").
		Build()
	require.NoError(t, err)
	coords := da.NewCoordinateIndex(map[string][2]float64{"A": {0, 0}, "B": {1, 0}, "C": {2, 0}})
	engine := NewSearchEngine(network, coords, costfunction.NewDefaultTransitCostFunction(), nil)

	for _, algorithm := range pkg.Algorithms {
		t.Run(algorithm.String(), func(t *testing.T) {
			res, err := engine.Run(algorithm, "A", "C", pkg.OFF_PEAK)
			require.NoError(t, err)
			assert.False(t, res.Found)
			assert.Nil(t, res.Path)
			assert.True(t, pkg.IsInf(res.Cost))
			assert.Equal(t, 2, res.NodesExpanded)
		})
	}
}

func TestSearchMissingCoordinate(t *testing.T) {
	network, err := da.NewNetworkBuilder("partial").
		AddEdge("A", "B", 1, "L1").
		AddEdge("B", "C", 1, "L1").
		Build()
	require.NoError(t, err)
	coords := da.NewCoordinateIndex(map[string][2]float64{"A": {0, 0}, "C": {2, 0}})
	engine := NewSearchEngine(network, coords, costfunction.NewDefaultTransitCostFunction(), nil)

	for _, algorithm := range []pkg.Algorithm{pkg.DFS, pkg.BFS} {
		res, err := engine.Run(algorithm, "A", "C", pkg.OFF_PEAK)
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "C"}, res.Path)
		assert.Equal(t, 2.0, res.Cost)
	}

	for _, algorithm := range []pkg.Algorithm{pkg.GBFS, pkg.ASTAR} {
		_, err := engine.Run(algorithm, "B", "C", pkg.OFF_PEAK)
		assert.ErrorIs(t, err, da.ErrUnknownStation)

		// B is only reached during the search
		_, err = engine.Run(algorithm, "A", "C", pkg.OFF_PEAK)
		assert.ErrorIs(t, err, da.ErrUnknownStation)
	}
}

func TestAStarAgreesWithPathCost(t *testing.T) {
	engine := newTestEngine(t, pkg.TODAY)
	network := engine.GetNetwork()
	cf := costfunction.NewDefaultTransitCostFunction()

	for _, tod := range []pkg.TimeOfDay{pkg.OFF_PEAK, pkg.PEAK, pkg.DISRUPTED} {
		for _, start := range network.Stations() {
			for _, goal := range network.Stations() {
				res, err := engine.Run(pkg.ASTAR, start, goal, tod)
				require.NoError(t, err)
				require.True(t, res.Found, "%s -> %s", start, goal)

				cost, err := cf.PathCost(network, res.Path, tod)
				require.NoError(t, err)
				assert.InDelta(t, cost, res.Cost, 1e-9, "%s -> %s (%s)", start, goal, tod)
			}
		}
	}
}

func TestAStarParallelLines(t *testing.T) {
	engine := newTestEngine(t, pkg.FUTURE)
	network := engine.GetNetwork()
	cf := costfunction.NewDefaultTransitCostFunction()

	res, err := engine.Run(pkg.ASTAR, "Changi Airport", "Gardens by the Bay", pkg.OFF_PEAK)
	require.NoError(t, err)
	assert.Equal(t, []string{"Changi Airport", "T5", "Sungei Bedok", "Gardens by the Bay"}, res.Path)
	assert.Equal(t, []string{"TEL", "TEL", "TEL"}, res.Lines)
	assert.Equal(t, 41.0, res.Cost)
	assert.Equal(t, 13, res.NodesExpanded)

	// first listed Changi Airport -> T5 edge is CRL, re-scoring the stations alone adds a transfer
	firstListed, err := cf.PathCost(network, res.Path, pkg.OFF_PEAK)
	require.NoError(t, err)
	assert.Equal(t, 42.0, firstListed)

	alongLines, err := cf.PathCostAlongLines(network, res.Path, res.Lines, pkg.OFF_PEAK)
	require.NoError(t, err)
	assert.Equal(t, res.Cost, alongLines)

	for _, start := range network.Stations() {
		for _, goal := range network.Stations() {
			res, err := engine.Run(pkg.ASTAR, start, goal, pkg.OFF_PEAK)
			require.NoError(t, err)
			cost, err := cf.PathCostAlongLines(network, res.Path, res.Lines, pkg.OFF_PEAK)
			require.NoError(t, err)
			assert.InDelta(t, cost, res.Cost, 1e-9, "%s -> %s", start, goal)

			firstListed, err := cf.PathCost(network, res.Path, pkg.OFF_PEAK)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, firstListed, res.Cost-1e-9)
		}
	}
}

func TestTransferPenaltyOnPath(t *testing.T) {
	build := func(secondLine string) *da.Network {
		network, err := da.NewNetworkBuilder(secondLine).
			AddEdge("A", "B", 3, "L1").
			AddEdge("B", "C", 4, secondLine).
			Build()
		require.NoError(t, err)
		return network
	}
	coords := da.NewCoordinateIndex(map[string][2]float64{"A": {0, 0}, "B": {1, 0}, "C": {2, 0}})
	cf := costfunction.NewDefaultTransitCostFunction()
	sameLine := build("L1")
	switchLine := build("L2")
	path := []string{"A", "B", "C"}

	for _, tod := range []pkg.TimeOfDay{pkg.PEAK, pkg.OFF_PEAK, pkg.DISRUPTED, "rush_hour"} {
		t.Run(string(tod), func(t *testing.T) {
			stay, err := cf.PathCost(sameLine, path, tod)
			require.NoError(t, err)
			change, err := cf.PathCost(switchLine, path, tod)
			require.NoError(t, err)
			assert.InDelta(t, 5.0, change-stay, 1e-9)

			stayRes, err := NewSearchEngine(sameLine, coords, cf, nil).Run(pkg.ASTAR, "A", "C", tod)
			require.NoError(t, err)
			changeRes, err := NewSearchEngine(switchLine, coords, cf, nil).Run(pkg.ASTAR, "A", "C", tod)
			require.NoError(t, err)
			assert.Equal(t, path, stayRes.Path)
			assert.Equal(t, path, changeRes.Path)
			assert.Equal(t, []string{"L1", "L2"}, changeRes.Lines)
			assert.InDelta(t, 5.0, changeRes.Cost-stayRes.Cost, 1e-9)
			assert.InDelta(t, stay, stayRes.Cost, 1e-9)
			assert.InDelta(t, change, changeRes.Cost, 1e-9)
		})
	}
}

func TestAStarNotWorseThanBFS(t *testing.T) {
	engine := newTestEngine(t, pkg.TODAY)

	results, err := engine.RunAll("Changi Airport", "City Hall", pkg.OFF_PEAK)
	require.NoError(t, err)
	require.Len(t, results, len(pkg.Algorithms))
	for _, res := range results {
		assert.True(t, res.Found)
	}

	bfs, astar := results[pkg.BFS], results[pkg.ASTAR]
	bfsCost, err := engine.GetCostFunction().PathCost(engine.GetNetwork(), bfs.Path, pkg.OFF_PEAK)
	require.NoError(t, err)
	assert.LessOrEqual(t, astar.Cost, bfsCost)
}

func TestSearchIdempotent(t *testing.T) {
	engine := newTestEngine(t, pkg.FUTURE)

	for _, algorithm := range pkg.Algorithms {
		t.Run(algorithm.String(), func(t *testing.T) {
			first, err := engine.Run(algorithm, "Harbourfront", "T5", pkg.DISRUPTED)
			require.NoError(t, err)
			for i := 0; i < 3; i++ {
				again, err := engine.Run(algorithm, "Harbourfront", "T5", pkg.DISRUPTED)
				require.NoError(t, err)
				assert.Equal(t, first, again)
			}
		})
	}
}

func TestSearchConcurrent(t *testing.T) {
	engine := newTestEngine(t, pkg.TODAY)
	want, err := engine.Run(pkg.ASTAR, "Changi Airport", "Orchard", pkg.OFF_PEAK)
	require.NoError(t, err)

	results := make([]*SearchResult, 16)
	var g errgroup.Group
	for i := range results {
		g.Go(func() error {
			res, err := engine.Run(pkg.ASTAR, "Changi Airport", "Orchard", pkg.OFF_PEAK)
			results[i] = res
			return err
		})
	}
	require.NoError(t, g.Wait())
	for _, res := range results {
		assert.Equal(t, want, res)
	}
}

func TestFrontierDisciplines(t *testing.T) {
	stack := newStackFrontier()
	queue := newQueueFrontier()
	pq := newPriorityFrontier()
	for i, p := range []float64{3, 1, 2, 1} {
		stack.Add(i, p)
		queue.Add(i, p)
		pq.Add(i, p)
	}

	drain := func(f Frontier) []int {
		out := make([]int, 0)
		for !f.Empty() {
			out = append(out, f.Remove())
		}
		return out
	}
	assert.Equal(t, []int{3, 2, 1, 0}, drain(stack))
	assert.Equal(t, []int{0, 1, 2, 3}, drain(queue))
	// equal priorities leave in insertion order
	assert.Equal(t, []int{1, 3, 2, 0}, drain(pq))
	assert.Equal(t, 0, pq.Len())
}
