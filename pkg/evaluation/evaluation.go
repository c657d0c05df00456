package evaluation

import (
	"fmt"
	"time"

	"github.com/lintang-b-s/metroplanner/pkg"
	"github.com/lintang-b-s/metroplanner/pkg/concurrent"
	"github.com/lintang-b-s/metroplanner/pkg/dataset"
	"github.com/lintang-b-s/metroplanner/pkg/engine/routing"
	"go.uber.org/zap"
)

type Searcher interface {
	Search(topology pkg.Topology, algorithm pkg.Algorithm, start, goal string,
		timeOfDay pkg.TimeOfDay) (*routing.SearchResult, error)
}

type Query struct {
	Topology    pkg.Topology
	Algorithm   pkg.Algorithm
	Origin      string
	Destination string
	TimeOfDay   pkg.TimeOfDay
}

// Record is the measured outcome of one query. Path is nil and Found false when the goal was
// unreachable.
type Record struct {
	Query
	Path          []string
	Cost          float64
	NodesExpanded int
	Elapsed       time.Duration
	Found         bool
	err           error
}

func (r Record) ElapsedMilliseconds() float64 {
	return float64(r.Elapsed.Nanoseconds()) / 1e6
}

type Runner struct {
	searcher   Searcher
	numWorkers int
	logger     *zap.Logger
}

// NewRunner fans queries out over numWorkers goroutines, numWorkers < 1 runs them one at a time.
// Concurrent searches share CPUs, so only a single worker gives undisturbed elapsed times.
func NewRunner(searcher Searcher, numWorkers int, logger *zap.Logger) *Runner {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		searcher:   searcher,
		numWorkers: numWorkers,
		logger:     logger,
	}
}

// Queries expands od pairs into one query per algorithm, pair major.
func Queries(topology pkg.Topology, pairs []dataset.ODPair, timeOfDay pkg.TimeOfDay) []Query {
	queries := make([]Query, 0, len(pairs)*len(pkg.Algorithms))
	for _, p := range pairs {
		for _, algorithm := range pkg.Algorithms {
			queries = append(queries, Query{
				Topology:    topology,
				Algorithm:   algorithm,
				Origin:      p.Origin,
				Destination: p.Destination,
				TimeOfDay:   timeOfDay,
			})
		}
	}
	return queries
}

// Run executes every algorithm for every pair and returns the records in query order.
func (r *Runner) Run(topology pkg.Topology, pairs []dataset.ODPair, timeOfDay pkg.TimeOfDay) ([]Record, error) {
	return r.RunQueries(Queries(topology, pairs, timeOfDay))
}

func (r *Runner) RunQueries(queries []Query) ([]Record, error) {
	records := concurrent.Map(r.numWorkers, queries, r.runOne)

	for _, rec := range records {
		if rec.err != nil {
			return nil, fmt.Errorf("%s %s %s -> %s: %w", rec.Topology, rec.Algorithm, rec.Origin,
				rec.Destination, rec.err)
		}
		r.logger.Debug("query done",
			zap.String("topology", rec.Topology.String()),
			zap.String("algorithm", rec.Algorithm.String()),
			zap.String("origin", rec.Origin),
			zap.String("destination", rec.Destination),
			zap.Bool("found", rec.Found),
			zap.Float64("cost", rec.Cost),
			zap.Int("nodesExpanded", rec.NodesExpanded),
			zap.Duration("elapsed", rec.Elapsed))
	}
	return records, nil
}

func (r *Runner) runOne(q Query) Record {
	start := time.Now()
	res, err := r.searcher.Search(q.Topology, q.Algorithm, q.Origin, q.Destination, q.TimeOfDay)
	elapsed := time.Since(start)
	if err != nil {
		return Record{Query: q, Elapsed: elapsed, err: err}
	}
	return Record{
		Query:         q,
		Path:          res.Path,
		Cost:          res.Cost,
		NodesExpanded: res.NodesExpanded,
		Elapsed:       elapsed,
		Found:         res.Found,
	}
}
