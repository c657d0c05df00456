package datastructure

import (
	"fmt"
	"math"
	"strings"
)

type rawEdge struct {
	tail, head Index
	minutes    float64
	line       string
}

// NetworkBuilder collects stations and edges and freezes them into a Network. Stations get dense
// ids in first-seen order and edges keep their supplied order per origin.
type NetworkBuilder struct {
	name       string
	names      []string
	stationIds map[string]Index
	edges      []rawEdge
	err        error
}

func NewNetworkBuilder(name string) *NetworkBuilder {
	return &NetworkBuilder{
		name:       name,
		names:      make([]string, 0),
		stationIds: make(map[string]Index),
		edges:      make([]rawEdge, 0),
	}
}

// validName reports whether name survives a round trip through the tab separated network file.
func validName(name string) bool {
	return !strings.ContainsAny(name, "\t\n\r")
}

// AddStation returns INVALID_STATION_ID and fails the builder when name is not a valid name.
func (b *NetworkBuilder) AddStation(name string) Index {
	if id, ok := b.stationIds[name]; ok {
		return id
	}
	if !validName(name) {
		if b.err == nil {
			b.err = fmt.Errorf("%w: station %q", ErrInvalidName, name)
		}
		return INVALID_STATION_ID
	}
	id := Index(len(b.names))
	b.names = append(b.names, name)
	b.stationIds[name] = id
	return id
}

func (b *NetworkBuilder) AddEdge(from, to string, minutes float64, line string) *NetworkBuilder {
	if b.err != nil {
		return b
	}
	if !(minutes > 0) || math.IsInf(minutes, 0) {
		b.err = fmt.Errorf("%w: %s -> %s (%s) = %v", ErrNonPositiveDuration, from, to, line, minutes)
		return b
	}
	if line == "" {
		b.err = fmt.Errorf("%w: %s -> %s", ErrEmptyLine, from, to)
		return b
	}
	if !validName(line) {
		b.err = fmt.Errorf("%w: line %q", ErrInvalidName, line)
		return b
	}
	tail := b.AddStation(from)
	head := b.AddStation(to)
	if b.err != nil {
		return b
	}
	b.edges = append(b.edges, rawEdge{tail: tail, head: head, minutes: minutes, line: line})
	return b
}

// AddConnections adds every connection of from, in order.
func (b *NetworkBuilder) AddConnections(from string, conns []Connection) *NetworkBuilder {
	b.AddStation(from)
	for _, c := range conns {
		b.AddEdge(from, c.Destination, c.Minutes, c.Line)
	}
	return b
}

func (b *NetworkBuilder) Build() (*Network, error) {
	if b.err != nil {
		return nil, b.err
	}
	if !validName(b.name) {
		return nil, fmt.Errorf("%w: network %q", ErrInvalidName, b.name)
	}

	n := len(b.names)
	outDegree := make([]Index, n)
	for _, e := range b.edges {
		outDegree[e.tail]++
	}

	stations := make([]Station, n+1)
	offset := Index(0)
	for u := 0; u < n; u++ {
		stations[u] = Station{name: b.names[u], firstOut: offset}
		offset += outDegree[u]
	}
	stations[n] = Station{firstOut: offset}

	// flatten, stable per tail
	next := make([]Index, n)
	for u := 0; u < n; u++ {
		next[u] = stations[u].firstOut
	}
	outEdges := make([]OutEdge, len(b.edges))
	for _, e := range b.edges {
		id := next[e.tail]
		outEdges[id] = NewOutEdge(id, e.tail, e.head, e.minutes, e.line)
		next[e.tail]++
	}

	connecting := make(map[stationPair][]Index)
	for i := range outEdges {
		key := stationPair{outEdges[i].tail, outEdges[i].head}
		connecting[key] = append(connecting[key], outEdges[i].edgeId)
	}

	stationIds := make(map[string]Index, n)
	for name, id := range b.stationIds {
		stationIds[name] = id
	}

	return &Network{
		name:       b.name,
		stations:   stations,
		outEdges:   outEdges,
		stationIds: stationIds,
		connecting: connecting,
	}, nil
}
