package datastructure

import (
	"errors"
	"fmt"
	"math"
)

type Index uint32

const (
	INVALID_STATION_ID Index = math.MaxUint32
	INVALID_EDGE_ID    Index = math.MaxUint32
)

var (
	ErrUnknownStation      = errors.New("unknown station")
	ErrNonPositiveDuration = errors.New("edge duration must be positive and finite")
	ErrEmptyLine           = errors.New("edge line id must not be empty")
	ErrInvalidName         = errors.New("name must not contain tabs or line breaks")
)

func UnknownStationError(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownStation, name)
}

type Station struct {
	name     string
	firstOut Index // index of the first outEdge of this station in the flattened network.outEdges array
}

// OutEdge is a directed, line-labeled connection tail -> head.
type OutEdge struct {
	minutes float64 // base duration
	line    string
	edgeId  Index
	tail    Index
	head    Index
}

func NewOutEdge(edgeId, tail, head Index, minutes float64, line string) OutEdge {
	return OutEdge{
		edgeId:  edgeId,
		tail:    tail,
		head:    head,
		minutes: minutes,
		line:    line,
	}
}

func (e *OutEdge) GetEdgeId() Index {
	return e.edgeId
}

func (e *OutEdge) GetTail() Index {
	return e.tail
}

func (e *OutEdge) GetHead() Index {
	return e.head
}

func (e *OutEdge) GetMinutes() float64 {
	return e.minutes
}

func (e *OutEdge) GetLine() string {
	return e.line
}

// Connection is the name-level view of an OutEdge.
type Connection struct {
	Destination string  `json:"destination"`
	Minutes     float64 `json:"minutes"`
	Line        string  `json:"line"`
}

type stationPair struct {
	tail, head Index
}

// Network is one immutable topology variant. Out-edges are stored in a compressed sparse row
// layout: the out-edges of station u are outEdges[stations[u].firstOut : stations[u+1].firstOut]
// in the order they were supplied to the builder.
type Network struct {
	name       string
	stations   []Station // len = number of stations + 1 (sentinel)
	outEdges   []OutEdge
	stationIds map[string]Index

	// tail,head -> edge ids in listed order
	connecting map[stationPair][]Index
}

func (n *Network) Name() string {
	return n.name
}

func (n *Network) NumberOfStations() int {
	return len(n.stations) - 1
}

func (n *Network) NumberOfEdges() int {
	return len(n.outEdges)
}

func (n *Network) HasStation(name string) bool {
	_, ok := n.stationIds[name]
	return ok
}

func (n *Network) StationIndex(name string) (Index, error) {
	id, ok := n.stationIds[name]
	if !ok {
		return INVALID_STATION_ID, UnknownStationError(name)
	}
	return id, nil
}

func (n *Network) StationName(u Index) string {
	return n.stations[u].name
}

// Stations returns station names in id order.
func (n *Network) Stations() []string {
	names := make([]string, 0, n.NumberOfStations())
	for u := 0; u < n.NumberOfStations(); u++ {
		names = append(names, n.stations[u].name)
	}
	return names
}

func (n *Network) GetOutDegree(u Index) Index {
	return n.stations[u+1].firstOut - n.stations[u].firstOut
}

func (n *Network) ForOutEdgesOf(u Index, handle func(e *OutEdge)) {
	for e := n.stations[u].firstOut; e < n.stations[u+1].firstOut; e++ {
		handle(&n.outEdges[e])
	}
}

// OutgoingEdges returns the connections leaving station in listed order.
func (n *Network) OutgoingEdges(station string) ([]Connection, error) {
	u, err := n.StationIndex(station)
	if err != nil {
		return nil, err
	}
	conns := make([]Connection, 0, n.GetOutDegree(u))
	n.ForOutEdgesOf(u, func(e *OutEdge) {
		conns = append(conns, Connection{
			Destination: n.stations[e.head].name,
			Minutes:     e.minutes,
			Line:        e.line,
		})
	})
	return conns, nil
}

// ConnectingEdges returns every edge u -> v in listed order.
func (n *Network) ConnectingEdges(u, v Index) []*OutEdge {
	ids := n.connecting[stationPair{u, v}]
	edges := make([]*OutEdge, len(ids))
	for i, id := range ids {
		edges[i] = &n.outEdges[id]
	}
	return edges
}

// FirstConnectingEdge returns the first listed edge u -> v. When several lines connect the same
// pair the first one supplied wins, it is not the cheapest one.
func (n *Network) FirstConnectingEdge(u, v Index) (*OutEdge, bool) {
	ids := n.connecting[stationPair{u, v}]
	if len(ids) == 0 {
		return nil, false
	}
	return &n.outEdges[ids[0]], true
}

// ConnectingEdgeOnLine returns the first listed edge u -> v carrying line.
func (n *Network) ConnectingEdgeOnLine(u, v Index, line string) (*OutEdge, bool) {
	for _, id := range n.connecting[stationPair{u, v}] {
		if n.outEdges[id].line == line {
			return &n.outEdges[id], true
		}
	}
	return nil, false
}

// Lines returns the distinct line ids in first-seen order.
func (n *Network) Lines() []string {
	seen := make(map[string]struct{})
	lines := make([]string, 0)
	for i := range n.outEdges {
		l := n.outEdges[i].line
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		lines = append(lines, l)
	}
	return lines
}
