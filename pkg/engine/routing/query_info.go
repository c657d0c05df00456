package routing

import (
	da "github.com/lintang-b-s/metroplanner/pkg/datastructure"
	"github.com/lintang-b-s/metroplanner/pkg/util"
)

const noParent = -1

// searchNode is one entry of the per-search node arena. parent is the arena index of the node
// it was expanded from.
type searchNode struct {
	station da.Index
	parent  int
	edge    da.Index // out edge used to reach station, INVALID_EDGE_ID for the root
	g       float64
	line    string // line of edge, empty for the root
	depth   int
}

func (sn *searchNode) getStation() da.Index {
	return sn.station
}

func (sn *searchNode) getG() float64 {
	return sn.g
}

func (sn *searchNode) getLine() string {
	return sn.line
}

func (sn *searchNode) getDepth() int {
	return sn.depth
}

type nodeArena struct {
	nodes []searchNode
}

func newNodeArena(capacity int) *nodeArena {
	return &nodeArena{nodes: make([]searchNode, 0, capacity)}
}

func (a *nodeArena) newRoot(s da.Index) int {
	a.nodes = append(a.nodes, searchNode{
		station: s,
		parent:  noParent,
		edge:    da.INVALID_EDGE_ID,
	})
	return len(a.nodes) - 1
}

// newChild appends the node reached from parent over e. g is the caller's accumulated cost.
func (a *nodeArena) newChild(parent int, e *da.OutEdge, g float64) int {
	p := &a.nodes[parent]
	a.nodes = append(a.nodes, searchNode{
		station: e.GetHead(),
		parent:  parent,
		edge:    e.GetEdgeId(),
		g:       g,
		line:    e.GetLine(),
		depth:   p.depth + 1,
	})
	return len(a.nodes) - 1
}

func (a *nodeArena) get(i int) *searchNode {
	return &a.nodes[i]
}

// onPath marks every station on the root chain of node i.
func (a *nodeArena) onPath(i int, mark []bool) {
	for cur := i; cur != noParent; cur = a.nodes[cur].parent {
		mark[a.nodes[cur].station] = true
	}
}

// reconstructPath walks parent links from node i back to the root. Returns the station sequence
// and the lines of the edges between them.
func (a *nodeArena) reconstructPath(network *da.Network, i int) ([]string, []string) {
	path := make([]string, 0, a.nodes[i].depth+1)
	lines := make([]string, 0, a.nodes[i].depth)
	for cur := i; cur != noParent; cur = a.nodes[cur].parent {
		n := &a.nodes[cur]
		path = append(path, network.StationName(n.station))
		if n.parent != noParent {
			lines = append(lines, n.line)
		}
	}
	return util.ReverseG(path), util.ReverseG(lines)
}
