package dataset

import (
	"fmt"

	"github.com/lintang-b-s/metroplanner/pkg"
	da "github.com/lintang-b-s/metroplanner/pkg/datastructure"
)

// ODPair is an origin-destination query.
type ODPair struct {
	Origin      string
	Destination string
}

// TodayNetwork returns a fresh copy of the current network.
func TodayNetwork() (*da.Network, error) {
	return buildNetwork(pkg.TODAY.String(), todayTable)
}

// FutureNetwork returns a fresh copy of the future network.
func FutureNetwork() (*da.Network, error) {
	return buildNetwork(pkg.FUTURE.String(), futureTable)
}

func Network(topology pkg.Topology) (*da.Network, error) {
	switch topology {
	case pkg.TODAY:
		return TodayNetwork()
	case pkg.FUTURE:
		return FutureNetwork()
	default:
		return nil, fmt.Errorf("%w: %v", pkg.ErrUnknownTopology, topology)
	}
}

func Coordinates() *da.CoordinateIndex {
	return da.NewCoordinateIndex(coordinateTable)
}

func buildNetwork(name string, table []adjacency) (*da.Network, error) {
	b := da.NewNetworkBuilder(name)
	for _, adj := range table {
		b.AddConnections(adj.from, adj.conns)
	}
	return b.Build()
}

// TodayODPairs are the comparison queries run against the current network.
func TodayODPairs() []ODPair {
	return []ODPair{
		{"Changi Airport", "City Hall"},
		{"Changi Airport", "Orchard"},
		{"Changi Airport", "Gardens by the Bay"},
		{"Paya Lebar", "Changi Airport"},
		{"Tampines", "Changi Airport"},
	}
}

// FutureODPairs are the comparison queries run against the future network.
func FutureODPairs() []ODPair {
	return []ODPair{
		{"Changi Airport", "City Hall"},
		{"Changi Airport", "Orchard"},
		{"Changi Airport", "Gardens by the Bay"},
		{"Paya Lebar", "T5"},
		{"Harbourfront", "T5"},
		{"Bishan", "T5"},
		{"Tampines", "T5"},
	}
}

// SharedODPairs exist in both networks and are used for today vs future deltas.
func SharedODPairs() []ODPair {
	return []ODPair{
		{"Changi Airport", "City Hall"},
		{"Changi Airport", "Orchard"},
		{"Changi Airport", "Gardens by the Bay"},
	}
}
