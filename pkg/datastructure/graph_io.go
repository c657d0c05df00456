package datastructure

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/golang/geo/r2"
)

/*
network file format (bzip2 compressed, tab separated, one record per line):

	N	<network name>
	S	<station>
	E	<from>	<to>	<minutes>	<line>
	C	<station>	<x>	<y>

S records fix station id order, E records keep their order per origin. C records are optional.
*/

var ErrMalformedNetworkFile = errors.New("malformed network file")

func (n *Network) WriteNetwork(filename string) error {
	return n.WriteNetworkWithCoordinates(filename, nil)
}

func (n *Network) WriteNetworkWithCoordinates(filename string, coords *CoordinateIndex) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := n.writeCompressed(f, coords); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (n *Network) writeCompressed(f io.Writer, coords *CoordinateIndex) error {
	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}

	w := bufio.NewWriter(bz)
	if err := n.encode(w, coords); err != nil {
		bz.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		bz.Close()
		return err
	}
	return bz.Close()
}

func (n *Network) encode(w io.Writer, coords *CoordinateIndex) error {
	if _, err := fmt.Fprintf(w, "N\t%s\n", n.name); err != nil {
		return err
	}
	for u := 0; u < n.NumberOfStations(); u++ {
		if _, err := fmt.Fprintf(w, "S\t%s\n", n.stations[u].name); err != nil {
			return err
		}
	}
	for i := range n.outEdges {
		e := &n.outEdges[i]
		minutesF := strconv.FormatFloat(e.minutes, 'f', -1, 64)
		if _, err := fmt.Fprintf(w, "E\t%s\t%s\t%s\t%s\n",
			n.stations[e.tail].name, n.stations[e.head].name, minutesF, e.line); err != nil {
			return err
		}
	}
	if coords == nil {
		return nil
	}
	var werr error
	coords.ForEach(func(name string, p r2.Point) {
		if werr != nil {
			return
		}
		if !validName(name) {
			werr = fmt.Errorf("%w: coordinate station %q", ErrInvalidName, name)
			return
		}
		_, werr = fmt.Fprintf(w, "C\t%s\t%s\t%s\n", name,
			strconv.FormatFloat(p.X, 'f', -1, 64), strconv.FormatFloat(p.Y, 'f', -1, 64))
	})
	return werr
}

// ReadNetwork reads a network file. The coordinate index is empty when the file has no C records.
func ReadNetwork(filename string) (*Network, *CoordinateIndex, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	bz, err := bzip2.NewReader(f, &bzip2.ReaderConfig{})
	if err != nil {
		return nil, nil, err
	}
	defer bz.Close()

	return DecodeNetwork(bz)
}

func DecodeNetwork(r io.Reader) (*Network, *CoordinateIndex, error) {
	var b *NetworkBuilder
	coords := make(map[string][2]float64)

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if line == "" {
			continue
		}
		ff := strings.Split(line, "\t")

		if b == nil && ff[0] != "N" {
			b = NewNetworkBuilder("")
		}

		switch ff[0] {
		case "N":
			if len(ff) != 2 || b != nil {
				return nil, nil, fmt.Errorf("%w: line %d: unexpected network header", ErrMalformedNetworkFile, lineNo)
			}
			b = NewNetworkBuilder(ff[1])
		case "S":
			if len(ff) != 2 {
				return nil, nil, fmt.Errorf("%w: line %d: station record", ErrMalformedNetworkFile, lineNo)
			}
			b.AddStation(ff[1])
		case "E":
			if len(ff) != 5 {
				return nil, nil, fmt.Errorf("%w: line %d: edge record", ErrMalformedNetworkFile, lineNo)
			}
			minutes, err := strconv.ParseFloat(ff[3], 64)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: line %d: %v", ErrMalformedNetworkFile, lineNo, err)
			}
			b.AddEdge(ff[1], ff[2], minutes, ff[4])
		case "C":
			if len(ff) != 4 {
				return nil, nil, fmt.Errorf("%w: line %d: coordinate record", ErrMalformedNetworkFile, lineNo)
			}
			x, err := strconv.ParseFloat(ff[2], 64)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: line %d: %v", ErrMalformedNetworkFile, lineNo, err)
			}
			y, err := strconv.ParseFloat(ff[3], 64)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: line %d: %v", ErrMalformedNetworkFile, lineNo, err)
			}
			coords[ff[1]] = [2]float64{x, y}
		default:
			return nil, nil, fmt.Errorf("%w: line %d: unknown record %q", ErrMalformedNetworkFile, lineNo, ff[0])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}
	if b == nil {
		return nil, nil, fmt.Errorf("%w: empty file", ErrMalformedNetworkFile)
	}

	network, err := b.Build()
	if err != nil {
		return nil, nil, err
	}
	return network, NewCoordinateIndex(coords), nil
}
