package usecases

import (
	"errors"

	"github.com/golang/geo/r2"
	"github.com/lintang-b-s/metroplanner/pkg"
	"github.com/lintang-b-s/metroplanner/pkg/datastructure"
	"github.com/lintang-b-s/metroplanner/pkg/geo"
	"github.com/lintang-b-s/metroplanner/pkg/spatialindex"
	"github.com/lintang-b-s/metroplanner/pkg/util"
)

var (
	ErrNoStationNearby   = errors.New("no station near the given point")
	ErrNoSpatialIndex    = errors.New("no spatial index for topology")
	ErrMissingCoordinate = errors.New("station has no coordinate")
)

func (rs *RoutingService) spatialIndexOf(topology pkg.Topology) (SpatialIndex, error) {
	index, ok := rs.spatialIndex[topology]
	if !ok {
		return nil, util.WrapErrorf(ErrNoSpatialIndex, util.ErrBadParamInput,
			"point queries are not available for the %s network", topology)
	}
	return index, nil
}

// resolveLocation returns the station name of loc. A point is snapped to its nearest station,
// which is returned as well.
func (rs *RoutingService) resolveLocation(topology pkg.Topology, loc Location) (string,
	*spatialindex.StationDistance, error) {
	if !loc.ByPoint() {
		return loc.Station, nil, nil
	}

	index, err := rs.spatialIndexOf(topology)
	if err != nil {
		return "", nil, err
	}
	nearest, ok := index.NearestStation(loc.X, loc.Y)
	if !ok {
		return "", nil, util.WrapErrorf(ErrNoStationNearby, util.ErrNotFound, "no station near %v,%v",
			loc.X, loc.Y)
	}
	return nearest.GetName(), &nearest, nil
}

// routeGeometry encodes the station positions of path as a polyline and sums the straight line
// length between them. Both are empty when a station has no coordinate.
func (rs *RoutingService) routeGeometry(topology pkg.Topology, path []string) (string, float64, error) {
	coords, err := rs.engine.Coordinates(topology)
	if err != nil {
		return "", 0, translateError(err)
	}

	points := make([]r2.Point, 0, len(path))
	for _, name := range path {
		p, err := coords.Coordinate(name)
		if err != nil {
			rs.log.Sugar().Debugf("route geometry skipped: %v", err)
			return "", 0, nil
		}
		points = append(points, p)
	}
	return geo.PolylineFromPoints(points), geo.PathLength(points), nil
}

func distinctLines(conns []datastructure.Connection) []string {
	seen := make(map[string]struct{}, len(conns))
	lines := make([]string, 0, len(conns))
	for _, c := range conns {
		if _, ok := seen[c.Line]; ok {
			continue
		}
		seen[c.Line] = struct{}{}
		lines = append(lines, c.Line)
	}
	return lines
}

// translateError maps domain errors to the error codes the controllers understand.
func translateError(err error) error {
	var uerr *util.Error
	switch {
	case errors.As(err, &uerr):
		return err
	case errors.Is(err, datastructure.ErrUnknownStation):
		return util.WrapErrorf(err, util.ErrNotFound, "%s", err.Error())
	case errors.Is(err, pkg.ErrUnknownTopology), errors.Is(err, pkg.ErrUnknownAlgorithm):
		return util.WrapErrorf(err, util.ErrBadParamInput, "%s", err.Error())
	default:
		return util.WrapErrorf(err, util.ErrInternalServerError, "%s", util.MessageInternalServerError)
	}
}
