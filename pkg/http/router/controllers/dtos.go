package controllers

import (
	"github.com/lintang-b-s/metroplanner/pkg"
	"github.com/lintang-b-s/metroplanner/pkg/costfunction"
	"github.com/lintang-b-s/metroplanner/pkg/geo"
	"github.com/lintang-b-s/metroplanner/pkg/http/usecases"
	"github.com/lintang-b-s/metroplanner/pkg/spatialindex"
)

type routeRequest struct {
	Topology     string   `json:"topology" validate:"omitempty,max=16"`
	Algorithm    string   `json:"algorithm" validate:"omitempty,max=16"`
	Origin       string   `json:"origin" validate:"omitempty,max=128"`
	OriginX      *float64 `json:"origin_x" validate:"required_without=Origin"`
	OriginY      *float64 `json:"origin_y" validate:"required_without=Origin"`
	Destination  string   `json:"destination" validate:"omitempty,max=128"`
	DestinationX *float64 `json:"destination_x" validate:"required_without=Destination"`
	DestinationY *float64 `json:"destination_y" validate:"required_without=Destination"`
	TimeOfDay    string   `json:"time_of_day" validate:"omitempty,max=32"`
}

func (r *routeRequest) origin() usecases.Location {
	if r.Origin != "" {
		return usecases.StationLocation(r.Origin)
	}
	return usecases.PointLocation(*r.OriginX, *r.OriginY)
}

func (r *routeRequest) destination() usecases.Location {
	if r.Destination != "" {
		return usecases.StationLocation(r.Destination)
	}
	return usecases.PointLocation(*r.DestinationX, *r.DestinationY)
}

// checkPoints rejects coordinates that are not finite or out of range. Query parameters are checked
// while parsing, websocket requests decode straight into the struct.
func (r *routeRequest) checkPoints() error {
	points := []struct {
		name  string
		value *float64
	}{
		{"origin_x", r.OriginX}, {"origin_y", r.OriginY},
		{"destination_x", r.DestinationX}, {"destination_y", r.DestinationY},
	}
	for _, p := range points {
		if p.value == nil {
			continue
		}
		if err := checkCoordinate(p.name, *p.value); err != nil {
			return err
		}
	}
	return nil
}

type pathCostRequest struct {
	Topology  string   `json:"topology" validate:"omitempty,max=16"`
	Stations  []string `json:"stations" validate:"required,min=1,dive,required,max=128"`
	TimeOfDay string   `json:"time_of_day" validate:"omitempty,max=32"`
}

type nearestStationsRequest struct {
	Topology string  `validate:"omitempty,max=16"`
	X        float64 `validate:"min=-1000000,max=1000000"`
	Y        float64 `validate:"min=-1000000,max=1000000"`
	Radius   float64 `validate:"min=0"`
}

func timeOfDayOrDefault(s string) pkg.TimeOfDay {
	if s == "" {
		return pkg.OFF_PEAK
	}
	return pkg.TimeOfDay(s)
}

// nullableCost maps an unreachable cost to a JSON null.
func nullableCost(cost float64) *float64 {
	if pkg.IsInf(cost) {
		return nil
	}
	return &cost
}

type snapResponse struct {
	Station string `json:"station"`
	geo.Coordinate
	Distance float64 `json:"distance"`
}

func newSnapResponse(sd *spatialindex.StationDistance) *snapResponse {
	if sd == nil {
		return nil
	}
	return &snapResponse{
		Station:    sd.GetName(),
		Coordinate: geo.NewCoordinateFromPoint(sd.GetPoint()),
		Distance:   sd.Distance,
	}
}

type routeResponse struct {
	Topology       string             `json:"topology"`
	Algorithm      string             `json:"algorithm"`
	TimeOfDay      string             `json:"time_of_day"`
	Origin         string             `json:"origin"`
	Destination    string             `json:"destination"`
	SnappedOrigin  *snapResponse      `json:"snapped_origin,omitempty"`
	SnappedDest    *snapResponse      `json:"snapped_destination,omitempty"`
	Found          bool               `json:"found"`
	Path           []string           `json:"path"`
	Lines          []string           `json:"lines"`
	Legs           []costfunction.Leg `json:"legs"`
	CostMinutes    *float64           `json:"cost_minutes"`
	NodesExpanded  int                `json:"nodes_expanded"`
	Polyline       string             `json:"polyline,omitempty"`
	StraightLength float64            `json:"straight_line_length"`
	Cached         bool               `json:"cached"`
}

func NewRouteResponse(route *usecases.Route) routeResponse {
	path := route.Path
	if path == nil {
		path = []string{}
	}
	lines := route.Lines
	if lines == nil {
		lines = []string{}
	}
	return routeResponse{
		Topology:       route.Topology.String(),
		Algorithm:      route.Algorithm.String(),
		TimeOfDay:      string(route.TimeOfDay),
		Origin:         route.Origin,
		Destination:    route.Destination,
		SnappedOrigin:  newSnapResponse(route.OriginSnap),
		SnappedDest:    newSnapResponse(route.DestinationSnap),
		Found:          route.Found,
		Path:           path,
		Lines:          lines,
		Legs:           route.Legs,
		CostMinutes:    nullableCost(route.Cost),
		NodesExpanded:  route.NodesExpanded,
		Polyline:       route.Polyline,
		StraightLength: route.Length,
		Cached:         route.Cached,
	}
}

type compareRoutesResponse struct {
	Routes []routeResponse `json:"routes"`
}

func NewCompareRoutesResponse(routes []*usecases.Route) compareRoutesResponse {
	resp := compareRoutesResponse{Routes: make([]routeResponse, 0, len(routes))}
	for _, r := range routes {
		resp.Routes = append(resp.Routes, NewRouteResponse(r))
	}
	return resp
}

type pathCostResponse struct {
	Topology    string             `json:"topology"`
	Stations    []string           `json:"stations"`
	Reachable   bool               `json:"reachable"`
	CostMinutes *float64           `json:"cost_minutes"`
	Legs        []costfunction.Leg `json:"legs"`
}

func NewPathCostResponse(res *usecases.PathCostResult) pathCostResponse {
	legs := res.Legs
	if legs == nil {
		legs = []costfunction.Leg{}
	}
	return pathCostResponse{
		Topology:    res.Topology.String(),
		Stations:    res.Stations,
		Reachable:   res.Reachable,
		CostMinutes: nullableCost(res.Cost),
		Legs:        legs,
	}
}

type stationResponse struct {
	Name      string   `json:"name"`
	X         *float64 `json:"x"`
	Y         *float64 `json:"y"`
	Lines     []string `json:"lines"`
	OutDegree int      `json:"out_degree"`
}

func NewStationsResponse(stations []usecases.StationInfo) []stationResponse {
	resp := make([]stationResponse, 0, len(stations))
	for _, s := range stations {
		sr := stationResponse{Name: s.Name, Lines: s.Lines, OutDegree: s.OutDegree}
		if s.HasCoordinate {
			x, y := s.X, s.Y
			sr.X, sr.Y = &x, &y
		}
		resp = append(resp, sr)
	}
	return resp
}

type nearbyStationResponse struct {
	Name string `json:"name"`
	geo.Coordinate
	Distance float64 `json:"distance"`
}

func NewNearestStationsResponse(sds []spatialindex.StationDistance) []nearbyStationResponse {
	resp := make([]nearbyStationResponse, 0, len(sds))
	for _, sd := range sds {
		resp = append(resp, nearbyStationResponse{
			Name:       sd.GetName(),
			Coordinate: geo.NewCoordinateFromPoint(sd.GetPoint()),
			Distance:   sd.Distance,
		})
	}
	return resp
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
