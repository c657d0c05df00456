package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/julienschmidt/httprouter"
	"github.com/lintang-b-s/metroplanner/pkg"
	helper "github.com/lintang-b-s/metroplanner/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

type routingAPI struct {
	errorResponder
	routingService RoutingService
	validator      *requestValidator
	log            *zap.Logger
}

func New(routingService RoutingService, log *zap.Logger) *routingAPI {
	return &routingAPI{
		errorResponder: errorResponder{log: log},
		routingService: routingService,
		validator:      newRequestValidator(),
		log:            log,
	}
}

func (api *routingAPI) Routes(group *helper.RouteGroup) {
	group.GET("/computeRoutes", api.computeRoutes)
	group.GET("/compareRoutes", api.compareRoutes)
	group.POST("/pathCost", api.pathCost)
	group.GET("/stations", api.stations)
	group.GET("/nearestStations", api.nearestStations)
}

func parseRouteRequest(query url.Values) (routeRequest, error) {
	var (
		request routeRequest
		err     error
	)
	request.Topology = query.Get("topology")
	request.Algorithm = query.Get("algorithm")
	request.Origin = query.Get("origin")
	request.Destination = query.Get("destination")
	request.TimeOfDay = query.Get("time_of_day")

	if request.OriginX, err = optionalFloat(query.Get("origin_x"), "origin_x"); err != nil {
		return request, err
	}
	if request.OriginY, err = optionalFloat(query.Get("origin_y"), "origin_y"); err != nil {
		return request, err
	}
	if request.DestinationX, err = optionalFloat(query.Get("destination_x"), "destination_x"); err != nil {
		return request, err
	}
	if request.DestinationY, err = optionalFloat(query.Get("destination_y"), "destination_y"); err != nil {
		return request, err
	}
	return request, nil
}

// computeRoutes runs one search. origin and destination are station names, or origin_x/origin_y and
// destination_x/destination_y points that are snapped to the nearest station.
func (api *routingAPI) computeRoutes(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	request, err := parseRouteRequest(r.URL.Query())
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := api.validator.Struct(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if request.Algorithm == "" {
		api.BadRequestResponse(w, r, errors.New("algorithm is required"))
		return
	}

	topology, err := pkg.ParseTopology(request.Topology)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	algorithm, err := pkg.ParseAlgorithm(request.Algorithm)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	route, err := api.routingService.ComputeRoute(topology, algorithm, request.origin(), request.destination(),
		timeOfDayOrDefault(request.TimeOfDay))
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := writeJSON(w, http.StatusOK, envelope{"data": NewRouteResponse(route)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *routingAPI) compareRoutes(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	request, err := parseRouteRequest(r.URL.Query())
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := api.validator.Struct(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	topology, err := pkg.ParseTopology(request.Topology)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	routes, err := api.routingService.CompareRoutes(topology, request.origin(), request.destination(),
		timeOfDayOrDefault(request.TimeOfDay))
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := writeJSON(w, http.StatusOK, envelope{"data": NewCompareRoutesResponse(routes)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *routingAPI) pathCost(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request pathCostRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := r.Body.Close(); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
	if err := api.validator.Struct(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	topology, err := pkg.ParseTopology(request.Topology)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	res, err := api.routingService.PathCost(topology, request.Stations, timeOfDayOrDefault(request.TimeOfDay))
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, envelope{"data": NewPathCostResponse(res)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *routingAPI) stations(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	topology, err := pkg.ParseTopology(r.URL.Query().Get("topology"))
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	stations, err := api.routingService.Stations(topology)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, envelope{"data": NewStationsResponse(stations)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *routingAPI) nearestStations(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request nearestStationsRequest
		err     error
	)
	query := r.URL.Query()
	request.Topology = query.Get("topology")

	if request.X, err = parseCoordinate(query.Get("x"), "x"); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if request.Y, err = parseCoordinate(query.Get("y"), "y"); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if radius := query.Get("radius"); radius != "" {
		if request.Radius, err = parseCoordinate(radius, "radius"); err != nil {
			api.BadRequestResponse(w, r, err)
			return
		}
	}
	if err := api.validator.Struct(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	topology, err := pkg.ParseTopology(request.Topology)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	nearest, err := api.routingService.NearestStations(topology, request.X, request.Y, request.Radius)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, envelope{"data": NewNearestStationsResponse(nearest)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
