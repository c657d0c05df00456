package router

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/lintang-b-s/metroplanner/pkg/http/router/controllers"
	router_helper "github.com/lintang-b-s/metroplanner/pkg/http/router/routerhelper"
	http_server "github.com/lintang-b-s/metroplanner/pkg/http/server"
	"github.com/lintang-b-s/metroplanner/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "net/http/pprof"
)

type API struct {
	log      *zap.Logger
	hub      *controllers.Hub
	metric   *metrics.Metric
	gatherer prometheus.Gatherer
	limiter  *rate.Limiter
}

func NewAPI(log *zap.Logger, metric *metrics.Metric, gatherer prometheus.Gatherer) *API {
	return &API{
		log:      log,
		metric:   metric,
		gatherer: gatherer,
		limiter:  rate.NewLimiter(rate.Limit(viper.GetFloat64("RATE_LIMIT_RPS")), viper.GetInt("RATE_LIMIT_BURST")),
	}
}

//	@title			metroplanner API
//	@version		1.0
//	@description	Route planning over the current and the future metro network.

//	@license.name	BSD License
//	@license.url	https://opensource.org/license/bsd-2-clause

// @host		localhost
// @BasePath	/api
func (api *API) Handler(useRateLimit bool, routingService controllers.RoutingService) http.Handler {
	router := httprouter.New()

	router.GET("/doc/*any", swaggerHandler)
	router.Handler(http.MethodGet, "/debug/pprof/*item", http.DefaultServeMux)
	router.Handler(http.MethodGet, "/metrics", promhttp.HandlerFor(api.gatherer, promhttp.HandlerOpts{}))

	api.hub = controllers.NewHub(routingService, api.log)
	router.GET("/ws", api.handleWebsocket)

	group := router_helper.NewRouteGroup(router, "/api")
	routingRoutes := controllers.New(routingService, api.log)
	routingRoutes.Routes(group)

	return api.middleware(useRateLimit).Then(router)
}

func (api *API) middleware(useRateLimit bool) alice.Chain {
	corsHandler := cors.New(cors.Options{ //nolint:gocritic // ignore
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, //nolint:mnd // ignore
	})

	mwChain := []alice.Constructor{corsHandler.Handler, middleware.Recoverer, EnforceJSONHandler,
		middleware.RealIP, middleware.Heartbeat("/healthz"), Logger(api.log), api.instrument}
	if useRateLimit {
		mwChain = append(mwChain, api.rateLimit)
	}
	return alice.New(mwChain...)
}

// Run serves the API until ctx is cancelled or the server fails.
func (api *API) Run(
	ctx context.Context,
	config http_server.Config,
	useRateLimit bool,
	routingService controllers.RoutingService,
) error {
	api.log.Info("Run httprouter API")

	srv := http_server.New(ctx, api.Handler(useRateLimit, routingService), config)
	api.log.Info(fmt.Sprintf("API run on port %d", config.Port))

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		api.hub.RemoveAllUser()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		api.log.Error("HTTP server stopped", zap.Error(err))
		return err
	case <-ctx.Done():
		api.log.Info("Context canceled, shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		api.hub.RemoveAllUser()
		return err
	}
}

func swaggerHandler(res http.ResponseWriter, req *http.Request, p httprouter.Params) {
	httpSwagger.WrapHandler(res, req)
}
