package main

import (
	"context"
	"flag"

	"github.com/lintang-b-s/metroplanner/pkg"
	"github.com/lintang-b-s/metroplanner/pkg/costfunction"
	"github.com/lintang-b-s/metroplanner/pkg/engine"
	"github.com/lintang-b-s/metroplanner/pkg/http"
	"github.com/lintang-b-s/metroplanner/pkg/http/usecases"
	"github.com/lintang-b-s/metroplanner/pkg/logger"
	"github.com/lintang-b-s/metroplanner/pkg/metrics"
	"github.com/lintang-b-s/metroplanner/pkg/spatialindex"
	"github.com/lintang-b-s/metroplanner/pkg/util"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	configDir = flag.String("config_dir", "./data/", "directory holding config.yaml")
)

func main() {
	flag.Parse()
	if err := util.ReadConfig(*configDir); err != nil {
		panic(err)
	}
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	routingEngine, err := engine.NewEngine(viper.GetString("TODAY_NETWORK_FILE"), viper.GetString("FUTURE_NETWORK_FILE"),
		costfunction.ConfigFromViper(), logger)
	if err != nil {
		logger.Fatal("failed to load networks", zap.Error(err))
	}

	spatialIndices := make(map[pkg.Topology]usecases.SpatialIndex, 2)
	for _, topology := range []pkg.Topology{pkg.TODAY, pkg.FUTURE} {
		network, err := routingEngine.Network(topology)
		if err != nil {
			logger.Fatal("failed to get network", zap.Error(err))
		}
		coords, err := routingEngine.Coordinates(topology)
		if err != nil {
			logger.Fatal("failed to get coordinates", zap.Error(err))
		}
		rtree := spatialindex.NewRtree()
		rtree.Build(network, coords, logger)
		spatialIndices[topology] = rtree
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metric := metrics.NewMetric(reg)

	routingService, err := usecases.NewRoutingService(logger, routingEngine, spatialIndices,
		viper.GetInt("SEARCH_CACHE_SIZE"), metric)
	if err != nil {
		logger.Fatal("failed to create routing service", zap.Error(err))
	}

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}

	api := http.NewServer(logger)
	api.Use(ctx,
		logger, viper.GetBool("USE_RATE_LIMIT"), routingService, metric, reg)

	sig, err := api.WaitForShutdown()
	cleanup()
	if sig == nil {
		if err != nil {
			logger.Error("server stopped with error", zap.Error(err))
		}
		logger.Info("metroplanner server stopped")
		return
	}

	if err := api.Wait(); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
	}
	logger.Info("metroplanner server stopped", zap.String("signal", sig.String()))
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
