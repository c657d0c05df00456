package http

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	http_router "github.com/lintang-b-s/metroplanner/pkg/http/router"
	"github.com/lintang-b-s/metroplanner/pkg/http/router/controllers"
	http_server "github.com/lintang-b-s/metroplanner/pkg/http/server"
	"github.com/lintang-b-s/metroplanner/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	Log *zap.Logger
	g   *errgroup.Group
}

func NewServer(log *zap.Logger) *Server {
	return &Server{Log: log, g: &errgroup.Group{}}
}

// Use starts the API in the background. It stops when ctx is cancelled, Wait returns its error.
func (s *Server) Use(
	ctx context.Context,
	log *zap.Logger,

	useRateLimit bool,
	routingService controllers.RoutingService,
	metric *metrics.Metric,
	gatherer prometheus.Gatherer,
) (*Server, error) {
	config := http_server.Config{
		Port:    viper.GetInt("API_PORT"),
		Timeout: viper.GetDuration("API_TIMEOUT"),
	}

	server := http_router.NewAPI(log, metric, gatherer)

	s.g.Go(func() error {
		return server.Run(
			ctx, config,
			useRateLimit, routingService,
		)
	})

	return s, nil
}

func (s *Server) Wait() error {
	return s.g.Wait()
}

// WaitForShutdown blocks until the process receives SIGINT or SIGTERM or the API stops on its own.
// The signal is nil when the API stopped first, the error is then the one Wait would return.
func (s *Server) WaitForShutdown() (os.Signal, error) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	stopped := make(chan error, 1)
	go func() {
		stopped <- s.g.Wait()
	}()

	select {
	case sig := <-quit:
		return sig, nil
	case err := <-stopped:
		return nil, err
	}
}
