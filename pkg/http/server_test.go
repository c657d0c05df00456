package http

import (
	"context"
	"net"
	"os"
	"testing"
	"time"

	"github.com/lintang-b-s/metroplanner/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type shutdownResult struct {
	sig os.Signal
	err error
}

func waitForShutdown(t *testing.T, s *Server) shutdownResult {
	t.Helper()
	done := make(chan shutdownResult, 1)
	go func() {
		sig, err := s.WaitForShutdown()
		done <- shutdownResult{sig, err}
	}()
	select {
	case res := <-done:
		return res
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
		return shutdownResult{}
	}
}

func startServer(t *testing.T, ctx context.Context, port int) *Server {
	t.Helper()
	viper.Set("API_PORT", port)
	t.Cleanup(viper.Reset)

	reg := prometheus.NewRegistry()
	s := NewServer(zap.NewNop())
	_, err := s.Use(ctx, zap.NewNop(), false, nil, metrics.NewMetric(reg), reg)
	require.NoError(t, err)
	return s
}

func TestWaitForShutdownListenFails(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer ln.Close()

	s := startServer(t, context.Background(), ln.Addr().(*net.TCPAddr).Port)

	res := waitForShutdown(t, s)
	assert.Nil(t, res.sig)
	assert.Error(t, res.err)
}

func TestWaitForShutdownContextCancelled(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	ctx, cancel := context.WithCancel(context.Background())
	s := startServer(t, ctx, port)
	time.AfterFunc(50*time.Millisecond, cancel)

	res := waitForShutdown(t, s)
	assert.Nil(t, res.sig)
	assert.NoError(t, res.err)
	assert.NoError(t, s.Wait())
}
