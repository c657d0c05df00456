package main

import (
	"flag"
	"path/filepath"

	"github.com/lintang-b-s/metroplanner/pkg"
	"github.com/lintang-b-s/metroplanner/pkg/dataset"
	"github.com/lintang-b-s/metroplanner/pkg/logger"
	"go.uber.org/zap"
)

var (
	outDir = flag.String("out_dir", "./data/", "directory the network files are written to")
)

// writes the built-in networks as bzip2 network files that the engine can load
func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	coords := dataset.Coordinates()
	for _, topology := range []pkg.Topology{pkg.TODAY, pkg.FUTURE} {
		network, err := dataset.Network(topology)
		if err != nil {
			logger.Fatal("failed to build network", zap.Error(err))
		}
		filename := filepath.Join(*outDir, topology.String()+".net.bz2")
		if err := network.WriteNetworkWithCoordinates(filename, coords); err != nil {
			logger.Fatal("failed to write network", zap.String("file", filename), zap.Error(err))
		}
		logger.Info("wrote network", zap.String("topology", topology.String()), zap.String("file", filename),
			zap.Int("stations", network.NumberOfStations()))
	}
}
