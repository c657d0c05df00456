package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lintang-b-s/metroplanner/pkg"
	"github.com/lintang-b-s/metroplanner/pkg/costfunction"
	"github.com/lintang-b-s/metroplanner/pkg/dataset"
	"github.com/lintang-b-s/metroplanner/pkg/engine"
	"github.com/lintang-b-s/metroplanner/pkg/evaluation"
	"github.com/lintang-b-s/metroplanner/pkg/logger"
	"github.com/lintang-b-s/metroplanner/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	configDir     = flag.String("config_dir", "./data/", "directory holding config.yaml")
	timeOfDay     = flag.String("time_of_day", string(pkg.OFF_PEAK), "time of day category: peak, off_peak or disrupted")
	numWorkers    = flag.Int("workers", 1, "number of concurrent searches, more than 1 skews the measured times")
	averagesCSV   = flag.String("averages_csv", "", "write averages over the today and future pairs combined to this csv file")
	comparisonCSV = flag.String("comparison_csv", "", "write per query today vs future deltas to this csv file")
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

	tod := pkg.TimeOfDay(*timeOfDay)
	runner := evaluation.NewRunner(routingEngine, *numWorkers, logger)

	todayRecords, err := runner.Run(pkg.TODAY, dataset.TodayODPairs(), tod)
	if err != nil {
		logger.Fatal("today evaluation failed", zap.Error(err))
	}
	futureRecords, err := runner.Run(pkg.FUTURE, dataset.FutureODPairs(), tod)
	if err != nil {
		logger.Fatal("future evaluation failed", zap.Error(err))
	}

	todayAvgs := evaluation.Averages(todayRecords)
	futureAvgs := evaluation.Averages(futureRecords)
	if err := evaluation.PrintSummary(os.Stdout, fmt.Sprintf("TODAY NETWORK (%s)", tod), todayAvgs); err != nil {
		logger.Fatal("failed to print summary", zap.Error(err))
	}
	if err := evaluation.PrintSummary(os.Stdout, fmt.Sprintf("FUTURE NETWORK (%s)", tod), futureAvgs); err != nil {
		logger.Fatal("failed to print summary", zap.Error(err))
	}

	combinedAvgs := evaluation.CombinedAverages(todayRecords, futureRecords)
	if err := evaluation.PrintSummary(os.Stdout, fmt.Sprintf("COMBINED, ALL PAIRS (%s)", tod), combinedAvgs); err != nil {
		logger.Fatal("failed to print summary", zap.Error(err))
	}

	if *averagesCSV != "" {
		if err := writeFile(*averagesCSV, func(f *os.File) error {
			return evaluation.WriteAveragesCSV(f, combinedAvgs)
		}); err != nil {
			logger.Fatal("failed to write averages csv", zap.Error(err))
		}
		logger.Info("wrote averages", zap.String("file", *averagesCSV))
	}

	if *comparisonCSV != "" {
		sharedToday, err := runner.Run(pkg.TODAY, dataset.SharedODPairs(), tod)
		if err != nil {
			logger.Fatal("shared today evaluation failed", zap.Error(err))
		}
		sharedFuture, err := runner.Run(pkg.FUTURE, dataset.SharedODPairs(), tod)
		if err != nil {
			logger.Fatal("shared future evaluation failed", zap.Error(err))
		}
		comparisons := evaluation.Compare(sharedToday, sharedFuture)
		if err := writeFile(*comparisonCSV, func(f *os.File) error {
			return evaluation.WriteComparisonCSV(f, comparisons)
		}); err != nil {
			logger.Fatal("failed to write comparison csv", zap.Error(err))
		}
		logger.Info("wrote comparison", zap.String("file", *comparisonCSV), zap.Int("rows", len(comparisons)))
	}
}

func writeFile(name string, write func(f *os.File) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
