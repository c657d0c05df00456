package util

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// ReadConfig loads config.{yaml,json,toml,...} from the given directories (./data/ when none are
// given). A missing config file is not an error: defaults and environment variables still apply.
func ReadConfig(paths ...string) error {
	viper.SetConfigName("config")
	if len(paths) == 0 {
		paths = []string{"./data/"}
	}
	for _, p := range paths {
		viper.AddConfigPath(p)
	}
	viper.AutomaticEnv()
	SetConfigDefaults()

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}

func SetConfigDefaults() {
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "10s")
	viper.SetDefault("HTTP_SERVER_READ_TIMEOUT", "5s")
	viper.SetDefault("HTTP_SERVER_WRITE_TIMEOUT", "5s")
	viper.SetDefault("HTTP_SERVER_IDLE_TIMEOUT", "60s")
	viper.SetDefault("HTTP_SERVER_READ_HEADER_TIMEOUT", "2s")
	viper.SetDefault("USE_RATE_LIMIT", false)
	viper.SetDefault("RATE_LIMIT_RPS", 50.0)
	viper.SetDefault("RATE_LIMIT_BURST", 100)

	viper.SetDefault("TRANSFER_PENALTY_MINUTES", 5.0)
	viper.SetDefault("HEURISTIC_MINUTES_PER_UNIT", 3.0)
	viper.SetDefault("CONGESTION_PEAK", 1.3)
	viper.SetDefault("CONGESTION_OFF_PEAK", 1.0)
	viper.SetDefault("CONGESTION_DISRUPTED", 1.5)

	viper.SetDefault("TODAY_NETWORK_FILE", "")
	viper.SetDefault("FUTURE_NETWORK_FILE", "")
	viper.SetDefault("SEARCH_CACHE_SIZE", 4096)
}
