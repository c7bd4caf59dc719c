package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

const envPrefix = "BENCHMARK"

type Config struct {
	Iterations  int
	Executable  string
	InputDir    string
	Strategy    Strategy
	Spread      bool
	Warmup      int
	ClearCaches bool
	Results     string
	Report      string
	LogLevel    string
}

func StringEnv(key string, def string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	return value
}

// NewViper reads BENCHMARK_* variables. LOG_LEVEL is shared with the logger
// and has no prefix.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetDefault("n_iter", 10)
	v.SetDefault("executable", "build/Release/nonogram")
	v.SetDefault("input_dir", "test_data")
	v.SetDefault("strategy", "self")
	v.SetDefault("warmup", 0)
	v.SetDefault("clear_caches", false)
	v.SetDefault("results", "")
	v.SetDefault("report", "")
	_ = v.BindEnv("log_level", "LOG_LEVEL")
	v.SetDefault("log_level", "INFO")
	return v
}

func LoadConfig(v *viper.Viper) (Config, error) {
	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config %v: %w", file, err)
		}
	}

	strategy, err := ParseStrategy(v.GetString("strategy"))
	if err != nil {
		return Config{}, err
	}
	config := Config{
		Iterations:  v.GetInt("n_iter"),
		Executable:  v.GetString("executable"),
		InputDir:    v.GetString("input_dir"),
		Strategy:    strategy,
		Spread:      strategy == StrategySelfReported,
		Warmup:      v.GetInt("warmup"),
		ClearCaches: v.GetBool("clear_caches"),
		Results:     v.GetString("results"),
		Report:      v.GetString("report"),
		LogLevel:    v.GetString("log_level"),
	}
	if v.IsSet("spread") {
		config.Spread = v.GetBool("spread")
	}
	if config.Iterations < 1 {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidIterations, config.Iterations)
	}
	if config.Warmup < 0 {
		return Config{}, fmt.Errorf("warmup must not be negative: %v", config.Warmup)
	}
	return config, nil
}
