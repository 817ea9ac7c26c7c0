package config

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
)

// Config holds the runtime settings. Priority, lowest to highest:
// built-in defaults, JSON config file, command-line flags, environment.
type Config struct {
	ServerAddress string
	BaseURL       string
	GRPCAddress   string
	LogLevel      string
	DelayMinMs    int
	DelayMaxMs    int
	SuccessRate   float64
}

type jsonConfig struct {
	ServerAddress *string  `json:"server_address"`
	BaseURL       *string  `json:"base_url"`
	GRPCAddress   *string  `json:"grpc_address"`
	LogLevel      *string  `json:"log_level"`
	DelayMinMs    *int     `json:"delay_min_ms"`
	DelayMaxMs    *int     `json:"delay_max_ms"`
	SuccessRate   *float64 `json:"success_rate"`
}

// NewConfig parses flags, an optional JSON config file and environment
// variables into a Config.
func NewConfig() *Config {
	cfg := &Config{
		ServerAddress: ":8080",
		BaseURL:       "http://localhost:8080",
		GRPCAddress:   "",
		LogLevel:      "info",
		DelayMinMs:    1500,
		DelayMaxMs:    4000,
		SuccessRate:   0.8,
	}

	var configPath string
	flag.StringVar(&configPath, "c", "", "Path to JSON config file")
	flag.StringVar(&cfg.ServerAddress, "a", cfg.ServerAddress, "HTTP server address (e.g. localhost:8888)")
	flag.StringVar(&cfg.BaseURL, "b", cfg.BaseURL, "Base URL the demo page is served from")
	flag.StringVar(&cfg.GRPCAddress, "g", cfg.GRPCAddress, "gRPC debug server address (empty disables gRPC)")
	flag.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "Log level (debug, info, warn, error)")
	flag.IntVar(&cfg.DelayMinMs, "delay-min", cfg.DelayMinMs, "Minimum simulated delay in milliseconds")
	flag.IntVar(&cfg.DelayMaxMs, "delay-max", cfg.DelayMaxMs, "Maximum simulated delay in milliseconds")
	flag.Float64Var(&cfg.SuccessRate, "success-rate", cfg.SuccessRate, "Probability of a simulated success, in [0,1]")

	flag.Parse()

	setFlags := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		setFlags[f.Name] = true
	})

	if configPath == "" {
		configPath = os.Getenv("CONFIG")
	}
	if configPath != "" {
		applyJSONConfig(cfg, configPath, setFlags)
	}

	applyEnv(cfg)

	return cfg
}

// applyJSONConfig fills cfg from a JSON file. Values given explicitly on the
// command line keep priority over the file.
func applyJSONConfig(cfg *Config, path string, setFlags map[string]bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Cannot read config file, skipping")
		return
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Cannot parse config file, skipping")
		return
	}

	if jc.ServerAddress != nil && !setFlags["a"] {
		cfg.ServerAddress = *jc.ServerAddress
	}
	if jc.BaseURL != nil && !setFlags["b"] {
		cfg.BaseURL = *jc.BaseURL
	}
	if jc.GRPCAddress != nil && !setFlags["g"] {
		cfg.GRPCAddress = *jc.GRPCAddress
	}
	if jc.LogLevel != nil && !setFlags["l"] {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.DelayMinMs != nil && !setFlags["delay-min"] {
		cfg.DelayMinMs = *jc.DelayMinMs
	}
	if jc.DelayMaxMs != nil && !setFlags["delay-max"] {
		cfg.DelayMaxMs = *jc.DelayMaxMs
	}
	if jc.SuccessRate != nil && !setFlags["success-rate"] {
		cfg.SuccessRate = *jc.SuccessRate
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SERVER_ADDRESS"); v != "" {
		cfg.ServerAddress = v
	}
	if v := os.Getenv("BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("GRPC_ADDRESS"); v != "" {
		cfg.GRPCAddress = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("DELAY_MIN_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.DelayMinMs = n
		}
	}
	if v := os.Getenv("DELAY_MAX_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.DelayMaxMs = n
		}
	}
	if v := os.Getenv("SUCCESS_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.SuccessRate = f
		}
	}
}
