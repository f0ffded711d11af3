package config

import (
	"os"
	"strconv"

	"golens/domain/core"
)

// Config represents the complete application configuration
type Config struct {
	Likelihood LikelihoodConfig
	Cosmology  CosmologyConfig
	Log        LogConfig
}

// LikelihoodConfig holds marginalization settings
type LikelihoodConfig struct {
	NumDraws        int    // Monte Carlo draws per evaluation
	Seed            uint64 // base seed for all random streams
	ParallelWorkers int    // workers for the chunked Monte Carlo path
}

// CosmologyConfig holds the fiducial cosmology used by the CLI
type CosmologyConfig struct {
	H0     float64
	OmegaM float64
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string // ERROR, WARN, INFO or DEBUG
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Likelihood: LikelihoodConfig{
			NumDraws:        getEnvIntOrDefault("GOLENS_NUM_DRAWS", 50),
			Seed:            getEnvUintOrDefault("GOLENS_SEED", 42),
			ParallelWorkers: getEnvIntOrDefault("GOLENS_PARALLEL_WORKERS", 1),
		},
		Cosmology: CosmologyConfig{
			H0:     getEnvFloatOrDefault("GOLENS_H0", 70),
			OmegaM: getEnvFloatOrDefault("GOLENS_OMEGA_M", 0.3),
		},
		Log: LogConfig{
			Level: getEnvStringOrDefault("GOLENS_LOG_LEVEL", "INFO"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Likelihood.NumDraws < 0 {
		return core.ErrNoDraws
	}
	if config.Likelihood.ParallelWorkers < 1 {
		config.Likelihood.ParallelWorkers = 1
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvStringOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvUintOrDefault(key string, defaultValue uint64) uint64 {
	if value := os.Getenv(key); value != "" {
		if uintValue, err := strconv.ParseUint(value, 10, 64); err == nil {
			return uintValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
