package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

type config struct {
	Addr            string
	Env             string
	LogLevel        zerolog.Level
	CORSOrigins     []string
	RateLimitRPS    float64
	RateLimitBurst  int
	MaxBodyBytes    int64
	ShutdownTimeout time.Duration
	EnableHSTS      bool
	TrustProxy      bool
}

func loadEnvFiles() {
	// Do not override environment provided by the runtime (e.g. Docker).
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// loadConfig reads the process environment. Every malformed value is
// reported, not just the first.
func loadConfig() (config, error) {
	var errs []error

	cfg := config{
		Addr:        getEnv("APP_ADDR", "localhost:9000"),
		Env:         getEnv("APP_ENV", "development"),
		CORSOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}

	level, err := zerolog.ParseLevel(strings.ToLower(getEnv("LOG_LEVEL", "info")))
	if err != nil {
		errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
	}
	cfg.LogLevel = level

	cfg.RateLimitRPS, err = strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "20"), 64)
	if err != nil || cfg.RateLimitRPS <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_RPS: must be a positive number"))
	}

	cfg.RateLimitBurst, err = strconv.Atoi(getEnv("RATE_LIMIT_BURST", "40"))
	if err != nil || cfg.RateLimitBurst <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_BURST: must be a positive integer"))
	}

	cfg.MaxBodyBytes, err = strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64)
	if err != nil || cfg.MaxBodyBytes <= 0 {
		errs = append(errs, errors.New("MAX_BODY_BYTES: must be a positive integer"))
	}

	cfg.ShutdownTimeout, err = time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		errs = append(errs, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err))
	}

	cfg.EnableHSTS, err = strconv.ParseBool(getEnv("ENABLE_HSTS", "false"))
	if err != nil {
		errs = append(errs, fmt.Errorf("ENABLE_HSTS: %w", err))
	}

	cfg.TrustProxy, err = strconv.ParseBool(getEnv("TRUST_PROXY", "false"))
	if err != nil {
		errs = append(errs, fmt.Errorf("TRUST_PROXY: %w", err))
	}

	return cfg, errors.Join(errs...)
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
