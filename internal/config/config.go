package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	// APIKeyEnv names the FoodData Central credential.
	APIKeyEnv = "FDC_API_KEY"
	// EnvFile is the dotenv file read at startup.
	EnvFile = ".env"

	defaultPort          = "5000"
	defaultFDCTimeout    = 10 * time.Second
	defaultMaxImageBytes = 5 << 20
	defaultLogLevel      = "info"
)

// Config holds everything the service reads from its environment.
type Config struct {
	Port          string
	FDCAPIKey     string
	FDCBaseURL    string
	FDCTimeout    time.Duration
	Classifier    string
	AWSRegion     string
	MaxImageBytes int64
	LogLevel      string
}

// Load reads EnvFile if present, then builds a Config from the environment.
// A missing API key is not an error here: the lookup path reports it per request.
func Load() (Config, error) {
	if err := godotenv.Load(EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", EnvFile, err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (Config, error) {
	cfg := Config{
		Port:          env("PORT", defaultPort),
		FDCAPIKey:     os.Getenv(APIKeyEnv),
		FDCBaseURL:    os.Getenv("FDC_BASE_URL"),
		FDCTimeout:    defaultFDCTimeout,
		Classifier:    os.Getenv("CLASSIFIER"),
		AWSRegion:     os.Getenv("AWS_REGION"),
		MaxImageBytes: defaultMaxImageBytes,
		LogLevel:      env("LOG_LEVEL", defaultLogLevel),
	}

	if t := os.Getenv("FDC_TIMEOUT"); t != "" {
		d, err := time.ParseDuration(t)
		if err != nil {
			return Config{}, fmt.Errorf("invalid FDC_TIMEOUT: %w", err)
		}
		cfg.FDCTimeout = d
	}

	if m := os.Getenv("MAX_IMAGE_BYTES"); m != "" {
		v, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid MAX_IMAGE_BYTES: %w", err)
		}
		if v <= 0 {
			return Config{}, fmt.Errorf("invalid MAX_IMAGE_BYTES: must be positive, got %d", v)
		}
		cfg.MaxImageBytes = v
	}

	switch cfg.Classifier {
	case "", "rekognition":
	default:
		return Config{}, fmt.Errorf("invalid CLASSIFIER %q: want \"rekognition\" or empty", cfg.Classifier)
	}

	return cfg, nil
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
