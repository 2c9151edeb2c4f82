package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable FromEnv reads so host settings don't leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", APIKeyEnv, "FDC_BASE_URL", "FDC_TIMEOUT", "CLASSIFIER",
		"AWS_REGION", "MAX_IMAGE_BYTES", "LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "5000", cfg.Port)
	assert.Empty(t, cfg.FDCAPIKey)
	assert.Empty(t, cfg.FDCBaseURL)
	assert.Equal(t, 10*time.Second, cfg.FDCTimeout)
	assert.Empty(t, cfg.Classifier)
	assert.Equal(t, int64(5<<20), cfg.MaxImageBytes)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8081")
	t.Setenv(APIKeyEnv, "secret")
	t.Setenv("FDC_BASE_URL", "http://fdc.local")
	t.Setenv("FDC_TIMEOUT", "3s")
	t.Setenv("CLASSIFIER", "rekognition")
	t.Setenv("AWS_REGION", "us-east-1")
	t.Setenv("MAX_IMAGE_BYTES", "1024")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Config{
		Port:          "8081",
		FDCAPIKey:     "secret",
		FDCBaseURL:    "http://fdc.local",
		FDCTimeout:    3 * time.Second,
		Classifier:    "rekognition",
		AWSRegion:     "us-east-1",
		MaxImageBytes: 1024,
		LogLevel:      "debug",
	}, cfg)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad timeout", key: "FDC_TIMEOUT", value: "soon"},
		{name: "non-numeric image limit", key: "MAX_IMAGE_BYTES", value: "big"},
		{name: "zero image limit", key: "MAX_IMAGE_BYTES", value: "0"},
		{name: "unknown classifier", key: "CLASSIFIER", value: "onnx"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)

			_, err := FromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.key)
		})
	}
}

func TestLoad_MissingEnvFileIsNotAnError(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.FDCAPIKey)
}

func TestLoad_ReadsEnvFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv(APIKeyEnv) //nolint:errcheck // godotenv won't override a set variable
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, EnvFile), []byte("FDC_API_KEY=from-file\n"), 0o600))
	t.Chdir(dir)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.FDCAPIKey)
}
