package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/mwhite7112/woodpantry-nutrition/internal/api"
	"github.com/mwhite7112/woodpantry-nutrition/internal/classifier"
	"github.com/mwhite7112/woodpantry-nutrition/internal/config"
	"github.com/mwhite7112/woodpantry-nutrition/internal/fdc"
	"github.com/mwhite7112/woodpantry-nutrition/internal/logging"
	"github.com/mwhite7112/woodpantry-nutrition/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup("info")
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	if cfg.FDCAPIKey == "" {
		slog.Warn(config.APIKeyEnv + " is not set; nutrition lookups will report a configuration error")
	}

	var cls classifier.Classifier
	if cfg.Classifier == "rekognition" {
		rek, err := classifier.NewRekognitionFromEnv(context.Background(), cfg.AWSRegion)
		if err != nil {
			slog.Error("failed to set up rekognition classifier", "error", err)
			os.Exit(1)
		}
		cls = rek
	}

	fdcClient := fdc.NewClient(cfg.FDCBaseURL, cfg.FDCAPIKey, cfg.FDCTimeout)
	svc := service.New(fdcClient, cfg.FDCAPIKey, cls)
	handler := api.NewRouter(svc, cfg.MaxImageBytes)

	addr := fmt.Sprintf(":%s", cfg.Port)
	slog.Info("nutrition service listening", "addr", addr, "classifier", cfg.Classifier != "")
	if err := http.ListenAndServe(addr, handler); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
