// Package main is the scene viewer entry point: the scene renders into an
// offscreen framebuffer shown inside an imgui viewport, with light and
// scene controls in a side panel.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/solhaug/sceneview/internal/app"
	"github.com/solhaug/sceneview/internal/config"
	"github.com/solhaug/sceneview/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Scene Viewer ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to start", zap.Error(err))
		os.Exit(1)
	}
	defer a.Destroy()

	a.Run()
	logger.Info("viewer closed normally")
}
