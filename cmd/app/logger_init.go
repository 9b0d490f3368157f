package main

import (
	"github.com/kestrelgames/armory/internal/config"
	"github.com/kestrelgames/armory/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	// Include source info only outside prod
	addSource := cfg.Environment != logger.EnvironmentProduction

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		logger.DefaultServiceName,
		logger.DefaultVersion,
		cfg.Environment,
		addSource,
	)

	logger.Init(loggerConfig)
}
