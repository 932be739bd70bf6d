package logger

import (
	"sync"

	"storefront-service/pkg/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu       sync.Mutex
	instance *zap.Logger
)

// InitLogger initializes the logger with configuration
func InitLogger(cfg *config.Config) error {
	var level zapcore.Level
	switch cfg.Log.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var (
		log *zap.Logger
		err error
	)
	if cfg.Server.Env == "production" {
		prodConfig := zap.NewProductionConfig()
		prodConfig.Level = zap.NewAtomicLevelAt(level)
		prodConfig.EncoderConfig.TimeKey = "timestamp"
		prodConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

		log, err = prodConfig.Build(zap.Fields(
			cfg.LogConfig()...,
		))
	} else {
		// Development logger configuration with colors and human-friendly output
		devConfig := zap.NewDevelopmentConfig()
		devConfig.Level = zap.NewAtomicLevelAt(level)
		devConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

		log, err = devConfig.Build(zap.Fields(
			cfg.LogConfig()...,
		))
	}
	if err != nil {
		return err
	}

	mu.Lock()
	instance = log
	mu.Unlock()

	zap.ReplaceGlobals(log)
	return nil
}

// GetLogger returns the global logger instance, building a default production
// logger if InitLogger was never called.
func GetLogger() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	if instance == nil {
		cfg := zap.NewProductionConfig()
		cfg.OutputPaths = []string{"stdout"}
		log, err := cfg.Build()
		if err != nil {
			panic(err)
		}
		instance = log
	}
	return instance
}
