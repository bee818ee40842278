// Package logging собирает zap-логгер из настроек хоста.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"space-fighter/internal/config"
)

// New создаёт логгер, пишущий в stderr.
func New(cfg config.LogSettings) (*zap.Logger, error) {
	return buildConfig(cfg).Build(zap.AddCaller())
}

// NewFileLogger пишет в файл: терминальный хост занимает экран целиком.
func NewFileLogger(cfg config.LogSettings, path string) (*zap.Logger, error) {
	zapConfig := buildConfig(cfg)
	zapConfig.OutputPaths = []string{path}
	zapConfig.ErrorOutputPaths = []string{path}
	zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapConfig.Build(zap.AddCaller())
}

// buildConfig переводит настройки в zap.Config. Неизвестный уровень трактуется как info.
func buildConfig(cfg config.LogSettings) zap.Config {
	var zapConfig zap.Config
	if cfg.Development {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapConfig = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)

	if cfg.Format == "json" {
		zapConfig.Encoding = "json"
		zapConfig.EncoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
	} else {
		zapConfig.Encoding = "console"
	}
	return zapConfig
}
