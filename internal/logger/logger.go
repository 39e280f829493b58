package logger

import (
	"fmt"

	"github.com/Domenick1991/flightdesk/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a development (console) or production (JSON) logger at the configured level.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	var zcfg zap.Config
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	return zcfg.Build()
}
