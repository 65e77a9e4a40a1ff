package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewZap builds a sugared zap logger. Development mode gets the console
// encoder at debug level; otherwise production JSON at level.
func NewZap(develop bool, level string) (*zap.SugaredLogger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if develop {
		logger, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		if lvl, e := zapcore.ParseLevel(level); e == nil {
			cfg.Level = zap.NewAtomicLevelAt(lvl)
		}
		logger, err = cfg.Build()
	}
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
