package logger

import (
	"fmt"

	"github.com/GlebRadaev/gridbill/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	serviceName = "gridbill"
	timeLayout  = "15:04:05 02-01-2006"
)

var logLvlMap = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

// Config builds the zap configuration for conf. Console output is colored
// for local runs; json output is meant for log shippers and uses ISO8601 time.
func Config(conf *config.Config) (zap.Config, error) {
	lvl, ok := logLvlMap[conf.LogLvl]
	if !ok {
		return zap.Config{}, fmt.Errorf("unsupported log lvl: %s", conf.LogLvl)
	}

	encoder := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	switch conf.LogFormat {
	case "", "console":
		encoder.EncodeTime = zapcore.TimeEncoderOfLayout(timeLayout)
		encoder.EncodeLevel = zapcore.CapitalColorLevelEncoder
	case "json":
		encoder.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder.EncodeLevel = zapcore.LowercaseLevelEncoder
		encoder.StacktraceKey = "stacktrace"
	default:
		return zap.Config{}, fmt.Errorf("unsupported log format: %s", conf.LogFormat)
	}
	encoding := conf.LogFormat
	if encoding == "" {
		encoding = "console"
	}

	return zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Encoding:         encoding,
		EncoderConfig:    encoder,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		InitialFields:    map[string]any{"service": serviceName},
	}, nil
}

// InitLogger replaces the global zap logger. Every package logs through zap.L().
func InitLogger(conf *config.Config) error {
	c, err := Config(conf)
	if err != nil {
		return err
	}

	logger, err := c.Build()
	if err != nil {
		return fmt.Errorf("unable to create zap logger, error: %w", err)
	}

	zap.ReplaceGlobals(logger)

	return nil
}
