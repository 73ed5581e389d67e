package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Level string
	File  string
}

// New builds a JSON file logger. The terminal belongs to the UI, so logs
// never go to stdout; an empty file path disables logging entirely.
func New(cfg Config) (*zap.Logger, error) {
	if cfg.File == "" {
		return zap.NewNop(), nil
	}

	level := zapcore.InfoLevel
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "warn", "warning":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	case "info", "":
		level = zapcore.InfoLevel
	}

	f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(f),
		level,
	)

	return zap.New(core, zap.AddCaller()), nil
}
