// Package logging builds the file logger. The terminal belongs to the UI,
// so log output never goes to stdout.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New returns a JSON logger writing to a rotated file at path. An empty path
// disables logging.
func New(path string, debug bool) *zap.Logger {
	if path == "" {
		return zap.NewNop()
	}
	rotator := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     14, // days
	}
	return newWithSyncer(zapcore.AddSync(rotator), debug)
}

func newWithSyncer(ws zapcore.WriteSyncer, debug bool) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), ws, level)
	return zap.New(core, zap.AddCaller())
}
