package config

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the process-wide application logger. Request access logs
// are handled separately by the Fiber logger middleware.
var Logger *zap.SugaredLogger

// InitLogger builds a two-core zap logger: JSON to a rotating file,
// console encoding to stderr.
func InitLogger(logFile string) error {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(&lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    100, // MB
			MaxBackups: 10,
			MaxAge:     30, // days
		}),
		zap.InfoLevel,
	)

	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stderr),
		zap.InfoLevel,
	)

	Logger = zap.New(zapcore.NewTee(fileCore, consoleCore), zap.AddCaller()).Sugar()
	return nil
}

func init() {
	// A usable logger before InitLogger runs, so packages can log during
	// startup and tests without configuration.
	Logger = zap.NewNop().Sugar()
}
