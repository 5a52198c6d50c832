package logger

import (
	"strings"

	"go.uber.org/zap"
)

var sugar *zap.SugaredLogger

// Init builds the process-wide logger. Mode is read from ENV ("prod" for
// JSON output, anything else for the development console encoder).
func Init(mode string) error {
	var cfg zap.Config

	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}

	zapLogger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}

	sugar = zapLogger.Sugar()
	return nil
}

func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}

func ensure() *zap.SugaredLogger {
	if sugar == nil {
		sugar = zap.NewNop().Sugar()
	}
	return sugar
}

func Debug(msg string, keysAndValues ...interface{}) {
	ensure().Debugw(msg, keysAndValues...)
}

func Info(msg string, keysAndValues ...interface{}) {
	ensure().Infow(msg, keysAndValues...)
}

func Warn(msg string, keysAndValues ...interface{}) {
	ensure().Warnw(msg, keysAndValues...)
}

func Error(msg string, keysAndValues ...interface{}) {
	ensure().Errorw(msg, keysAndValues...)
}

func Fatal(msg string, keysAndValues ...interface{}) {
	ensure().Fatalw(msg, keysAndValues...)
}
