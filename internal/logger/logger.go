package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var sugar *zap.SugaredLogger

func init() {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.TimeKey = "@timestamp"
	encoderConfig.MessageKey = "msg"

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(os.Stdout),
		zap.InfoLevel,
	)

	sugar = zap.New(core, zap.AddCallerSkip(1)).Sugar()
}

// Infow logs a message with additional key-value context.
func Infow(message string, keysAndValues ...interface{}) {
	sugar.Infow(message, keysAndValues...)
}

// Infof formats the message according to the format specifier and logs it at InfoLevel.
func Infof(message string, args ...interface{}) {
	sugar.Infof(message, args...)
}

// Warnf formats the message according to the format specifier and logs it at WarnLevel.
func Warnf(message string, args ...interface{}) {
	sugar.Warnf(message, args...)
}

// Errorf formats the message according to the format specifier and logs it at ErrorLevel.
func Errorf(message string, args ...interface{}) {
	sugar.Errorf(message, args...)
}

// Fatalf formats the message and calls os.Exit(1).
func Fatalf(message string, args ...interface{}) {
	sugar.Fatalf(message, args...)
}
