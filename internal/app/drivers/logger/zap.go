package logger

import (
	"log"
	"meeting-scheduler-service/internal/app/config"
	"meeting-scheduler-service/internal/pkg/constvars"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "meeting-scheduler-service"

func NewZapLogger(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *zap.Logger {
	logLevel, err := zapcore.ParseLevel(driverConfig.Logger.Level)
	if err != nil {
		log.Printf("Unknown LOGGER_LEVEL %q, using info", driverConfig.Logger.Level)
		logLevel = zapcore.InfoLevel
	}

	isProduction := internalConfig.App.Env == constvars.AppEnvProduction

	cfg := zap.NewDevelopmentConfig()
	if isProduction {
		cfg = zap.NewProductionConfig()
		cfg.OutputPaths = []string{driverConfig.Logger.OutputFileName}
		cfg.ErrorOutputPaths = []string{"stderr", driverConfig.Logger.OutputErrorFileName}
	}
	cfg.Level = zap.NewAtomicLevelAt(logLevel)
	cfg.Encoding = "json"
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.MessageKey = "msg"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
	cfg.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder

	zapLogger, err := cfg.Build(zap.Fields(
		zap.String("service", serviceName),
		zap.String("env", internalConfig.App.Env),
		zap.String("version", internalConfig.App.Version),
	))
	if err != nil {
		log.Fatalf("Error while initializing zap logger: %v", err)
	}
	return zapLogger
}
