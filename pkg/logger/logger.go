package logger

import (
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const serviceName = "payadmin"

// Log is a no-op logger until InitLogger replaces it.
var Log = zap.NewNop()

type Config struct {
	Level string
	// Format is "json" (default) or "console" for stdout.
	Format     string
	Filename   string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

// InitLogger builds the global logger. The rotating file always gets JSON.
func InitLogger(cfg *Config) error {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return err
	}

	cores := []zapcore.Core{
		zapcore.NewCore(stdoutEncoder(cfg.Format), zapcore.Lock(os.Stdout), level),
	}
	if cfg.Filename != "" {
		cores = append(cores, zapcore.NewCore(jsonEncoder(), fileSyncer(cfg), level))
	}

	Log = zap.New(zapcore.NewTee(cores...), zap.AddCaller()).With(zap.String("service", serviceName))
	zap.ReplaceGlobals(Log)
	return nil
}

func encoderConfig() zapcore.EncoderConfig {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return encoderConfig
}

func jsonEncoder() zapcore.Encoder {
	return zapcore.NewJSONEncoder(encoderConfig())
}

func stdoutEncoder(format string) zapcore.Encoder {
	if strings.EqualFold(format, "console") {
		return zapcore.NewConsoleEncoder(encoderConfig())
	}
	return jsonEncoder()
}

// fileSyncer writes to a buffered rotating file.
func fileSyncer(cfg *Config) zapcore.WriteSyncer {
	return &zapcore.BufferedWriteSyncer{
		WS: zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}),
		Size:          256 * 1024,
		FlushInterval: 5 * time.Second,
	}
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = Log.Sync()
}
