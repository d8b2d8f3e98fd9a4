package common

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogOptions controls where tracker.log goes and how it rotates.
type LogOptions struct {
	Dir        string
	Level      zapcore.Level
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

var (
	logger *zap.Logger
	once   sync.Once
)

// DefaultLogOptions writes to $HEALTH_LOG_DIR, or ./logs, at info level.
func DefaultLogOptions() LogOptions {
	dir, found := os.LookupEnv(EnvKeyHealthLogDir)
	if !found || dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			log.Fatalf("Error getting current directory: %v", err)
		}
		dir = filepath.Join(wd, "logs")
	}

	return LogOptions{
		Dir:        dir,
		Level:      zapcore.InfoLevel,
		MaxSizeMB:  10,
		MaxBackups: 5,
		MaxAgeDays: 28,
	}
}

func getLogger() *zap.Logger {
	if logger == nil {
		InitLogger(DefaultLogOptions())
	}
	return logger
}

func GetLogger() *zap.Logger {
	return getLogger().Named("default")
}

func GetLoggerWith(name string, fields ...zap.Field) *zap.Logger {
	return getLogger().Named(name).With(fields...)
}

// GetCategoryLogger is the short form used by most services.
func GetCategoryLogger(name string, category string) *zap.Logger {
	return GetLoggerWith(name, zap.String(LoggerFieldCategory, category))
}

func jsonEncoder() zapcore.Encoder {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewJSONEncoder(encoderCfg)
}

// InitLogger builds the process logger. Only the first call has an effect;
// loggers handed out before it fall back to DefaultLogOptions.
func InitLogger(opts LogOptions) {
	once.Do(func() {
		if err := os.MkdirAll(opts.Dir, os.ModePerm); err != nil {
			log.Fatalf("Error find/create logs directory %s: %v", opts.Dir, err)
		}

		rotating := &lumberjack.Logger{
			Filename:   fmt.Sprintf("%s/tracker.log", opts.Dir),
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   true,
		}
		fileCore := zapcore.NewCore(jsonEncoder(), zapcore.AddSync(rotating), opts.Level)

		core := fileCore
		if !IsProduction() {
			console := zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.Lock(os.Stdout),
				zap.DebugLevel,
			)
			core = zapcore.NewTee(fileCore, console)
		}
		logger = zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	})
}

func SetTestCaptureLogger(buf *bytes.Buffer, level zapcore.Level) {
	_ = getLogger()
	logger = zap.New(zapcore.NewCore(jsonEncoder(), zapcore.AddSync(buf), level))
}

func SetTestLoggerNop() {
	_ = getLogger()
	logger = zap.NewNop()
}
