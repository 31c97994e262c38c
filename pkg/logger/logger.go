package logger

import (
	"neuro_study_backend/internal/config"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log 全局日志，InitLogger 之前为空操作日志
var Log = zap.NewNop()

// Level 解析日志级别，未配置时 debug 模式输出 Debug，其余 Info
func Level(cfg config.LogConfig, mode string) zapcore.Level {
	if cfg.Level != "" {
		if lvl, err := zapcore.ParseLevel(cfg.Level); err == nil {
			return lvl
		}
	}
	if mode == "debug" {
		return zap.DebugLevel
	}
	return zap.InfoLevel
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

// InitLogger 文件(JSON, 按大小轮转) + 控制台双写
func InitLogger(cfg *config.Config) {
	filename := cfg.Log.File
	if filename == "" {
		filename = "logs/app.log"
	}
	rotator := &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAgeDays,
		Compress:   true,
	}

	level := zap.NewAtomicLevelAt(Level(cfg.Log, cfg.Server.Mode))
	enc := encoderConfig()

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.AddSync(rotator), level),
		zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(os.Stdout), level),
	)

	Log = zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel)).
		With(zap.String("service", "neuro-study"))
}

// Named 返回带组件名的子日志
func Named(component string) *zap.Logger {
	return Log.Named(component)
}
