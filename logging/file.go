package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewFileLogger returns a logger that writes JSON lines to path, rotating the file once it
// grows past 10 MB and keeping two old copies.
func NewFileLogger(name, path string, level zapcore.Level) Logger {
	writer := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10,
		MaxBackups: 2,
	}
	encoderConfig := NewLoggerConfig().EncoderConfig
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	atomicLevel := zap.NewAtomicLevelAt(level)
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(writer), atomicLevel)
	return &impl{
		name:  name,
		level: atomicLevel,
		sugar: zap.New(core).Sugar().Named(name),
	}
}
