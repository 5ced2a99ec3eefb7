package logger

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type zapLogger struct {
	logger *zap.Logger
}

// NewZapLogger builds a zap-backed Logger. Development gets zap's
// human-oriented defaults, every other environment the production ones.
// Service and Version, when set, are attached to every entry.
func NewZapLogger(config Config) (Logger, error) {
	zapConfig := zap.NewProductionConfig()
	if config.Environment == "development" {
		zapConfig = zap.NewDevelopmentConfig()
	}

	zapConfig.Level = zap.NewAtomicLevelAt(parseZapLevel(config.Level))
	zapConfig.EncoderConfig.TimeKey = "timestamp"
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	switch config.Format {
	case FormatText:
		zapConfig.Encoding = "console"
	default:
		zapConfig.Encoding = "json"
	}

	logger, err := zapConfig.Build(zap.AddCallerSkip(1), zap.Fields(initialFields(config)...))
	if err != nil {
		return nil, err
	}

	return &zapLogger{logger: logger}, nil
}

func newZapLoggerFrom(logger *zap.Logger) Logger {
	return &zapLogger{logger: logger}
}

func (l *zapLogger) Info(msg string, fields ...Field) {
	l.logger.Info(msg, toZapFields(fields)...)
}

func (l *zapLogger) Error(msg string, fields ...Field) {
	l.logger.Error(msg, toZapFields(fields)...)
}

func (l *zapLogger) Debug(msg string, fields ...Field) {
	l.logger.Debug(msg, toZapFields(fields)...)
}

func (l *zapLogger) Warn(msg string, fields ...Field) {
	l.logger.Warn(msg, toZapFields(fields)...)
}

func (l *zapLogger) With(fields ...Field) Logger {
	return &zapLogger{logger: l.logger.With(toZapFields(fields)...)}
}

func initialFields(config Config) []zap.Field {
	var fields []zap.Field
	if config.Service != "" {
		fields = append(fields, zap.String("service", config.Service))
	}
	if config.Version != "" {
		fields = append(fields, zap.String("version", config.Version))
	}
	if config.Environment != "" {
		fields = append(fields, zap.String("env", config.Environment))
	}
	return fields
}

func parseZapLevel(level Level) zapcore.Level {
	switch level {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func toZapFields(fields []Field) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		switch v := field.Value.(type) {
		case string:
			zapFields = append(zapFields, zap.String(field.Key, v))
		case int:
			zapFields = append(zapFields, zap.Int(field.Key, v))
		case bool:
			zapFields = append(zapFields, zap.Bool(field.Key, v))
		case float64:
			zapFields = append(zapFields, zap.Float64(field.Key, v))
		case time.Duration:
			zapFields = append(zapFields, zap.Duration(field.Key, v))
		case []string:
			zapFields = append(zapFields, zap.Strings(field.Key, v))
		case error:
			zapFields = append(zapFields, zap.NamedError(field.Key, v))
		default:
			zapFields = append(zapFields, zap.Any(field.Key, v))
		}
	}
	return zapFields
}
