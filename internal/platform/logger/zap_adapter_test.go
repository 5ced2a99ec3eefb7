package logger

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type ZapAdapterTestSuite struct {
	suite.Suite
	logs   *observer.ObservedLogs
	logger Logger
}

func (s *ZapAdapterTestSuite) SetupTest() {
	core, logs := observer.New(zapcore.DebugLevel)
	s.logs = logs
	s.logger = newZapLoggerFrom(zap.New(core))
}

func (s *ZapAdapterTestSuite) TestNewZapLogger() {
	tests := []struct {
		name   string
		config Config
	}{
		{"development text", Config{Environment: "development", Level: LevelDebug, Format: FormatText}},
		{"production json", Config{Service: "healthgate", Version: "1.0.0", Environment: "production", Level: LevelInfo, Format: FormatJSON}},
		{"test warn", Config{Environment: "test", Level: LevelWarn}},
		{"unknown environment", Config{Environment: "qa", Level: LevelError, Format: Format("xml")}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			logger, err := NewZapLogger(tt.config)

			s.Require().NoError(err)
			s.NotNil(logger)
		})
	}
}

func (s *ZapAdapterTestSuite) TestLevels() {
	s.logger.Debug("probe scheduled")
	s.logger.Info("probe finished")
	s.logger.Warn("Authentication failed")
	s.logger.Error("Gateway fault")

	entries := s.logs.AllUntimed()
	s.Require().Len(entries, 4)
	s.Equal(zapcore.DebugLevel, entries[0].Level)
	s.Equal(zapcore.InfoLevel, entries[1].Level)
	s.Equal(zapcore.WarnLevel, entries[2].Level)
	s.Equal(zapcore.ErrorLevel, entries[3].Level)
	s.Equal("Authentication failed", entries[2].Message)
}

func (s *ZapAdapterTestSuite) TestFieldTypes() {
	s.logger.Info("probe finished",
		String("probe", "disk"),
		Int("attempts", 1),
		Bool("parallel", true),
		Float64("free_percent", 8.5),
		Duration("duration", 150*time.Millisecond),
		Strings("paths", []string{"/", "/data"}),
		Error(errors.New("statfs failed")),
		Field{Key: "details", Value: map[string]any{"threshold": 10}},
	)

	s.Require().Equal(1, s.logs.Len())
	fields := s.logs.All()[0].ContextMap()
	s.Equal("disk", fields["probe"])
	s.Equal(int64(1), fields["attempts"])
	s.Equal(true, fields["parallel"])
	s.Equal(8.5, fields["free_percent"])
	s.Equal(150*time.Millisecond, fields["duration"])
	s.Equal([]any{"/", "/data"}, fields["paths"])
	s.Equal("statfs failed", fields["error"])
	s.Equal(map[string]any{"threshold": 10}, fields["details"])
}

func (s *ZapAdapterTestSuite) TestWith() {
	scoped := s.logger.With(String("request_id", "req-1"))
	scoped.Warn("Authentication failed", String("reason", "key_invalid"))
	s.logger.Info("unscoped")

	entries := s.logs.All()
	s.Require().Len(entries, 2)
	s.Equal(map[string]any{"request_id": "req-1", "reason": "key_invalid"}, entries[0].ContextMap())
	s.Empty(entries[1].ContextMap())
}

func (s *ZapAdapterTestSuite) TestInitialFields() {
	fields := initialFields(Config{Service: "healthgate", Version: "1.2.3", Environment: "staging"})

	s.Require().Len(fields, 3)
	s.Equal("service", fields[0].Key)
	s.Equal("healthgate", fields[0].String)
	s.Equal("version", fields[1].Key)
	s.Equal("env", fields[2].Key)

	s.Empty(initialFields(Config{}))
}

func (s *ZapAdapterTestSuite) TestParseZapLevel() {
	s.Equal(zapcore.DebugLevel, parseZapLevel(LevelDebug))
	s.Equal(zapcore.InfoLevel, parseZapLevel(LevelInfo))
	s.Equal(zapcore.WarnLevel, parseZapLevel(LevelWarn))
	s.Equal(zapcore.ErrorLevel, parseZapLevel(LevelError))
	s.Equal(zapcore.InfoLevel, parseZapLevel(Level("verbose")))
}

func (s *ZapAdapterTestSuite) TestToZapFields_Empty() {
	s.Empty(toZapFields(nil))
}

func TestZapAdapterTestSuite(t *testing.T) {
	suite.Run(t, new(ZapAdapterTestSuite))
}
