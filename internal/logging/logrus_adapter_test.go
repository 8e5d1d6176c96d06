package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogrusAdapter(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		format      string
		expectLevel logrus.Level
	}{
		{
			name:        "debug level with text format",
			level:       "debug",
			format:      "text",
			expectLevel: logrus.DebugLevel,
		},
		{
			name:        "info level with json format",
			level:       "info",
			format:      "json",
			expectLevel: logrus.InfoLevel,
		},
		{
			name:        "warn level with text format",
			level:       "warn",
			format:      "text",
			expectLevel: logrus.WarnLevel,
		},
		{
			name:        "error level with json format",
			level:       "error",
			format:      "json",
			expectLevel: logrus.ErrorLevel,
		},
		{
			name:        "invalid level defaults to info",
			level:       "invalid",
			format:      "text",
			expectLevel: logrus.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogrusAdapter(tt.level, tt.format)
			require.NotNil(t, logger)

			adapter, ok := logger.(*LogrusAdapter)
			require.True(t, ok, "logger should be a LogrusAdapter")
			assert.Equal(t, tt.expectLevel, adapter.logger.Level)

			// Check formatter type
			if tt.format == "json" {
				_, ok := adapter.logger.Formatter.(*logrus.JSONFormatter)
				assert.True(t, ok, "formatter should be JSONFormatter")
			} else {
				_, ok := adapter.logger.Formatter.(*logrus.TextFormatter)
				assert.True(t, ok, "formatter should be TextFormatter")
			}
		})
	}
}

func TestNewLogrusAdapterFromLogger(t *testing.T) {
	t.Run("with existing logger", func(t *testing.T) {
		existingLogger := logrus.New()
		existingLogger.SetLevel(logrus.DebugLevel)

		logger := NewLogrusAdapterFromLogger(existingLogger)
		require.NotNil(t, logger)

		adapter, ok := logger.(*LogrusAdapter)
		require.True(t, ok)
		assert.Equal(t, existingLogger, adapter.logger)
	})

	t.Run("with nil logger creates new one", func(t *testing.T) {
		logger := NewLogrusAdapterFromLogger(nil)
		require.NotNil(t, logger)

		adapter, ok := logger.(*LogrusAdapter)
		require.True(t, ok)
		assert.NotNil(t, adapter.logger)
	})
}

func TestGetLogger(t *testing.T) {
	logger := GetLogger()
	require.NotNil(t, logger)

	t.Run("set logger replaces default", func(t *testing.T) {
		original := GetLogger()
		defer SetLogger(original)

		mock := NewMockLogger()
		SetLogger(mock)
		assert.Equal(t, Logger(mock), GetLogger())
	})

	t.Run("set nil is ignored", func(t *testing.T) {
		original := GetLogger()
		SetLogger(nil)
		assert.Equal(t, original, GetLogger())
	})
}

func TestLogrusAdapter_LoggingMethods(t *testing.T) {
	tests := []struct {
		name    string
		logFunc func(Logger, string, ...Field)
		message string
		fields  []Field
	}{
		{
			name:    "Debug with fields",
			logFunc: func(l Logger, msg string, fields ...Field) { l.Debug(msg, fields...) },
			message: "debug message",
			fields:  []Field{{Key: "key1", Value: "value1"}},
		},
		{
			name:    "Info with fields",
			logFunc: func(l Logger, msg string, fields ...Field) { l.Info(msg, fields...) },
			message: "info message",
			fields:  []Field{{Key: "key2", Value: "value2"}},
		},
		{
			name:    "Warn with fields",
			logFunc: func(l Logger, msg string, fields ...Field) { l.Warn(msg, fields...) },
			message: "warn message",
			fields:  []Field{{Key: "key3", Value: "value3"}},
		},
		{
			name:    "Error with fields",
			logFunc: func(l Logger, msg string, fields ...Field) { l.Error(msg, fields...) },
			message: "error message",
			fields:  []Field{{Key: "key4", Value: "value4"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logrusLogger := logrus.New()
			var buf bytes.Buffer
			logrusLogger.SetOutput(&buf)
			logrusLogger.SetLevel(logrus.DebugLevel)
			logrusLogger.SetFormatter(&logrus.TextFormatter{
				DisableTimestamp: true,
			})

			logger := NewLogrusAdapterFromLogger(logrusLogger)

			tt.logFunc(logger, tt.message, tt.fields...)

			output := buf.String()
			assert.Contains(t, output, tt.message)
			if len(tt.fields) > 0 {
				assert.Contains(t, output, tt.fields[0].Key)
			}
		})
	}
}

func TestLogrusAdapter_WithError(t *testing.T) {
	logrusLogger := logrus.New()
	var buf bytes.Buffer
	logrusLogger.SetOutput(&buf)
	logrusLogger.SetLevel(logrus.ErrorLevel)
	logrusLogger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	logger := NewLogrusAdapterFromLogger(logrusLogger)
	testErr := errors.New("test error")

	loggerWithError := logger.WithError(testErr)
	loggerWithError.Error("error occurred")

	output := buf.String()
	assert.Contains(t, output, "error occurred")
	assert.Contains(t, output, "test error")
}

func TestLogrusAdapter_WithFields(t *testing.T) {
	logrusLogger := logrus.New()
	var buf bytes.Buffer
	logrusLogger.SetOutput(&buf)
	logrusLogger.SetLevel(logrus.InfoLevel)
	logrusLogger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	logger := NewLogrusAdapterFromLogger(logrusLogger)

	fields := []Field{
		{Key: FieldInputFile, Value: "statement.pdf"},
		{Key: FieldCount, Value: 12},
	}

	loggerWithFields := logger.WithFields(fields...)
	loggerWithFields.Info("statement processed")

	output := buf.String()
	assert.Contains(t, output, "statement processed")
	assert.Contains(t, output, FieldInputFile)
	assert.Contains(t, output, "statement.pdf")
	assert.Contains(t, output, FieldCount)
}

func TestConvertFields(t *testing.T) {
	fields := []Field{
		{Key: "key1", Value: "value1"},
		{Key: "key2", Value: 42},
		{Key: "key3", Value: true},
	}

	logrusFields := convertFields(fields)

	assert.Len(t, logrusFields, 3)
	assert.Equal(t, "value1", logrusFields["key1"])
	assert.Equal(t, 42, logrusFields["key2"])
	assert.Equal(t, true, logrusFields["key3"])
}

func TestLogrusAdapter_ChainedCalls(t *testing.T) {
	logrusLogger := logrus.New()
	var buf bytes.Buffer
	logrusLogger.SetOutput(&buf)
	logrusLogger.SetLevel(logrus.InfoLevel)
	logrusLogger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	logger := NewLogrusAdapterFromLogger(logrusLogger)
	testErr := errors.New("test error")

	logger.
		WithField(FieldInputFile, "statement.pdf").
		WithField(FieldOperation, "extract").
		WithError(testErr).
		Error("operation failed")

	output := buf.String()
	assert.Contains(t, output, "operation failed")
	assert.Contains(t, output, "statement.pdf")
	assert.Contains(t, output, "extract")
	assert.Contains(t, output, "test error")
}

func TestMockLogger_SharedEntries(t *testing.T) {
	mock := NewMockLogger()

	derived := mock.WithField(FieldFile, "patterns.yaml")
	derived.Warn("falling back to defaults")

	require.Len(t, mock.GetEntries(), 1)
	assert.True(t, mock.HasEntry("WARN", "falling back to defaults"))
	assert.Equal(t, Field{Key: FieldFile, Value: "patterns.yaml"}, mock.GetEntries()[0].Fields[0])
}

func TestLogrusAdapter_ImplementsInterface(t *testing.T) {
	var _ Logger = (*LogrusAdapter)(nil)
	var _ Logger = (*MockLogger)(nil)
}
