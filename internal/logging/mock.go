package logging

import "fmt"

// MockLogger is a mock implementation of the Logger interface for testing.
// It captures log entries for verification in tests. Loggers derived via
// WithError/WithField/WithFields share the parent's entry list, so tests can
// assert on the root mock regardless of how a component decorates its logger.
type MockLogger struct {
	entries       *[]LogEntry
	pendingError  error
	pendingFields []Field
}

// LogEntry represents a single log entry captured by MockLogger.
type LogEntry struct {
	Level   string
	Message string
	Fields  []Field
	Error   error
}

// NewMockLogger creates a MockLogger ready for use.
func NewMockLogger() *MockLogger {
	entries := make([]LogEntry, 0)
	return &MockLogger{entries: &entries}
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	if m.entries == nil {
		entries := make([]LogEntry, 0)
		m.entries = &entries
	}
	allFields := append(append([]Field{}, m.pendingFields...), fields...)
	*m.entries = append(*m.entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  allFields,
		Error:   m.pendingError,
	})
}

// Debug logs a debug-level message with optional fields.
func (m *MockLogger) Debug(msg string, fields ...Field) {
	m.record("DEBUG", msg, fields)
}

// Info logs an info-level message with optional fields.
func (m *MockLogger) Info(msg string, fields ...Field) {
	m.record("INFO", msg, fields)
}

// Warn logs a warning-level message with optional fields.
func (m *MockLogger) Warn(msg string, fields ...Field) {
	m.record("WARN", msg, fields)
}

// Error logs an error-level message with optional fields.
func (m *MockLogger) Error(msg string, fields ...Field) {
	m.record("ERROR", msg, fields)
}

// WithError returns a new logger with an error field attached.
func (m *MockLogger) WithError(err error) Logger {
	return &MockLogger{
		entries:       m.entries,
		pendingError:  err,
		pendingFields: m.pendingFields,
	}
}

// WithField returns a new logger with a single field attached.
func (m *MockLogger) WithField(key string, value interface{}) Logger {
	return m.WithFields(Field{Key: key, Value: value})
}

// WithFields returns a new logger with multiple fields attached.
func (m *MockLogger) WithFields(fields ...Field) Logger {
	allFields := append(append([]Field{}, m.pendingFields...), fields...)
	return &MockLogger{
		entries:       m.entries,
		pendingError:  m.pendingError,
		pendingFields: allFields,
	}
}

// Fatal logs a fatal-level message. The mock does not exit.
func (m *MockLogger) Fatal(msg string, fields ...Field) {
	m.record("FATAL", msg, fields)
}

// Fatalf logs a fatal-level message with formatting. The mock does not exit.
func (m *MockLogger) Fatalf(msg string, args ...interface{}) {
	m.record("FATAL", fmt.Sprintf(msg, args...), nil)
}

// GetEntries returns all captured log entries.
func (m *MockLogger) GetEntries() []LogEntry {
	if m.entries == nil {
		return nil
	}
	return *m.entries
}

// GetEntriesByLevel returns all log entries of a specific level.
func (m *MockLogger) GetEntriesByLevel(level string) []LogEntry {
	var entries []LogEntry
	for _, entry := range m.GetEntries() {
		if entry.Level == level {
			entries = append(entries, entry)
		}
	}
	return entries
}

// Clear removes all captured log entries.
func (m *MockLogger) Clear() {
	if m.entries != nil {
		*m.entries = (*m.entries)[:0]
	}
}

// HasEntry checks if a log entry with the given level and message exists.
func (m *MockLogger) HasEntry(level, message string) bool {
	for _, entry := range m.GetEntries() {
		if entry.Level == level && entry.Message == message {
			return true
		}
	}
	return false
}
