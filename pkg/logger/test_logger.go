package logger

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// TestLogger is a logger implementation for testing that captures all log messages
type TestLogger struct {
	sink   *testSink
	fields map[string]interface{}
	err    error
}

// testSink is shared by a TestLogger and every logger derived from it
type testSink struct {
	mu       sync.Mutex
	messages []LogMessage
	buffer   bytes.Buffer
}

// LogMessage represents a captured log message
type LogMessage struct {
	Level   string
	Message string
	Fields  map[string]interface{}
	Error   error
}

// NewTestLogger creates a new test logger
func NewTestLogger() *TestLogger {
	return &TestLogger{sink: &testSink{}}
}

func (l *TestLogger) Debug(msg string) { l.log("DEBUG", msg, nil) }
func (l *TestLogger) Info(msg string)  { l.log("INFO", msg, nil) }
func (l *TestLogger) Warn(msg string)  { l.log("WARN", msg, nil) }
func (l *TestLogger) Error(msg string) { l.log("ERROR", msg, nil) }

func (l *TestLogger) DebugWithFields(msg string, fields map[string]interface{}) {
	l.log("DEBUG", msg, fields)
}

func (l *TestLogger) InfoWithFields(msg string, fields map[string]interface{}) {
	l.log("INFO", msg, fields)
}

func (l *TestLogger) WarnWithFields(msg string, fields map[string]interface{}) {
	l.log("WARN", msg, fields)
}

func (l *TestLogger) ErrorWithFields(msg string, fields map[string]interface{}) {
	l.log("ERROR", msg, fields)
}

// WithError adds an error to the logger context
func (l *TestLogger) WithError(err error) Logger {
	return &TestLogger{sink: l.sink, fields: l.fields, err: err}
}

// WithField adds a field to the logger context
func (l *TestLogger) WithField(key string, value interface{}) Logger {
	return l.WithFields(map[string]interface{}{key: value})
}

// WithFields adds multiple fields to the logger context
func (l *TestLogger) WithFields(fields map[string]interface{}) Logger {
	return &TestLogger{sink: l.sink, fields: l.merge(fields), err: l.err}
}

// GetZerolog returns a disabled zerolog instance
func (l *TestLogger) GetZerolog() *zerolog.Logger {
	nop := zerolog.Nop()
	return &nop
}

func (l *TestLogger) merge(additional map[string]interface{}) map[string]interface{} {
	if len(l.fields) == 0 && len(additional) == 0 {
		return nil
	}
	merged := make(map[string]interface{}, len(l.fields)+len(additional))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range additional {
		merged[k] = v
	}
	return merged
}

// log captures a log message
func (l *TestLogger) log(level, msg string, fields map[string]interface{}) {
	s := l.sink
	s.mu.Lock()
	defer s.mu.Unlock()

	logMsg := LogMessage{
		Level:   level,
		Message: msg,
		Fields:  l.merge(fields),
		Error:   l.err,
	}
	s.messages = append(s.messages, logMsg)

	fmt.Fprintf(&s.buffer, "[%s] %s", level, msg)
	if len(logMsg.Fields) > 0 {
		fmt.Fprintf(&s.buffer, " fields=%v", logMsg.Fields)
	}
	if logMsg.Error != nil {
		fmt.Fprintf(&s.buffer, " error=%v", logMsg.Error)
	}
	fmt.Fprintln(&s.buffer)
}

// GetMessages returns all captured log messages
func (l *TestLogger) GetMessages() []LogMessage {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()

	messages := make([]LogMessage, len(l.sink.messages))
	copy(messages, l.sink.messages)
	return messages
}

// GetMessagesByLevel returns all messages of a specific level
func (l *TestLogger) GetMessagesByLevel(level string) []LogMessage {
	var filtered []LogMessage
	for _, msg := range l.GetMessages() {
		if msg.Level == level {
			filtered = append(filtered, msg)
		}
	}
	return filtered
}

// HasMessage checks if a message with the given text was logged
func (l *TestLogger) HasMessage(text string) bool {
	for _, msg := range l.GetMessages() {
		if msg.Message == text {
			return true
		}
	}
	return false
}

// HasError checks if an error was logged
func (l *TestLogger) HasError() bool {
	return len(l.GetMessagesByLevel("ERROR")) > 0
}

// Clear clears all captured messages
func (l *TestLogger) Clear() {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()

	l.sink.messages = l.sink.messages[:0]
	l.sink.buffer.Reset()
}

// String returns all log messages as a string
func (l *TestLogger) String() string {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()

	return strings.TrimRight(l.sink.buffer.String(), "\n")
}
