package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(buf *bytes.Buffer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(buf)
	l.SetFormatter(&logrus.JSONFormatter{})
	return l
}

func TestLogEntry_AddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(&buf)

	LogEntry(WithRequestID(context.Background(), "req-1"), l).Info("hello")

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "req-1", got["request_id"])
	assert.Equal(t, "hello", got["msg"])
}

func TestLogEntry_NoRequestID(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(&buf)

	LogEntry(context.Background(), l).Info("hello")

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.NotContains(t, got, "request_id")
}

func TestLogError(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(&buf)

	LogError(l, "boom", errors.New("cause"), nil)

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "error", got["level"])
	assert.Equal(t, "cause", got["error"])
}

func TestRequestIDFrom_Empty(t *testing.T) {
	assert.Equal(t, "", RequestIDFrom(context.Background()))
}

func TestLogEntry_NilLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		LogEntry(WithRequestID(context.Background(), "req-1"), nil).Error("dropped")
	})
}
