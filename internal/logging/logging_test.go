package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger() (*logrus.Logger, *bytes.Buffer) {
	logger := SetupLogging("debug")
	buf := &bytes.Buffer{}
	logger.Out = buf
	return logger, buf
}

func lastLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)
	out := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &out))
	return out
}

func TestSetupLogging_InvalidLevelFallsBackToInfo(t *testing.T) {
	logger := SetupLogging("chatty")
	assert.Equal(t, logrus.InfoLevel, logger.Level)
}

func TestGetLogData_Absent(t *testing.T) {
	assert.Nil(t, GetLogData(context.Background()))
	// Helpers are no-ops without a LogData.
	Timed(context.Background(), "x")()
	Data(context.Background(), "k", "v")
}

func TestMiddleware_LogsStatusAndData(t *testing.T) {
	logger, buf := newBufferLogger()

	handler := Middleware(logger, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		Data(r.Context(), "accountID", "abc")
		stop := Timed(r.Context(), "lookupMs")
		stop()
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/accounts", nil))

	line := lastLine(t, buf)
	assert.Equal(t, "Handler.Request.Rejected", line["msg"])
	assert.Equal(t, "warning", line["loglevel"])
	assert.Equal(t, float64(http.StatusTeapot), line["status"])
	assert.Equal(t, "abc", line["accountID"])
	assert.Equal(t, "/accounts", line["path"])
	assert.Contains(t, line, "lookupMs")
}

func TestLoggingWrapper_Error(t *testing.T) {
	logger, buf := newBufferLogger()

	wrapped := LoggingWrapper("Status", logger, func(w http.ResponseWriter, r *http.Request, l *LogData) error {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	})

	rec := httptest.NewRecorder()
	wrapped(rec, httptest.NewRequest(http.MethodPost, "/status", nil))

	line := lastLine(t, buf)
	assert.Equal(t, "Handler.Status.Error", line["msg"])
	assert.Equal(t, "status: method not GET", line["error"])
	assert.Contains(t, line, "duration")
}
