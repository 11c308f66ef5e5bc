package logging

import (
	"net/http"

	"github.com/felixge/httpsnoop"
	"github.com/sirupsen/logrus"
)

// Middleware attaches a fresh LogData to every request and logs one line when
// the request completes, carrying everything handlers recorded on it.
func Middleware(log *logrus.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		logData := NewLogData(log)
		logData.AddData("method", req.Method)
		logData.AddData("path", req.URL.Path)

		metrics := httpsnoop.CaptureMetrics(next, w, req.WithContext(WithLogData(req.Context(), logData)))

		entry := logData.Log().
			WithField("status", metrics.Code).
			WithField("durationMs", metrics.Duration.Milliseconds())
		switch {
		case metrics.Code >= http.StatusInternalServerError:
			entry.Error("Handler.Request.Error")
		case metrics.Code >= http.StatusBadRequest:
			entry.Warn("Handler.Request.Rejected")
		default:
			entry.Info("Handler.Request.Complete")
		}
	})
}
