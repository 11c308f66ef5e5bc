package status

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/carson-networks/finance-tracker/internal/logging"
)

const pingTimeout = 2 * time.Second

type pinger interface {
	PingContext(ctx context.Context) error
}

type writerState interface {
	Stopped() bool
}

type Handler struct {
	DB       pinger
	Operator writerState
}

func NewHandler(db pinger, op writerState) Handler {
	return Handler{DB: db, Operator: op}
}

type response struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Writer   string `json:"writer"`
}

// Handler reports whether the database answers and the write queue is
// accepting actions. Either failing yields 503.
func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != "GET" {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	body := response{Status: "ok", Database: "ok", Writer: "ok"}
	var failure error

	ctx, cancel := context.WithTimeout(req.Context(), pingTimeout)
	defer cancel()
	endTimer := logData.AddTiming("pingMs")
	err := h.DB.PingContext(ctx)
	endTimer()
	if err != nil {
		body.Status, body.Database = "unavailable", "unreachable"
		failure = errors.Join(failure, err)
	}
	if h.Operator.Stopped() {
		body.Status, body.Writer = "unavailable", "stopped"
		failure = errors.Join(failure, errors.New("status: operator stopped"))
	}

	w.Header().Set("Content-Type", "application/json")
	if failure != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		return errors.Join(failure, err)
	}
	return failure
}
