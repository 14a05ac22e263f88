package stream_grid

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/m04kA/Salon-ReservationService/internal/service/grid/models"
)

type Handler struct {
	service GridService
	logger  Logger
}

func NewHandler(service GridService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations/stream
// Server-Sent Events: первым событием уходит текущий снимок, дальше -
// каждый принятый снимок сетки. Медленный клиент получает не каждое
// промежуточное состояние, а последнее актуальное
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		h.logger.Error("GET /reservations/stream - Streaming unsupported by response writer")
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	snapshots, unsubscribe := h.service.Subscribe()
	defer unsubscribe()

	// Начальное состояние, чтобы клиент не ждал первой мутации
	initial, err := h.service.GetSnapshot(r.Context())
	if err != nil {
		h.logger.Error("GET /reservations/stream - Failed to load initial snapshot: %v", err)
		http.Error(w, "failed to load snapshot", http.StatusInternalServerError)
		return
	}
	if err := writeEvent(w, *initial); err != nil {
		h.logger.Warn("GET /reservations/stream - Client gone during initial write: %v", err)
		return
	}
	flusher.Flush()

	h.logger.Info("GET /reservations/stream - Subscriber connected")

	for {
		select {
		case <-r.Context().Done():
			h.logger.Info("GET /reservations/stream - Subscriber disconnected")
			return
		case snap, ok := <-snapshots:
			if !ok {
				return
			}
			if err := writeEvent(w, snap); err != nil {
				h.logger.Warn("GET /reservations/stream - Write failed: %v", err)
				return
			}
			flusher.Flush()
		}
	}
}

// writeEvent пишет один снимок в формате SSE
func writeEvent(w http.ResponseWriter, snap models.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: grid\ndata: %s\n\n", data)
	return err
}
