package adaptor

import (
	"fmt"
	"net/http"

	"rentoverse-web/internal/countdown"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CountdownHandler streams countdown frames over server-sent events. Each
// page element opens one stream; the registry ticker behind it is stopped
// the moment the client disconnects.
type CountdownHandler struct {
	registry *countdown.Registry
	log      *zap.Logger
}

func NewCountdownHandler(registry *countdown.Registry, log *zap.Logger) *CountdownHandler {
	return &CountdownHandler{
		registry: registry,
		log:      log.With(zap.String("handler", "countdown")),
	}
}

// Events handles GET /events/countdown?id=...&deadline=... The deadline is
// either epoch milliseconds or an ISO timestamp.
func (h *CountdownHandler) Events(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	deadline, ok := countdown.ParseDeadline(r.URL.Query().Get("deadline"))
	if id == "" || !ok {
		http.Error(w, "missing id or deadline", http.StatusBadRequest)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	// Key is scoped to this connection; two tabs with the same element id
	// must not steal each other's ticker.
	key := id + "/" + uuid.NewString()

	frames := make(chan string, 4)
	h.registry.Start(key, deadline, func(text string) {
		select {
		case frames <- text:
		default:
		}
	})
	defer h.registry.Stop(key)

	h.log.Debug("Countdown stream opened",
		zap.String("id", id),
		zap.Time("deadline", deadline),
	)

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case frame := <-frames:
			if _, err := fmt.Fprintf(w, "data: %s\n\n", frame); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
