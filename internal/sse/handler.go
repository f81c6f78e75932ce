package sse

import (
	"net/http"
	"strings"
	"time"

	"github.com/Rama-Divya/Myhero/internal/logger"
)

// SessionFunc starts the per-connection work of a stream. It runs after the
// client is registered and before anything is written, so it may still set
// response headers such as cookies. The returned stop func runs on disconnect.
type SessionFunc func(w http.ResponseWriter, r *http.Request, sink *ClientSink) (stop func())

// Handler returns an HTTP handler for SSE connections. session may be nil.
func Handler(hub *Hub, session SessionFunc) http.HandlerFunc {
	return handler(hub, session, KeepaliveInterval)
}

func handler(hub *Hub, session SessionFunc, keepaliveInterval time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Check for flusher support
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "SSE not supported", http.StatusInternalServerError)
			return
		}

		// Set SSE headers
		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		// Parse event type filters from query param
		var eventTypes []string
		if filterParam := r.URL.Query().Get(TypesQueryParam); filterParam != "" {
			eventTypes = strings.Split(filterParam, ",")
		}

		log := logger.FromContext(r.Context())

		// Register client
		client := hub.Register(eventTypes)
		log.Info(LogMsgClientConnected,
			"client_id", client.ID,
			"filters", eventTypes,
			"total_clients", hub.ClientCount())

		// Ensure cleanup on disconnect
		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected, "client_id", client.ID)
		}()

		if session != nil {
			if stop := session(w, r, hub.Sink(client.ID)); stop != nil {
				defer stop()
			}
		}

		// Send initial connection event
		connectEvent := Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			Timestamp: time.Now().Unix(),
			Payload: map[string]any{
				"client_id": client.ID,
				"filters":   eventTypes,
			},
		}
		if !write(w, flusher, connectEvent) {
			return
		}

		// Keepalive ticker
		ticker := time.NewTicker(keepaliveInterval)
		defer ticker.Stop()

		// Event loop
		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				// Client disconnected
				return

			case event, ok := <-client.EventChannel:
				if !ok {
					// Channel closed, hub is shutting down
					return
				}
				if !write(w, flusher, event) {
					return
				}

			case <-ticker.C:
				keepalive := Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()}
				if !write(w, flusher, keepalive) {
					return
				}
			}
		}
	}
}

func write(w http.ResponseWriter, flusher http.Flusher, event Event) bool {
	msg, err := FormatSSEMessage(event)
	if err != nil {
		logger.Error(LogMsgWriteError, "type", event.Type, "error", err)
		return true
	}
	if _, err := w.Write(msg); err != nil {
		logger.Warn(LogMsgWriteError, "type", event.Type, "error", err)
		return false
	}
	flusher.Flush()
	return true
}
