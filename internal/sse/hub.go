package sse

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Rama-Divya/Myhero/internal/domain"
	"github.com/Rama-Divya/Myhero/internal/logger"
	"github.com/Rama-Divya/Myhero/internal/metrics"
)

// Event represents an event sent over SSE
type Event struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
	Payload   any    `json:"payload"`
}

// Client represents a connected SSE client
type Client struct {
	ID           string
	EventChannel chan Event
	EventFilter  map[string]bool // nil means all events, otherwise only specified types
}

func (c *Client) wants(eventType string) bool {
	return c.EventFilter == nil || c.EventFilter[eventType]
}

// Hub manages SSE client connections and event delivery. Broadcasts fan out
// from the hub goroutine; Publish targets one client directly.
type Hub struct {
	clients    map[string]*Client
	broadcast  chan Event
	unregister chan string
	mu         sync.RWMutex
	shutdown   chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

// NewHub creates a new SSE Hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		broadcast:  make(chan Event, BroadcastBufferSize),
		unregister: make(chan string, ClientChannelBuffer),
		shutdown:   make(chan struct{}),
	}
}

// Start starts the hub's broadcast loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop gracefully shuts down the hub. Closing the client channels ends
// every open stream.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.shutdown)
		h.wg.Wait()

		h.mu.Lock()
		for _, client := range h.clients {
			close(client.EventChannel)
		}
		h.clients = make(map[string]*Client)
		h.mu.Unlock()
		metrics.SSEClients.Set(0)
		logger.Info(LogMsgHubStopped)
	})
}

// run is the main broadcast loop
func (h *Hub) run() {
	defer h.wg.Done()

	for {
		select {
		case clientID := <-h.unregister:
			h.remove(clientID)

		case event := <-h.broadcast:
			h.mu.RLock()
			for _, client := range h.clients {
				if !client.wants(event.Type) {
					continue
				}
				h.send(client, event, false)
			}
			h.mu.RUnlock()

		case <-h.shutdown:
			return
		}
	}
}

func (h *Hub) remove(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if client, ok := h.clients[clientID]; ok {
		close(client.EventChannel)
		delete(h.clients, clientID)
		metrics.SSEClients.Dec()
	}
}

// send must be called with h.mu held. With evict set, a full buffer gives up
// its oldest queued event instead of dropping this one.
func (h *Hub) send(client *Client, event Event, evict bool) bool {
	select {
	case client.EventChannel <- event:
		metrics.RecordPublished(event.Type)
		return true
	default:
	}

	if evict {
		select {
		case oldest := <-client.EventChannel:
			metrics.RecordDropped(oldest.Type)
		default:
		}
		select {
		case client.EventChannel <- event:
			metrics.RecordPublished(event.Type)
			return true
		default:
		}
	}

	metrics.RecordDropped(event.Type)
	return false
}

// Register adds a new client to the hub. The client is reachable through
// Publish as soon as Register returns.
func (h *Hub) Register(eventTypes []string) *Client {
	client := &Client{
		ID:           uuid.New().String(),
		EventChannel: make(chan Event, ClientEventBuffer),
	}

	// Set up event filter if specific types requested
	if len(eventTypes) > 0 {
		client.EventFilter = make(map[string]bool)
		for _, t := range eventTypes {
			client.EventFilter[t] = true
		}
		// Housekeeping always gets through
		client.EventFilter[EventTypeConnected] = true
		client.EventFilter[EventTypeKeepalive] = true
	}

	h.mu.Lock()
	h.clients[client.ID] = client
	h.mu.Unlock()
	metrics.SSEClients.Inc()
	return client
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(clientID string) {
	select {
	case h.unregister <- clientID:
	case <-h.shutdown:
	}
}

// Broadcast queues an event for all interested clients
func (h *Hub) Broadcast(eventType domain.EventType, payload any) bool {
	event := newEvent(string(eventType), payload)

	select {
	case h.broadcast <- event:
		return true
	default:
		metrics.RecordDropped(event.Type)
		return false
	}
}

// Publish delivers an event to a single client without blocking. It reports
// false if the client is gone or filtered the type out. A full buffer drops
// the event, except unlock.unlocked which evicts the oldest queued event.
func (h *Hub) Publish(clientID string, eventType domain.EventType, payload any) bool {
	event := newEvent(string(eventType), payload)

	h.mu.RLock()
	defer h.mu.RUnlock()
	client, ok := h.clients[clientID]
	if !ok || !client.wants(event.Type) {
		return false
	}
	return h.send(client, event, eventType == domain.EventUnlockUnlocked)
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// ClientSink publishes to one client; it satisfies presenter.Sink
type ClientSink struct {
	hub      *Hub
	clientID string
}

// Sink returns a publisher bound to clientID
func (h *Hub) Sink(clientID string) *ClientSink {
	return &ClientSink{hub: h, clientID: clientID}
}

// Publish forwards to Hub.Publish
func (s *ClientSink) Publish(eventType domain.EventType, payload any) bool {
	return s.hub.Publish(s.clientID, eventType, payload)
}

func newEvent(eventType string, payload any) Event {
	return Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}
}

// FormatSSEMessage formats an SSE event for transmission
func FormatSSEMessage(event Event) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	// SSE format: "id: <id>\nevent: <type>\ndata: <json>\n\n"
	msg := "id: " + event.ID + "\n"
	msg += "event: " + event.Type + "\n"
	msg += "data: " + string(data) + "\n\n"

	return []byte(msg), nil
}
