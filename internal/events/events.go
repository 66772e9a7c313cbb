// Package events is a small in-process pub/sub hub feeding the SSE
// endpoint. Slow subscribers drop messages rather than blocking the
// publisher.
package events

import (
	"encoding/json"
	"sync"
	"time"
)

type Event struct {
	Type string          `json:"type"`
	At   time.Time       `json:"at"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Event types emitted by the engine.
const (
	TypeSearchStarted  = "search.started"
	TypeSourceSettled  = "search.source"
	TypeSearchComplete = "search.complete"
	TypeRefreshTick    = "refresh.tick"
	TypeConfigSaved    = "config.saved"
)

type Hub struct {
	mu      sync.Mutex
	clients map[chan string]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[chan string]struct{})}
}

func (h *Hub) Subscribe() chan string {
	ch := make(chan string, 16)
	h.mu.Lock()
	h.clients[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *Hub) Unsubscribe(ch chan string) {
	h.mu.Lock()
	delete(h.clients, ch)
	h.mu.Unlock()
	close(ch)
}

// Publish serializes the payload and fans it out to every subscriber.
// A subscriber whose buffer is full misses the event.
func (h *Hub) Publish(typ string, data any) {
	var raw json.RawMessage
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			return
		}
		raw = b
	}
	b, _ := json.Marshal(Event{Type: typ, At: time.Now().UTC(), Data: raw})
	msg := string(b)

	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.clients {
		select {
		case ch <- msg:
		default:
		}
	}
}

// SearchStarted announces a new aggregated search.
func (h *Hub) SearchStarted(query string) {
	h.Publish(TypeSearchStarted, map[string]string{"query": query})
}

// SourceSettled announces one provider's outcome within a search.
func (h *Hub) SourceSettled(query, source string, success bool, count int, latencyMS int64, errText string) {
	data := map[string]any{
		"query":     query,
		"source":    source,
		"success":   success,
		"count":     count,
		"latencyMs": latencyMS,
	}
	if errText != "" {
		data["error"] = errText
	}
	h.Publish(TypeSourceSettled, data)
}

// SearchComplete announces the outcome summary of a finished search.
func (h *Hub) SearchComplete(query string, total, duplicatesRemoved int, tookMS int64) {
	h.Publish(TypeSearchComplete, map[string]any{
		"query":             query,
		"totalCount":        total,
		"duplicatesRemoved": duplicatesRemoved,
		"tookMs":            tookMS,
	})
}
