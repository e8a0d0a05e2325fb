package api

import (
	"context"
	"net/url"
	"sync"
)

// RequestLogEntry records a request made to a scripted transport.
type RequestLogEntry struct {
	Path   string
	Params url.Values
}

// ScriptedTransport is an in-memory fake suitable for deterministic unit
// tests. Responses are either fixed bodies per path or computed by a handler
// that can inspect the query parameters.
type ScriptedTransport struct {
	mu         sync.Mutex
	Fixtures   map[string][]byte
	Handlers   map[string]func(params url.Values) ([]byte, error)
	requestLog []RequestLogEntry
}

// NewScriptedTransport creates an empty scripted transport.
func NewScriptedTransport() *ScriptedTransport {
	return &ScriptedTransport{
		Fixtures: make(map[string][]byte),
		Handlers: make(map[string]func(params url.Values) ([]byte, error)),
	}
}

// Get records the request and replays the scripted response for its path.
// Handlers take precedence over fixtures; unknown paths return an empty
// JSON array.
func (t *ScriptedTransport) Get(_ context.Context, path string, params url.Values) ([]byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	copied := url.Values{}
	for k, v := range params {
		copied[k] = append([]string(nil), v...)
	}
	t.requestLog = append(t.requestLog, RequestLogEntry{Path: path, Params: copied})

	if handler, ok := t.Handlers[path]; ok {
		return handler(copied)
	}
	if body, ok := t.Fixtures[path]; ok {
		return body, nil
	}
	return []byte("[]"), nil
}

// RequestsMade returns the number of requests made to this transport.
func (t *ScriptedTransport) RequestsMade() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.requestLog)
}

// Requests returns a copy of the recorded request log.
func (t *ScriptedTransport) Requests() []RequestLogEntry {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]RequestLogEntry(nil), t.requestLog...)
}
