package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error

	// Release, when set, holds the call until it is closed or the
	// request context ends. Tests use it to keep a suggestion in flight.
	Release <-chan struct{}
}

// demoDrills is served by the offline demo provider. It satisfies the
// drill-suggestions schema.
var demoDrills = json.RawMessage(`{"exercises":[
{"title":"Kick-in rehearsal","description":"Two kick-in routines against a passive block, then live 4v4 from the touchline. Rotate takers every 3 reps.","duration":20,"intensity":"Medium","category":"Set-Piece","videoUrl":"futsal kick-in routines"},
{"title":"Pivot hold-up 3v2","description":"Feed the pivot with back to goal; pivot lays off or turns. Defenders press from behind on the coach's call.","duration":25,"intensity":"High","category":"Tactical","videoUrl":"futsal pivot play drill"},
{"title":"Transition 4v4 small-sided","description":"Four-minute games; a turnover triggers an immediate counter to the opposite mini goal. Two minutes rest.","duration":30,"intensity":"High","category":"Game","videoUrl":"futsal transition small sided game"}
]}`)

// MockProvider is a deterministic Provider for tests and offline demos.
// It returns canned responses in FIFO order and records all requests.
// Unlike the real providers it does not validate against the schema.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	fallback  *MockResponse
	calls     []Request
}

// NewMockProvider creates a MockProvider with the given canned responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// NewDemoProvider creates a MockProvider that answers every request with
// the same three demo drills. It backs the "mock" provider setting.
func NewDemoProvider() *MockProvider {
	return &MockProvider{fallback: &MockResponse{Content: demoDrills}}
}

// Generate returns the next canned response. Once the queue is empty it
// returns the fallback response if one is set, else ErrProviderUnavailable.
func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	m.calls = append(m.calls, req)
	var resp MockResponse
	switch {
	case len(m.responses) > 0:
		resp = m.responses[0]
		m.responses = m.responses[1:]
	case m.fallback != nil:
		resp = *m.fallback
	default:
		m.mu.Unlock()
		return nil, &ErrProviderUnavailable{}
	}
	m.mu.Unlock()

	if resp.Release != nil {
		select {
		case <-resp.Release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if resp.Err != nil {
		return nil, resp.Err
	}
	return &Response{
		Content:    resp.Content,
		Usage:      resp.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// Calls returns a copy of the recorded requests.
func (m *MockProvider) Calls() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Request(nil), m.calls...)
}
