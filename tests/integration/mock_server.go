package integration

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"time"
)

// MockPortfolioServer simulates a portfolio site: HTML pages at fixed paths and
// image bytes for every other path, with per-path error and delay injection
type MockPortfolioServer struct {
	server         *httptest.Server
	requestCount   int32
	mu             sync.RWMutex
	pages          map[string]string
	errorResponses map[string]int           // Path to status code
	delays         map[string]time.Duration // Simulated response delays
	hits           map[string]int
	userAgents     []string
}

// NewMockPortfolioServer creates a new mock portfolio server
func NewMockPortfolioServer() *MockPortfolioServer {
	m := &MockPortfolioServer{
		pages:          make(map[string]string),
		errorResponses: make(map[string]int),
		delays:         make(map[string]time.Duration),
		hits:           make(map[string]int),
	}
	m.server = httptest.NewServer(http.HandlerFunc(m.handle))
	return m
}

func (m *MockPortfolioServer) handle(w http.ResponseWriter, r *http.Request) {
	atomic.AddInt32(&m.requestCount, 1)

	path := r.URL.Path
	m.mu.Lock()
	m.hits[path]++
	m.userAgents = append(m.userAgents, r.UserAgent())
	delay := m.delays[path]
	code := m.errorResponses[path]
	html, isPage := m.pages[path]
	m.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
	}

	if code > 0 {
		http.Error(w, http.StatusText(code), code)
		return
	}

	if isPage {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, html)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Write(ImageBytes(path))
}

// SetPage serves html at path
func (m *MockPortfolioServer) SetPage(path, html string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pages[path] = html
}

// SetErrorResponse makes path answer with code
func (m *MockPortfolioServer) SetErrorResponse(path string, code int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorResponses[path] = code
}

// ClearErrorResponse removes an injected error
func (m *MockPortfolioServer) ClearErrorResponse(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.errorResponses, path)
}

// SetDelay holds requests for path for delay before answering
func (m *MockPortfolioServer) SetDelay(path string, delay time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delays[path] = delay
}

// GetURL returns the site root, with a trailing slash
func (m *MockPortfolioServer) GetURL() string {
	return m.server.URL + "/"
}

// GetRequestCount returns the total number of requests served
func (m *MockPortfolioServer) GetRequestCount() int {
	return int(atomic.LoadInt32(&m.requestCount))
}

// GetHits returns how often path was requested
func (m *MockPortfolioServer) GetHits(path string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.hits[path]
}

// GetUserAgents returns the User-Agent of every request in arrival order
func (m *MockPortfolioServer) GetUserAgents() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.userAgents...)
}

// Close shuts down the mock server
func (m *MockPortfolioServer) Close() {
	m.server.Close()
}

// ImageBytes is the body served for an image path
func ImageBytes(path string) []byte {
	return []byte("\xff\xd8\xff image " + path)
}
