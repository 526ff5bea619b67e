// Package testutil provides a recording HTTP server for SDK tests. It is
// import-cycle safe: it depends only on the standard library, so in-package
// tests anywhere in the module can use it.
package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// Exchange is one request the server saw, captured before the response was
// written.
type Exchange struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   string
}

// stub is a canned response for one method+path.
type stub struct {
	status int
	body   string
}

// Server is an httptest.Server that records every request and replies with
// canned responses registered via Stub. Unstubbed paths get a 404 with an
// empty body.
type Server struct {
	*httptest.Server

	mu        sync.Mutex
	stubs     map[string]stub
	exchanges []Exchange
}

// NewServer starts a recording server. It is closed automatically when the
// test finishes.
func NewServer(t *testing.T) *Server {
	t.Helper()
	s := &Server{stubs: make(map[string]stub)}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

// Stub registers a canned response for method and path (path as seen by the
// server, e.g. "/loans/822/repayments"). It returns the server for chaining.
func (s *Server) Stub(method, path string, status int, body string) *Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stubs[method+" "+path] = stub{status: status, body: body}
	return s
}

// Exchanges returns a copy of all recorded requests in arrival order.
func (s *Server) Exchanges() []Exchange {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Exchange, len(s.exchanges))
	copy(out, s.exchanges)
	return out
}

// LastExchange returns the most recent request, failing the test if the
// server saw none.
func (s *Server) LastExchange(t *testing.T) Exchange {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.exchanges) == 0 {
		t.Fatal("server saw no requests")
	}
	return s.exchanges[len(s.exchanges)-1]
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	s.mu.Lock()
	s.exchanges = append(s.exchanges, Exchange{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.RawQuery,
		Header: r.Header.Clone(),
		Body:   string(body),
	})
	st, ok := s.stubs[r.Method+" "+r.URL.Path]
	s.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.WriteHeader(st.status)
	io.WriteString(w, st.body)
}
