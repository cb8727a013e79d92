// Package proxy runs the demo HTTP endpoint whose traffic the UI
// displays. It never touches the component tree: requests land in a
// shared store and the UI is nudged through an Updater, exactly like
// any other background producer.
package proxy

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/bloodnighttw/yap/internal/runtime"
)

// Request is one recorded HTTP request.
type Request struct {
	Method string
	URI    string
	Time   time.Time
}

// Store holds recorded requests. It is the synchronization point
// between the server goroutines and the render path, which only ever
// reads snapshots.
type Store struct {
	mu   sync.RWMutex
	reqs []Request
}

func NewStore() *Store {
	return &Store{}
}

// Add appends a request.
func (s *Store) Add(r Request) {
	s.mu.Lock()
	s.reqs = append(s.reqs, r)
	s.mu.Unlock()
}

// Snapshot copies the current request list, newest last.
func (s *Store) Snapshot() []Request {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Request, len(s.reqs))
	copy(out, s.reqs)
	return out
}

// Len reports how many requests have been recorded.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reqs)
}

// Server records every request it serves and requests a re-render.
type Server struct {
	store *Store
	up    runtime.Updater
	srv   *http.Server
}

// NewServer builds a server recording into store and re-rendering
// through up.
func NewServer(addr string, store *Store, up runtime.Updater) *Server {
	s := &Server{store: store, up: up}
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           http.HandlerFunc(s.handle),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Run serves until the context is cancelled, then shuts down
// gracefully. A closed listener is a normal exit.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.srv.ListenAndServe()
	}()
	log.WithField("addr", s.srv.Addr).Info("proxy listening")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return s.srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return fmt.Errorf("proxy server: %w", err)
	}
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	req := Request{
		Method: r.Method,
		URI:    r.RequestURI,
		Time:   time.Now(),
	}
	s.store.Add(req)
	s.up.Update()

	fmt.Fprintf(w, "yap proxy received:\nMethod: %s\nURI: %s\n", req.Method, req.URI)
}
