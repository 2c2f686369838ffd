// Package server exposes the calendar widget over HTTP. The HTML page drives
// a single shared widget; the /api routes are stateless.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/cexcal-dev/cexcal/internal/widget"
)

// Error messages returned with 4xx responses.
const (
	ErrInvalidYear   = "Invalid year"
	ErrInvalidMonth  = "Invalid month"
	ErrInvalidDate   = "Invalid date"
	ErrInvalidFormat = "Invalid format"
	ErrInvalidForm   = "Invalid form"
	ErrInternal      = "Internal server error"
)

const shutdownTimeout = 10 * time.Second

// Server holds the shared widget and the router.
type Server struct {
	index  widget.Index
	now    func() time.Time
	router *mux.Router

	mu     sync.Mutex
	widget *widget.Widget
}

// New creates a Server over index. now defaults to time.Now; exchange is
// the initial filter of the shared widget.
func New(index widget.Index, now func() time.Time, exchange string) *Server {
	if now == nil {
		now = time.Now
	}
	s := &Server{
		index:  index,
		now:    now,
		widget: widget.New(index, widget.WithClock(now), widget.WithExchange(exchange)),
	}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(requestLogger)

	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/prev", s.handlePrev).Methods(http.MethodPost)
	r.HandleFunc("/next", s.handleNext).Methods(http.MethodPost)
	r.HandleFunc("/filter", s.handleFilter).Methods(http.MethodPost)
	r.HandleFunc("/day/{date}", s.handleSelectDay).Methods(http.MethodPost)
	r.HandleFunc("/close", s.handleClose).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/calendar", s.handleCalendar).Methods(http.MethodGet)
	api.HandleFunc("/events/{date}", s.handleEvents).Methods(http.MethodGet)
	api.HandleFunc("/stats", s.handleStats).Methods(http.MethodGet)
	api.HandleFunc("/exchanges", s.handleExchanges).Methods(http.MethodGet)
	api.HandleFunc("/download", s.handleDownload).Methods(http.MethodGet)
	return r
}

// update applies op to the shared widget under the lock and logs the
// resulting state.
func (s *Server) update(op func(w *widget.Widget)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	op(s.widget)

	state := s.widget.State()
	log.WithFields(log.Fields{
		"year":       state.Year,
		"month":      int(state.Month),
		"exchange":   state.Exchange,
		"modal_open": s.widget.ModalOpen(),
	}).Debug("view state updated")
}

// page renders the shared widget under the lock.
func (s *Server) page() widget.Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.widget.Render()
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http: failed to listen and serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	log.Info("server gracefully stopped")
	return nil
}
