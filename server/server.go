package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/katalvlaran/lvlgen/dungeon"
)

// Per-request limits.
const (
	// DefaultMaxCells caps width·height for a single request.
	DefaultMaxCells = 1001 * 1001
	// DefaultMaxAttempts caps the room placement budget for a single request.
	DefaultMaxAttempts = 100_000
)

// Server serves generated dungeons.
type Server struct {
	base     dungeon.Config
	maxCells    int
	maxAttempts int
	router      *mux.Router
}

// Option configures a Server.
type Option func(*Server)

// WithMaxCells sets the largest grid a request may ask for.
func WithMaxCells(n int) Option {
	return func(s *Server) {
		s.maxCells = n
	}
}

// WithMaxAttempts sets the largest room attempt budget a request may ask for.
func WithMaxAttempts(n int) Option {
	return func(s *Server) {
		s.maxAttempts = n
	}
}

// New creates a server whose requests start from base.
func New(base dungeon.Config, opts ...Option) *Server {
	s := &Server{
		base:        base,
		maxCells:    DefaultMaxCells,
		maxAttempts: DefaultMaxAttempts,
		router:      mux.NewRouter(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/dungeons", s.handleDungeon).Methods("GET")
	api.HandleFunc("/dungeons/ascii", s.handleASCII).Methods("GET")

	s.router.HandleFunc("/ws", s.handleWebSocket)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods("GET")
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Generate runs one request against the base configuration.
func (s *Server) Generate(ctx context.Context, req Request) (*dungeon.Dungeon, error) {
	cfg := req.apply(s.base)
	// Divide rather than multiply: width·height may not fit in an int.
	if cfg.Width > 0 && cfg.Height > 0 && cfg.Width > s.maxCells/cfg.Height {
		return nil, fmt.Errorf("%w: %dx%d > %d cells", ErrTooLarge, cfg.Width, cfg.Height, s.maxCells)
	}
	if cfg.RoomAttempts > s.maxAttempts {
		return nil, fmt.Errorf("%w: %d room attempts > %d", ErrTooLarge, cfg.RoomAttempts, s.maxAttempts)
	}
	g, err := dungeon.New(cfg.Options()...)
	if err != nil {
		return nil, err
	}

	return g.Generate(ctx)
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// statusFor maps generation errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrBadParameter),
		errors.Is(err, dungeon.ErrInvalidDimensions),
		errors.Is(err, dungeon.ErrInvalidAttempts),
		errors.Is(err, dungeon.ErrInvalidSizeModifier),
		errors.Is(err, dungeon.ErrInvalidChance):
		return http.StatusBadRequest
	case errors.Is(err, ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// generateFromQuery parses r and generates; on failure it has already answered.
func (s *Server) generateFromQuery(w http.ResponseWriter, r *http.Request) (*dungeon.Dungeon, bool) {
	req, err := parseQuery(r.URL.Query())
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return nil, false
	}
	d, err := s.Generate(r.Context(), req)
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return nil, false
	}

	return d, true
}

func (s *Server) handleDungeon(w http.ResponseWriter, r *http.Request) {
	d, ok := s.generateFromQuery(w, r)
	if !ok {
		return
	}
	id := uuid.NewString()
	log.Printf("dungeon %s: seed=%d %dx%d rooms=%d", id, d.Seed, d.Grid.Width(), d.Grid.Height(), len(d.Rooms))

	respondJSON(w, http.StatusOK, NewResponse(id, d))
}

func (s *Server) handleASCII(w http.ResponseWriter, r *http.Request) {
	d, ok := s.generateFromQuery(w, r)
	if !ok {
		return
	}
	id := uuid.NewString()
	log.Printf("dungeon %s (ascii): seed=%d %dx%d", id, d.Seed, d.Grid.Width(), d.Grid.Height())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Dungeon-ID", id)
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, d.Grid.String())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
