// Package server exposes the annotation pipeline over HTTP and WebSocket.
// The pipeline itself is pure and stateless; the server owns request
// shaping, rate limiting, and lifecycle.
package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/imuzolev/playnashville/chords"
	"github.com/imuzolev/playnashville/config"
	"github.com/imuzolev/playnashville/errors"
	"github.com/imuzolev/playnashville/theory"
)

// Server serves chord annotation over HTTP and WebSocket.
type Server struct {
	catalog *theory.Catalog
	logger  *zap.SugaredLogger

	httpServer *http.Server

	// Reloadable settings, swapped atomically by ApplyConfig on config
	// file changes
	mu             sync.RWMutex
	allowedOrigins []string
	limiter        *rate.Limiter
	defaultMode    theory.Mode

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a server around a built catalog.
func New(catalog *theory.Catalog, cfg *config.Config, log *zap.SugaredLogger) (*Server, error) {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		catalog: catalog,
		logger:  log,
		ctx:     ctx,
		cancel:  cancel,
	}
	if err := s.ApplyConfig(cfg); err != nil {
		cancel()
		return nil, err
	}
	return s, nil
}

// ApplyConfig installs the reloadable parts of cfg. Safe to call while the
// server is running; the config watcher uses it as its reload callback.
// Port changes are ignored at runtime (they require a restart).
func (s *Server) ApplyConfig(cfg *config.Config) error {
	mode := theory.Mode("")
	if cfg.Annotate.DefaultMode != "" {
		parsed, ok := theory.ParseMode(cfg.Annotate.DefaultMode)
		if !ok {
			return errors.Newf("annotate.default_mode must be %q or %q, got %q",
				theory.ModeMajor, theory.ModeMinor, cfg.Annotate.DefaultMode)
		}
		mode = parsed
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.allowedOrigins = cfg.Server.AllowedOrigins
	s.limiter = rate.NewLimiter(rate.Limit(cfg.Server.RateLimitPerSecond), cfg.Server.RateBurst)
	s.defaultMode = mode
	return nil
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/process", s.withRateLimit(s.handleProcess))
	mux.HandleFunc("GET /api/tonalities", s.handleTonalities)
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /ws", s.handleWebSocket)
	return s.withRequestLogging(mux)
}

// Start blocks serving HTTP until Shutdown is called or the listener fails.
func (s *Server) Start(port int) error {
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Infow("Server listening", "port", port)
	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return errors.Wrap(err, "http server failed")
}

// Shutdown drains in-flight requests and stops all connection goroutines.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	if s.httpServer != nil {
		err = s.httpServer.Shutdown(ctx)
	}
	s.cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		err = errors.Wrap(ctx.Err(), "timed out waiting for connections to close")
	}
	return err
}

// process runs the full pipeline for one request. key and mode arrive as
// raw user strings; empty means unset.
func (s *Server) process(text, key, modeArg string) (processResponse, error) {
	mode := s.currentDefaultMode()
	if modeArg != "" {
		parsed, ok := theory.ParseMode(modeArg)
		if !ok {
			return processResponse{}, errors.Wrapf(errors.ErrInvalidKey,
				"mode must be %q or %q, got %q", theory.ModeMajor, theory.ModeMinor, modeArg)
		}
		mode = parsed
	}

	extracted := chords.Extract(text)
	tonality, err := theory.SelectTonality(s.catalog, key, mode, extracted)
	if err != nil {
		return processResponse{}, err
	}

	return processResponse{
		AnnotatedText: chords.Annotate(text, tonality.ChordMap),
		Tonality:      fmt.Sprintf("%s (%s)", tonality.Label, tonality.Mode),
		Key:           tonality.Key,
		Mode:          string(tonality.Mode),
	}, nil
}

func (s *Server) currentDefaultMode() theory.Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.defaultMode
}

func (s *Server) allowLimiter() *rate.Limiter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.limiter
}

func (s *Server) originAllowed(origin string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, allowed := range s.allowedOrigins {
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}
