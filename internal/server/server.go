// Package server exposes the transcoder over HTTP.
//
// Routes:
//
//	GET  /healthz
//	POST /v1/transcode  {"markdown", "profile", "hashtags"}
//	POST /v1/preview    {"markdown"}
//	POST /v1/stats      {"text", "profile"}
//
// Every response body is JSON. Validation failures yield 400, oversized
// bodies 413 and recovered panics 500.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/alnah/go-linkedinify"
)

// Default values.
const (
	DefaultMaxBodyBytes    = 1 << 20
	DefaultShutdownTimeout = 10 * time.Second
	readHeaderTimeout      = 10 * time.Second
	requestTimeout         = 30 * time.Second
)

// Options configures a Server.
type Options struct {
	Logger         zerolog.Logger
	Profile        linkedinify.Profile // used when a request names none
	AllowedOrigins []string            // empty disables CORS
	MaxBodyBytes   int64               // 0 means DefaultMaxBodyBytes
	Version        string

	// LimitsFor returns the limits of a profile. Nil keeps Profile.Limits.
	LimitsFor func(linkedinify.Profile) linkedinify.Limits
}

// Server routes HTTP requests to one transcoder per profile.
// Transcoders are stateless, so a Server is safe for concurrent use.
type Server struct {
	logger         zerolog.Logger
	profile        linkedinify.Profile
	transcoders    map[linkedinify.Profile]*linkedinify.Transcoder
	allowedOrigins []string
	maxBodyBytes   int64
	version        string
	validation     *validation
	router         chi.Router
}

// New creates a Server. It panics if opts.Profile is not a known profile.
func New(opts Options) *Server {
	profile, err := linkedinify.ParseProfile(string(opts.Profile))
	if err != nil {
		panic("server: " + err.Error())
	}

	s := &Server{
		logger:         opts.Logger,
		profile:        profile,
		transcoders:    make(map[linkedinify.Profile]*linkedinify.Transcoder),
		allowedOrigins: opts.AllowedOrigins,
		maxBodyBytes:   opts.MaxBodyBytes,
		version:        opts.Version,
		validation:     newValidation(),
	}
	if s.maxBodyBytes <= 0 {
		s.maxBodyBytes = DefaultMaxBodyBytes
	}

	for _, p := range linkedinify.Profiles() {
		options := []linkedinify.Option{
			linkedinify.WithProfile(p),
			linkedinify.WithLogger(opts.Logger),
		}
		if opts.LimitsFor != nil {
			options = append(options, linkedinify.WithLimits(opts.LimitsFor(p)))
		}
		s.transcoders[p] = linkedinify.NewTranscoder(options...)
	}
	s.router = s.routes()
	return s
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(
		chimw.RequestID,
		chimw.RealIP,
		accessLog(s.logger),
		recoverJSON(s.logger),
		chimw.Timeout(requestTimeout),
	)
	if len(s.allowedOrigins) > 0 {
		r.Use(corsHandler(s.allowedOrigins))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "route not found", "")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", "")
	})

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/transcode", s.handleTranscode)
		r.Post("/preview", s.handlePreview)
		r.Post("/stats", s.handleStats)
	})
	return r
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", ln.Addr().String()).Msg("http listening")
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), DefaultShutdownTimeout)
	defer cancel()

	s.logger.Info().Msg("http shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// transcoderFor resolves a request profile name.
func (s *Server) transcoderFor(name string) (*linkedinify.Transcoder, error) {
	if name == "" {
		return s.transcoders[s.profile], nil
	}
	p, err := linkedinify.ParseProfile(name)
	if err != nil {
		return nil, err
	}
	return s.transcoders[p], nil
}
