package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/limbo/challenger/internal/service"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	mx                *chi.Mux
	mu                sync.Mutex
	srv               *http.Server
	challengesService service.ChallengesServiceI
	usersService      service.UsersServiceI
	jwtService        JWTServiceI
	db                Pinger
	limiter           *IPRateLimiter
	opts              Options
}

type ServicesList struct {
	ChallengesService service.ChallengesServiceI
	UsersService      service.UsersServiceI
	JwtService        JWTServiceI
	DB                Pinger
}

type Options struct {
	CORSOrigins     []string
	RateLimitRPS    float64
	RateLimitBurst  int
	MetricsUser     string
	MetricsPassword string
}

func New(servicesOptions *ServicesList, opts Options) *Server {
	s := &Server{
		mx:                chi.NewMux(),
		challengesService: servicesOptions.ChallengesService,
		usersService:      servicesOptions.UsersService,
		jwtService:        servicesOptions.JwtService,
		db:                servicesOptions.DB,
		opts:              opts,
	}
	if opts.RateLimitRPS > 0 {
		s.limiter = NewIPRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst)
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, s.MonitorMiddleware)
	if s.limiter != nil {
		s.mx.Use(s.RateLimitMiddleware)
	}
	s.mx.Get("/health", s.Health)
	s.mx.With(s.BasicAuthMiddleware).Handle("/metrics", promhttp.Handler())

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Get("/challenges/top", s.GetTopChallenges)
		r.Get("/challenges/ongoing", s.GetOngoingChallenges)
		r.Post("/challenges/{id}/status-check", s.CheckChallengeStatus)
		r.Get("/creators/{id}", s.GetCreatorDetails)
		r.Post("/creators/{id}/visits", s.TrackVisit)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Post("/auth/upsert-user", s.UpsertUser)
			r.Post("/challenges", s.CreateChallenge)
			r.Post("/tasks/{id}/complete", s.CompleteTask)
		})
	})
}

// Handler is the full middleware-wrapped router, CORS included.
func (s *Server) Handler() http.Handler {
	origins := s.opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(origins),
		gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)(s.mx)
}

func (s *Server) Run(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	s.mu.Lock()
	s.srv = srv
	s.mu.Unlock()
	if s.limiter != nil {
		go s.limiter.CleanupLoop(time.Minute, 3*time.Minute)
	}
	slog.Info("server started", slog.String("address", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.limiter != nil {
		s.limiter.Stop()
	}
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}
