// @title Challenger API
// @description API for time-boxed challenges with tasks, creator profiles and visit tracking
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/limbo/challenger/internal/api"
	"github.com/limbo/challenger/internal/cache"
	"github.com/limbo/challenger/internal/metrics"
	"github.com/limbo/challenger/internal/repository"
	"github.com/limbo/challenger/internal/service"
	"github.com/limbo/challenger/pkg/cleanup"
	"github.com/limbo/challenger/pkg/config"
	"github.com/limbo/challenger/pkg/entity"
	jwtservice "github.com/limbo/challenger/pkg/jwt_service"
)

func init() {
	service.InitValidator()
	metrics.InitPrometheus()
}

func main() {
	cfg := config.New()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	pool := repository.NewPool(&cfg.Postgres, repository.PoolOptions{
		MaxConns:        cfg.Postgres.MaxConns,
		MinConns:        cfg.Postgres.MinConns,
		MaxConnLifetime: cfg.Postgres.MaxConnLifetime,
		MaxConnIdleTime: cfg.Postgres.MaxConnIdleTime,
	})
	creators := cache.New[uuid.UUID, *entity.CreatorDetails](cache.Options{
		TTL:      cfg.Cache.TTL,
		Capacity: cfg.Cache.Capacity,
	})
	cleanup.Register(&cleanup.Job{
		Name: "closing creator cache",
		F:    creators.Close,
	})

	clock := clockwork.NewRealClock()
	challengesService := service.NewChallengesService(repository.NewChallengesRepo(pool), creators, clock, slog.Default())
	usersService := service.NewUsersService(repository.NewUsersRepo(pool), repository.NewVisitsRepo(pool), creators, slog.Default())
	serv := api.New(&api.ServicesList{
		ChallengesService: challengesService,
		UsersService:      usersService,
		JwtService:        jwtservice.New(cfg.JWTSecret),
		DB:                pool,
	}, api.Options{
		CORSOrigins:     cfg.CORSOrigins,
		RateLimitRPS:    cfg.RateLimit.RPS,
		RateLimitBurst:  cfg.RateLimit.Burst,
		MetricsUser:     cfg.Metrics.User,
		MetricsPassword: cfg.Metrics.Password,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- serv.Run(cfg.APIAddress)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-stop:
		slog.Info("shutting down", slog.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			log.Println("Server error: " + err.Error())
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := serv.Shutdown(ctx); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("server shutdown error", slog.String("error", err.Error()))
	}
	cleanup.CleanUp()
}
