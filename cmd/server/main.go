package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	authhandler "classroom/internal/auth/handler"
	"classroom/internal/auth/metrics"
	"classroom/internal/auth/password"
	"classroom/internal/auth/service"
	userstore "classroom/internal/auth/store/user"
	"classroom/internal/auth/token"
	"classroom/internal/course"
	"classroom/internal/discipline"
	httpapi "classroom/internal/http"
	"classroom/internal/platform/audit"
	"classroom/internal/platform/config"
	"classroom/internal/platform/httpserver"
	"classroom/internal/platform/logger"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New()

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		users       userstore.Store
		courses     course.Store
		disciplines discipline.Store
	)
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Error("open database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			log.Error("ping database", "error", err)
			os.Exit(1)
		}
		users = userstore.NewPostgres(db)
		courses = course.NewPostgresStore(db)
		disciplines = discipline.NewPostgresStore(db)
		log.Info("using postgres stores")
	} else {
		users = userstore.NewInMemoryStore()
		courses = course.NewInMemoryStore()
		disciplines = discipline.NewInMemoryStore()
		log.Warn("DATABASE_URL not set, using in-memory stores")
	}

	hasher, err := password.New(cfg.BcryptCost)
	if err != nil {
		log.Error("configure password hasher", "error", err)
		os.Exit(1)
	}
	codec := token.NewCodec(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	var publisher audit.Publisher = audit.Nop{}
	if len(cfg.KafkaBrokers) > 0 {
		kafka, err := audit.NewKafka(cfg.KafkaBrokers, cfg.AuditTopic, log)
		if err != nil {
			log.Error("connect audit publisher", "error", err)
			os.Exit(1)
		}
		defer kafka.Close()
		publisher = kafka
	}

	registry := prometheus.NewRegistry()
	authMetrics := metrics.New(registry)

	authService := service.New(users, codec, hasher, log, authMetrics, publisher)

	router := httpapi.NewRouter(httpapi.Deps{
		Auth:        authhandler.New(authService, log),
		Courses:     course.NewHandler(courses, log),
		Disciplines: discipline.NewHandler(disciplines, log),
		Validator:   codec,
		Registry:    registry,
		Logger:      log,
	})

	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
