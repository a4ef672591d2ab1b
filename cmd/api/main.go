package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ayuu-te/studio-look/internal/config"
	"github.com/ayuu-te/studio-look/internal/domain/auth"
	"github.com/ayuu-te/studio-look/internal/pkg/cache"
	"github.com/ayuu-te/studio-look/internal/pkg/jwt"
	"github.com/ayuu-te/studio-look/internal/pkg/logger"
	"github.com/ayuu-te/studio-look/internal/pkg/password"
	"github.com/ayuu-te/studio-look/internal/realtime"
	"github.com/ayuu-te/studio-look/internal/seed"
	"github.com/ayuu-te/studio-look/internal/store"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg := config.Load()
	if err := logger.Init(logger.Config{Level: cfg.LogLevel, Environment: cfg.Env, LogFile: cfg.LogFile}); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize logger")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting studio-look API")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	redisClient, err := cache.NewRedis(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer cache.CloseRedis(redisClient)

	st := store.New()
	if cfg.SeedDemoData {
		ds, err := seed.Demo()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to parse demo data")
		}
		if err := seed.Load(ctx, st, ds, password.DefaultCost); err != nil {
			log.Fatal().Err(err).Msg("Failed to load demo data")
		}
	}

	// ---------- Realtime ----------
	hub := realtime.NewHub(redisClient, cfg.AllowedOrigins)
	go hub.Run()
	defer hub.Shutdown()

	// ---------- Auth ----------
	var denylist auth.Denylist
	if redisClient != nil {
		denylist = auth.NewRedisDenylist(redisClient)
	} else {
		memory := auth.NewMemoryDenylist()
		go memory.StartCleanup(ctx, time.Minute)
		denylist = memory
	}
	jwtService := jwt.NewService(cfg.JWTSecret, cfg.JWTTTL)

	r := newRouter(routerDeps{
		cfg:      cfg,
		store:    st,
		jwt:      jwtService,
		denylist: denylist,
		hub:      hub,
	})

	// WriteTimeout stays zero: gallery websockets are long-lived
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}
