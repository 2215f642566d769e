package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	router "github.com/dkeye/rooms/internal/adapters/http"
	"github.com/dkeye/rooms/internal/adapters/rtc"
	sig "github.com/dkeye/rooms/internal/adapters/signal"
	"github.com/dkeye/rooms/internal/app"
	"github.com/dkeye/rooms/internal/app/notify"
	"github.com/dkeye/rooms/internal/app/orch"
	"github.com/dkeye/rooms/internal/config"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Initialize zerolog global logger early so config.Load can use it.
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	// Human-friendly output for terminal; in production you may want JSON only.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	zerolog.SetGlobalLevel(cfg.Level())

	hub := sig.NewHub()
	notifier := notify.NewHandler(hub)
	media := rtc.NewFactory(rtc.NewWebRTCConfig(cfg.ICEServers))
	store := app.NewStore(context.Background(), media, notifier)

	o := orch.New(store, notifier, app.SimplePolicy{MaxDropped: cfg.MaxDropped})
	hub.Pressure = o.OnBackPressure
	ctl := sig.NewSignalWSController(o, hub, cfg)

	r := router.SetupRouter(ctx, cfg, o, ctl)
	addr := fmt.Sprintf(":%d", cfg.Port)

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("Rooms server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	if err := o.Close(); err != nil {
		log.Error().Err(err).Msg("closing rooms")
	}
	log.Info().Msg("Server exited gracefully")
}
