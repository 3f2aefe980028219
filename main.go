// Command hotelops runs the hotel IT operations dashboard backend:
// REST API, realtime websocket feed and the background telemetry
// simulator over an in-memory store that is re-seeded on every start.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"hotelops/internal/config"
	"hotelops/internal/controllers"
	"hotelops/internal/logger"
	"hotelops/internal/metrics"
	"hotelops/internal/middleware"
	"hotelops/internal/routes"
	"hotelops/internal/services"
	"hotelops/internal/store"
)

var (
	cfgFile string

	rootCmd = &cobra.Command{
		Use:     "hotelops",
		Short:   "Hotel IT operations dashboard backend",
		Version: "1.0.0",
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the API server, realtime feed and telemetry simulator",
		RunE:  runServe,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml or /etc/hotelops/config.yaml)")
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	log := logger.New(&logger.Config{Level: logger.ParseLevel(cfg.Log.Level)})

	st := store.New()
	if err := store.Seed(st); err != nil {
		return fmt.Errorf("seeding store: %w", err)
	}

	auth := services.NewAuthService(st, cfg.Auth.Secret, cfg.Auth.TokenExpiry)
	overview := services.NewOverviewService(st)
	interp := services.NewHTTPInterpreter(cfg.Assistant.APIKey, cfg.Assistant.BaseURL, cfg.Assistant.Model)
	assistant := services.NewAssistantService(st, interp, log, cfg.Assistant.Timeout)
	hub := services.NewWebSocketHub(log, cfg.Realtime.PushInterval)

	sim := services.NewSimulator(st, log, cfg.Simulator.MutationInterval, cfg.Simulator.AlertChance)
	sim.Start()
	defer sim.Stop()

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(metrics.RequestMiddleware())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	routes.RegisterAuthRoutes(r, controllers.NewAuthController(auth))
	routes.RegisterDashboardRoutes(r,
		controllers.NewDashboardController(overview, st),
		controllers.NewAlertsController(st),
	)
	routes.RegisterAssistantRoutes(r, controllers.NewChatController(assistant, st))
	routes.RegisterRealtimeRoutes(r, controllers.NewWebSocketController(hub, overview, log))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("shutting down", "signal", sig.String())
	}

	hub.CloseAll()
	sim.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Info("server stopped")
	return nil
}
