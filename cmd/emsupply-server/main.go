package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/emsupply/emsupply/internal/config"
	"github.com/emsupply/emsupply/internal/domain/ledger"
	"github.com/emsupply/emsupply/internal/domain/pharmacy"
	"github.com/emsupply/emsupply/internal/domain/routing"
	"github.com/emsupply/emsupply/internal/domain/search"
	"github.com/emsupply/emsupply/internal/platform/middleware"
	"github.com/emsupply/emsupply/internal/platform/seed"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "emsupply-server",
		Short: "Emergency medicine locator and ordering API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(routesCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

// routesCmd prints every shortest route from the hospital over the seeded
// graph, handy for checking edge data without starting the server.
func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print shortest hospital routes over the seeded graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			graph, err := seededGraph()
			if err != nil {
				return err
			}
			for _, node := range graph.Nodes() {
				if node == "hospital" {
					continue
				}
				route, err := graph.ShortestPath("hospital", node)
				if err != nil {
					return err
				}
				if len(route.Nodes) == 0 {
					fmt.Printf("hospital -> %s: unreachable\n", node)
					continue
				}
				fmt.Printf("hospital -> %s: %v (%.1f km)\n", node, route.Nodes, route.DistanceKm)
			}
			return nil
		},
	}
}

func seededGraph() (*routing.Graph, error) {
	graph := routing.NewGraph(seed.RouteNodes()...)
	for _, e := range seed.RouteEdges() {
		if err := graph.SetEdgeWeight(e.From, e.To, e.WeightKm); err != nil {
			return nil, fmt.Errorf("seed route edge %s-%s: %w", e.From, e.To, err)
		}
	}
	return graph, nil
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	// In-memory state, seeded once and shared by reference for the whole
	// session. No ambient globals: everything is wired here.
	catalog := pharmacy.NewMemCatalog(seed.Pharmacies())
	records := ledger.NewMemLedger()
	graph, err := seededGraph()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to seed route graph")
	}
	logger.Info().Int("pharmacies", len(seed.Pharmacies())).Msg("catalog seeded")

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
	}))

	// API group
	apiV1 := e.Group("/api/v1")

	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	apiV1.Use(middleware.RateLimit(rateLimitCfg))

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	// Catalog domain
	catalogSvc := pharmacy.NewService(catalog)
	pharmacy.NewHandler(catalogSvc).RegisterRoutes(apiV1)

	// Search and ranking domain
	searchSvc := search.NewService(catalog)
	search.NewHandler(searchSvc).RegisterRoutes(apiV1)

	// Purchase ledger domain
	ledgerSvc := ledger.NewService(catalog, records)
	ledger.NewHandler(ledgerSvc).RegisterRoutes(apiV1)

	// Route graph domain
	routing.NewHandler(graph).RegisterRoutes(apiV1)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
