package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/i474232898/weather-report/internal/api/http"
	"github.com/i474232898/weather-report/internal/config"
	"github.com/i474232898/weather-report/internal/scheduler"
	"github.com/i474232898/weather-report/internal/store"
	"github.com/i474232898/weather-report/internal/weather"
	"github.com/i474232898/weather-report/internal/weather/sources"
)

const usage = `usage:
  weather-report <file.csv>   print the overview and daily summary for a dataset
  weather-report serve        run the HTTP API over WEATHER_SOURCES`

func main() {
	if len(os.Args) > 1 && os.Args[1] != "serve" {
		if os.Args[1] == "-h" || os.Args[1] == "--help" {
			fmt.Println(usage)
			return
		}
		if err := printReport(os.Stdout, os.Args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "weather-report: %v\n", err)
			os.Exit(1)
		}
		return
	}

	serve()
}

// printReport writes the overview followed by the daily summary for the CSV at path.
// Nothing is written unless both summaries could be generated.
func printReport(w io.Writer, path string) error {
	ds, err := weather.LoadFile(path)
	if err != nil {
		return err
	}

	overview, err := weather.GenerateOverview(ds)
	if err != nil {
		return err
	}
	daily, err := weather.GenerateDaily(ds)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, overview, daily)
	return err
}

func serve() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for remote sources.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// In-memory store with configured retention.
	memStore := store.NewMemoryStore(cfg.StoreMaxHistory, cfg.StoreMaxAge)

	// Core service orchestrating sources and store.
	service := weather.NewService(memStore, sources.NewAll(cfg.Sources, httpClient))

	// Scheduler that periodically reloads sources and regenerates reports.
	sched := scheduler.New(cfg.RefreshInterval, service)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "weather-report",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler:          httpapi.ErrorHandler,
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weather-report",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, service)

	go func() {
		log.Printf("INFO: listening on :%s with %d source(s)", cfg.Port, len(cfg.Sources))
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
