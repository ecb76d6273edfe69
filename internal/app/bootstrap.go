package app

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"job-board/internal/config"
	"job-board/internal/database/migration"
	"job-board/internal/database/seeder"
	"job-board/internal/delivery/http/middleware"
	"job-board/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	registerGlobalMiddleware(f, c)

	registry := routes.NewRegistry(c.Config, c.DB, c.Cache, c.Hub, c.Logger)
	registry.Register(f)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	if err := prepareDatabase(c); err != nil {
		_ = c.Close()
		return nil, nil, err
	}

	go c.Hub.Run()

	app := New(c)
	return app, c.Close, nil
}

func prepareDatabase(c *Container) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	runner := migration.Runner{Dir: strings.TrimSpace(os.Getenv("MIGRATIONS_DIR"))}
	if err := runner.Run(ctx, c.DB); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	seeders := seeder.Runner{Seeders: seeder.Defaults()}
	if err := seeders.Run(ctx, c.DB); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	return nil
}

func registerGlobalMiddleware(f *fiber.App, c *Container) {
	if f == nil {
		return
	}

	errMw := middleware.NewErrorMiddleware()
	f.Use(errMw.Middleware())

	accessLog := middleware.NewAccessLogMiddleware(c.Logger)
	f.Use(accessLog.Middleware())

	rateLimit := middleware.NewRateLimitMiddleware(c.Config.RateLimit.RPS, c.Config.RateLimit.Burst)
	f.Use(rateLimit.Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
