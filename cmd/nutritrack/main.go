package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/terraincognita07/nutritrack/internal/api"
	"github.com/terraincognita07/nutritrack/internal/cli"
	"github.com/terraincognita07/nutritrack/internal/config"
	"github.com/terraincognita07/nutritrack/internal/db"
	"github.com/terraincognita07/nutritrack/internal/integrations"
	"github.com/terraincognita07/nutritrack/internal/logging"
	"github.com/terraincognita07/nutritrack/internal/security"
	"go.uber.org/zap"
)

const (
	apiRequestsPerSecond = 10
	apiRequestBurst      = 30
	shutdownTimeout      = 10 * time.Second
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "reset-password" {
		if err := runResetPassword(os.Args[2:], os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "reset-password: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "nutritrack: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	time.Local = cfg.Location

	log, err := logging.Init(logging.ConfigFromEnv())
	if err != nil {
		return fmt.Errorf("logger init failed: %w", err)
	}
	defer func() {
		_ = log.Sync()
	}()

	database, err := db.OpenSQLite(cfg.DBPath, log)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	adminSecret, err := security.SealSecret(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("seal admin password: %w", err)
	}

	lifecycleCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	handler, err := api.NewHandler(database, api.HandlerOptions{
		SecretKey:    cfg.SecretKey,
		AdminSecret:  adminSecret,
		Location:     cfg.Location,
		CookieSecure: cfg.CookieSecure,
		Logger:       log,
		Upstreams:    buildUpstreams(lifecycleCtx, cfg, log),
	})
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "NutriTrack",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(api.RequestID(cfg.RequestIDNode))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} ${latency} ${method} ${path}\n",
	}))
	app.Use(compress.New())
	app.Use(api.RateLimit(apiRequestsPerSecond, apiRequestBurst, lifecycleCtx.Done()))
	api.RegisterRoutes(app, handler)

	go handler.PruneSessions(lifecycleCtx.Done(), time.Hour)
	go func() {
		<-lifecycleCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error("server shutdown failed", zap.Error(err))
		}
	}()

	log.Info("NutriTrack listening",
		zap.String("addr", "0.0.0.0:"+cfg.Port),
		zap.String("db", cfg.DBPath),
		zap.String("tz", cfg.Location.String()),
	)
	if err := app.Listen(":" + cfg.Port); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}

func buildUpstreams(ctx context.Context, cfg config.Config, log *zap.Logger) api.Upstreams {
	upstreams := api.Upstreams{
		Generator: integrations.NewGeminiClient(integrations.GeminiConfig{
			BaseURL: cfg.GeminiBaseURL,
			Model:   cfg.GeminiModel,
			APIKey:  cfg.GeminiAPIKey,
			Timeout: cfg.UpstreamTimeout,
		}),
		Fruits: integrations.NewFruityViceClient(cfg.FruityViceBaseURL, cfg.UpstreamTimeout),
		Images: integrations.NewPicsumClient(cfg.PicsumBaseURL, cfg.UpstreamTimeout),
	}

	notifier, err := integrations.NewFCMNotifier(ctx, cfg.FCMCredentialsFile)
	switch {
	case err == nil:
		upstreams.Notifier = notifier
	case cfg.FCMCredentialsFile == "":
		log.Info("push notifications disabled")
	default:
		log.Warn("push notifications unavailable", zap.Error(err))
	}
	return upstreams
}

func runResetPassword(args []string, out io.Writer) error {
	flags := flag.NewFlagSet("reset-password", flag.ContinueOnError)
	flags.SetOutput(out)
	prompt := flags.Bool("prompt", false, "read the new password from the terminal instead of generating one")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return errors.New("usage: nutritrack reset-password [-prompt] <user-id>")
	}

	return cli.RunResetPasswordCommand(config.DBPathFromEnv(), flags.Arg(0), cli.ResetPasswordOptions{
		Prompt: *prompt,
		Stdin:  os.Stdin,
		Out:    out,
	})
}
