package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shubh-37/website-section-generator/config"
	"github.com/shubh-37/website-section-generator/internal/agents"
	"github.com/shubh-37/website-section-generator/internal/database"
	"github.com/shubh-37/website-section-generator/internal/logging"
	"github.com/shubh-37/website-section-generator/internal/metrics"
	"github.com/shubh-37/website-section-generator/internal/server"
	"github.com/shubh-37/website-section-generator/internal/service"
	slackpkg "github.com/shubh-37/website-section-generator/internal/slack"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig()
			if port != "" {
				cfg.Port = port
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("configuration error: %w", err)
			}

			logger, err := logging.New(cfg.Environment, cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			if cfg.EnvFileErr != nil {
				logger.Info("no .env file found, using environment variables")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, logger)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "port to listen on (overrides PORT)")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	logger.Info("website section generator starting",
		zap.String("environment", cfg.Environment),
		zap.String("port", cfg.Port),
	)

	collector := metrics.NewCollector("sitegen")

	store := database.Open(ctx, database.Options{
		URL:              cfg.DatabaseURL,
		DatabaseName:     cfg.DatabaseName,
		OperationTimeout: cfg.StoreTimeout,
		ConnectTimeout:   cfg.StoreConnectTimeout,
		Mongo: database.MongoTimeouts{
			ServerSelection: cfg.MongoServerSelectionTimeout,
			Connect:         cfg.MongoConnectTimeout,
			Socket:          cfg.MongoSocketTimeout,
		},
	}, logger.Named("store"), database.WithFallbackHook(collector.RecordFallback))
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			logger.Warn("failed to close store", zap.Error(err))
		}
	}()

	generator := agents.NewContentGeneratorAgent(agents.NewCategorizerAgent())
	svcOpts := []service.Option{service.WithRecorder(collector)}
	serverOpts := []server.Option{server.WithAllowedOrigins(cfg.CORSAllowedOrigins)}

	var slackClient *slackpkg.Client
	if cfg.SlackEnabled() {
		slackLogger := logger.Named("slack")
		client, err := slackpkg.NewClient(ctx, cfg.SlackToken, slackLogger)
		if err != nil {
			logger.Warn("slack disabled", zap.Error(err))
		} else {
			slackClient = client
			if cfg.SlackChannelID != "" {
				svcOpts = append(svcOpts, service.WithNotifier(slackpkg.NewNotifier(client, cfg.SlackChannelID)))
			}
		}
	}

	svc := service.NewGeneratorService(store, generator, logger.Named("service"), svcOpts...)

	if slackClient != nil {
		slackLogger := logger.Named("slack")
		serverOpts = append(serverOpts,
			server.WithSlackCommands(slackpkg.NewCommandHandler(svc, cfg.SlackSigningSecret, slackLogger)),
			server.WithSlackEvents(slackpkg.NewEventHandler(slackClient, svc, cfg.SlackSigningSecret, slackLogger)),
		)
	}

	srv := server.NewServer(svc, collector, logger.Named("http"), serverOpts...)
	if err := srv.Run(ctx, cfg.Port); err != nil {
		return fmt.Errorf("http server: %w", err)
	}

	logger.Info("shut down gracefully")
	return nil
}
