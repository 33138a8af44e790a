package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	firebase "firebase.google.com/go/v4"
	"github.com/IBM/sarama"
	"google.golang.org/api/option"

	httpadapter "github.com/SamuelUes/rundi-platform/internal/adapter/http"
	"github.com/SamuelUes/rundi-platform/internal/adapter/identity"
	"github.com/SamuelUes/rundi-platform/internal/adapter/kafka"
	"github.com/SamuelUes/rundi-platform/internal/adapter/postgres"
	"github.com/SamuelUes/rundi-platform/internal/adapter/push"
	"github.com/SamuelUes/rundi-platform/internal/adapter/usecase"
	"github.com/SamuelUes/rundi-platform/internal/config"
	"github.com/SamuelUes/rundi-platform/internal/config/configs"
	"github.com/SamuelUes/rundi-platform/internal/core/domain"
	"github.com/SamuelUes/rundi-platform/internal/core/port"
	"github.com/SamuelUes/rundi-platform/internal/db"
	"github.com/SamuelUes/rundi-platform/internal/metrics"
)

// main is the entry point of the campaign service. It loads configuration,
// optionally runs database migrations, wires repositories, transports and
// use cases, then starts the HTTP server. On receiving a termination signal
// it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := slog.New(cfg.Log.NewHandler(os.Stdout)).With(slog.String("env", cfg.Env))

	metrics.Init()

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo data seeded")
		}
	}

	var app *firebase.App
	if cfg.Auth.Provider == configs.AuthProviderFirebase || cfg.Push.Transport == configs.PushTransportFCM {
		if app, err = newFirebaseApp(ctx, cfg.Firebase); err != nil {
			logger.Error("firebase init error", slog.Any("error", err))
			return
		}
	}

	var verifier port.IdentityVerifier
	switch cfg.Auth.Provider {
	case configs.AuthProviderFirebase:
		client, err := app.Auth(ctx)
		if err != nil {
			logger.Error("firebase auth error", slog.Any("error", err))
			return
		}
		verifier = identity.NewFirebaseVerifier(client)
	default:
		verifier = identity.NewJWTVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)
	}

	var sender port.PushSender
	switch cfg.Push.Transport {
	case configs.PushTransportFCM:
		client, err := app.Messaging(ctx)
		if err != nil {
			logger.Error("firebase messaging error", slog.Any("error", err))
			return
		}
		sender = push.NewFCMSender(client)
	default:
		sender = push.NewLogSender(logger)
	}

	var publisher port.DeliveryPublisher
	if cfg.Kafka.Enabled() {
		producer, err := sarama.NewAsyncProducer(cfg.Kafka.Brokers, kafka.NewConfig("rundi-campaigns"))
		if err != nil {
			logger.Error("kafka producer error", slog.Any("error", err))
			return
		}
		p := kafka.NewDeliveryPublisher(producer, cfg.Kafka.Topic, logger)
		p.Start()
		defer p.Close()
		publisher = p
	}

	campaigns := postgres.NewCampaignRepository(pool)
	tokens := postgres.NewTokenRepository(pool)

	campaignSvc := usecase.NewCampaignUseCase(
		campaigns,
		postgres.NewLegacyCampaignRepository(pool),
		usecase.NewTokenCollector(tokens, nil),
		usecase.NewBatchDeliverer(sender, cfg.Push.BatchSize, logger),
		publisher,
		logger,
		usecase.CampaignOptions{
			ListLimit: cfg.Campaign.ListLimit,
			Payload: domain.PayloadOptions{
				ExpiresIn:        cfg.Push.ExpiresIn,
				AndroidChannelID: cfg.Push.AndroidChannelID,
			},
		},
	)
	tokenSvc := usecase.NewTokenRegistrar(tokens)
	authorizer := usecase.NewAdminAuthorizer(verifier, postgres.NewActorRepository(pool))

	handler := httpadapter.NewHandler(campaignSvc, tokenSvc, authorizer, logger, httpadapter.Options{
		RequestTimeout: cfg.HTTP.RequestTimeout,
	})
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	exitCode = 0

	// In-flight sends must finish recording before the deferred pool and
	// publisher closes run.
	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.GracePeriod())
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}

func newFirebaseApp(ctx context.Context, cfg configs.Firebase) (*firebase.App, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	var fbCfg *firebase.Config
	if cfg.ProjectID != "" {
		fbCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}
	return firebase.NewApp(ctx, fbCfg, opts...)
}
