// Command server runs the POAP registry HTTP API.
//
// @title POAP Registry API
// @version 0.1.0
// @description Proof-of-attendance events and badges.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"poapregistry/config"
	_ "poapregistry/docs"
	"poapregistry/internal/adapters/auth"
	"poapregistry/internal/adapters/email"
	"poapregistry/internal/adapters/metrics"
	httpdelivery "poapregistry/internal/delivery/http"
	"poapregistry/internal/delivery/http/controllers"
	"poapregistry/internal/delivery/http/middleware"
	"poapregistry/internal/domain"
	"poapregistry/internal/repository/memory"
	"poapregistry/internal/repository/postgres"
	redisstore "poapregistry/internal/repository/redis"
	"poapregistry/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := config.NewLogger(cfg)

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closer, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closer.Close()

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Mail.Provider,
		FromAddress: cfg.Mail.FromAddress,
		FromName:    cfg.Mail.FromName,
		SES: email.SESConfig{
			Region:             cfg.Mail.SESRegion,
			AccessKeyID:        cfg.Mail.SESAccessKeyID,
			SecretAccessKey:    cfg.Mail.SESSecretAccessKey,
			InsecureSkipVerify: cfg.Mail.SESInsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		return fmt.Errorf("mailer: %w", err)
	}

	addresses := auth.NewBech32Validator(cfg.AddressPrefix)
	m := metrics.New()
	contract := services.NewContractService(
		store,
		services.NewEventRegistry(),
		services.NewBadgeIssuer(addresses),
		services.NewCounterService(),
		services.NewEmailNotifier(mailer, email.NewTemplateRenderer(), cfg.Mail.Recipients),
		m,
		logger,
		cfg.RequestTimeout,
	)
	if err := instantiate(ctx, contract, cfg, logger); err != nil {
		return err
	}

	authService := services.NewAuthService(cfg.APIKeys, addresses, auth.NewBcryptHasher(auth.DefaultCost), auth.NewJWTIssuer(cfg.JWTSecret), cfg.JWTExpiry)
	router := httpdelivery.NewRouter(
		controllers.NewContractController(logger, contract),
		controllers.NewAuthController(logger, authService, cfg.JWTExpiry),
		middleware.RequireAuth(auth.NewJWTVerifier(cfg.JWTSecret), logger),
		m.Handler(),
	)
	var handler http.Handler = router
	handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)
	handler = middleware.LoggingMiddleware(logger, handler)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "store", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (domain.Store, io.Closer, error) {
	switch cfg.StoreDriver {
	case config.StorePostgres:
		if err := postgres.RunMigrations(logger, cfg.DBUrl, cfg.MigrationsPath); err != nil {
			return nil, nil, err
		}
		db, err := postgres.Open(ctx, cfg.DBUrl)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewKVStore(db), db, nil
	case config.StoreRedis:
		client, err := redisstore.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return redisstore.NewStore(client, redisstore.WithKeyPrefix(cfg.RedisKeyPrefix)), client, nil
	default:
		logger.Warn("using in-memory store, state is lost on restart")
		return memory.NewStore(), io.NopCloser(nil), nil
	}
}

// instantiate initialises contract state on first start; later starts find it in place.
func instantiate(ctx context.Context, contract domain.ContractService, cfg *config.Config, logger *slog.Logger) error {
	env := domain.Env{Time: uint64(time.Now().Unix()), Sender: cfg.AdminAddress}
	_, err := contract.Instantiate(ctx, env, domain.InstantiateMsg{Count: cfg.InitialCount})
	switch {
	case errors.Is(err, domain.ErrAlreadyInstantiated):
		logger.Info("contract already instantiated")
		return nil
	case err != nil:
		return fmt.Errorf("instantiate: %w", err)
	}
	logger.Info("contract instantiated", "contract", services.ContractName, "version", services.ContractVersion, "count", cfg.InitialCount)
	return nil
}
