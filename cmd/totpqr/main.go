package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/totpqr/modules/authenticator"
	"github.com/dmitrymomot/totpqr/pkg/config"
	"github.com/dmitrymomot/totpqr/pkg/environment"
	"github.com/dmitrymomot/totpqr/pkg/heartbeat"
	"github.com/dmitrymomot/totpqr/pkg/httpserver"
	"github.com/dmitrymomot/totpqr/pkg/logger"
	"github.com/dmitrymomot/totpqr/pkg/requestid"
	"github.com/dmitrymomot/totpqr/pkg/totp"
)

type appConfig struct {
	Name   string `env:"APP_NAME" envDefault:"totpqr"`
	Env    string `env:"APP_ENV" envDefault:"development"`
	Secret string `env:"TOTP_SECRET"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("totpqr stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var (
		app     appConfig
		srvCfg  httpserver.Config
		beatCfg heartbeat.Config
		authCfg authenticator.Config
	)
	if err := errors.Join(
		config.Load(&app),
		config.Load(&srvCfg),
		config.Load(&beatCfg),
		config.Load(&authCfg),
	); err != nil {
		return err
	}

	env := environment.Parse(app.Env)
	log := logger.New(
		logger.WithEnvironment(string(env), app.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	secret, err := processSecret(app.Secret, authCfg.TOTP.SecretSize)
	if err != nil {
		return err
	}

	svc, err := authenticator.NewService(authCfg, secret, authenticator.WithLogger(log))
	if err != nil {
		return err
	}
	uri, err := svc.ProvisioningURI(secret)
	if err != nil {
		return err
	}
	// Printed once so the secret can be pinned with TOTP_SECRET on restart.
	log.InfoContext(ctx, "process secret ready",
		logger.Component("bootstrap"),
		slog.String("secret", secret.String()),
		slog.String("uri", uri),
	)

	beat, err := heartbeat.New(func(ctx context.Context, _ time.Time) error {
		code, err := svc.Current(secret)
		if err != nil {
			return err
		}
		log.InfoContext(ctx, "current code",
			logger.Code(code.Code),
			slog.Int("expires_in", code.ExpiresIn),
		)
		return nil
	}, append(heartbeat.FromConfig(beatCfg),
		heartbeat.WithLogger(log),
		heartbeat.WithName("code-ticker"),
	)...)
	if err != nil {
		return err
	}

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		environment.Middleware(env),
		middleware.RealIP,
		middleware.Recoverer,
	)
	r.Mount("/", svc.Handle())

	srv := httpserver.NewFromConfig(srvCfg, httpserver.WithLogger(log))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := beat.Run(ctx); !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		defer func() { _ = srv.Shutdown(context.WithoutCancel(ctx)) }()
		return srv.Run(ctx, r)
	})
	return g.Wait()
}

// processSecret decodes the configured secret or generates a fresh one.
func processSecret(encoded string, size int) (totp.Secret, error) {
	if encoded != "" {
		return totp.DecodeBase32(encoded)
	}
	return totp.GenerateSecret(size)
}
