package cli

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"github.com/voicegw/voicegw/pkg/cli/config"
	server "github.com/voicegw/voicegw/pkg/controller/http"
	"github.com/voicegw/voicegw/pkg/usecase"
)

func cmdServe() *cli.Command {
	var (
		addr         string
		providersCfg config.Providers
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Aliases:     []string{"a"},
			Sources:     cli.EnvVars("VOICEGW_ADDR"),
			Usage:       "Listen address (default: 127.0.0.1:8080)",
			Value:       "127.0.0.1:8080",
			Destination: &addr,
		},
	}
	flags = append(flags, providersCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Run server",
		Flags:   flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger := ctxlog.From(ctx)
			logger.Info("starting server",
				"addr", addr,
				"providers", providersCfg,
			)

			// Configure the provider adapter factory
			factory, err := providersCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure provider adapters")
			}

			// Create usecase
			uc := usecase.New(
				usecase.WithAdapterFactory(factory),
			)

			httpServer := http.Server{
				Addr:              addr,
				Handler:           server.New(server.WithAgentUseCases(uc)),
				ReadTimeout:       30 * time.Second,
				ReadHeaderTimeout: 10 * time.Second,
				BaseContext: func(l net.Listener) context.Context {
					return ctx
				},
			}

			errCh := make(chan error, 1)
			go func() {
				defer close(errCh)
				ctxlog.From(ctx).Info("server started", "addr", addr)
				if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case <-sigCh:
				ctxlog.From(ctx).Info("shutting down server...")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return httpServer.Shutdown(shutdownCtx)
			}
		},
	}
}
