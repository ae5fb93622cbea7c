package cli

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"github.com/voicegw/voicegw/pkg/cli/config"
	"github.com/voicegw/voicegw/pkg/utils/errors"
)

func Run(ctx context.Context, args []string) error {
	var (
		loggerCfg   config.Logger
		closeLogger func()
	)
	app := &cli.Command{
		Name:  "voicegw",
		Usage: "Unified voice agent creation gateway",
		Flags: loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := loggerCfg.Configure()
			if err != nil {
				return ctx, err
			}
			closeLogger = closer

			ctx = ctxlog.With(ctx, logger)
			ctxlog.From(ctx).Info("base options", "logger", loggerCfg)
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if closeLogger != nil {
				closeLogger()
			}
			return nil
		},
		Commands: []*cli.Command{
			cmdServe(),
			cmdTool(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		errors.Handle(ctx, goerr.Wrap(err, "failed to run app"))
		return err
	}

	return nil
}
