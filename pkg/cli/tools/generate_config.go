package tools

import (
	"context"
	"fmt"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"github.com/voicegw/voicegw/pkg/cli/config"
)

// CmdGenerateConfig returns the generate-config command
func CmdGenerateConfig() *cli.Command {
	return &cli.Command{
		Name:    "generate-config",
		Aliases: []string{"g"},
		Usage:   "Generate configuration file templates",
		Commands: []*cli.Command{
			cmdGenerateProviders(),
		},
	}
}

func cmdGenerateProviders() *cli.Command {
	var (
		outputPath string
		force      bool
	)

	return &cli.Command{
		Name:    "providers",
		Aliases: []string{"p"},
		Usage:   "Generate provider catalog template",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "Output file path",
				Value:       "providers.yaml",
				Destination: &outputPath,
			},
			&cli.BoolFlag{
				Name:        "force",
				Aliases:     []string{"f"},
				Usage:       "Overwrite existing file",
				Destination: &force,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger := ctxlog.From(ctx)

			if _, err := os.Stat(outputPath); err == nil && !force {
				return goerr.New("file already exists, use --force to overwrite", goerr.V("path", outputPath))
			}

			if err := config.GenerateConfigFile(outputPath); err != nil {
				return err
			}

			logger.Info("provider catalog template generated",
				"path", outputPath,
			)
			fmt.Printf("provider catalog template generated: %s\n", outputPath)

			return nil
		},
	}
}
