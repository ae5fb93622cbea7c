package cli

import (
	"github.com/urfave/cli/v3"
	"github.com/voicegw/voicegw/pkg/cli/tools"
)

func cmdTool() *cli.Command {
	return &cli.Command{
		Name:    "tool",
		Aliases: []string{"t"},
		Usage:   "Utility tools",
		Commands: []*cli.Command{
			tools.CmdGenerateConfig(),
		},
	}
}
