package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v3"
	"olexsmir.xyz/whenwords/internal/config"
)

type Cli struct {
	cfg     *config.Config
	version string

	in  io.Reader
	out io.Writer
	now func() time.Time
}

func New(version string) *Cli {
	return &Cli{
		version: version,
		in:      os.Stdin,
		out:     os.Stdout,
		now:     time.Now,
	}
}

func (c *Cli) Run(ctx context.Context, args []string) error {
	cmd := &cli.Command{
		Name:                  "whenwords",
		Usage:                 "human-friendly times and durations",
		Version:               c.version,
		EnableShellCompletion: true,
		Writer:                c.out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to config file",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			loadedCfg, err := config.Load(cmd.String("config"))
			if errors.Is(err, config.ErrConfigNotFound) {
				slog.Debug("no config file, using defaults")
				loadedCfg, err = config.Default(), nil
			}
			if err != nil {
				return ctx, err
			}
			c.cfg = loadedCfg
			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:   "ago",
				Usage:  "describe a timestamp relative to the reference, e.g. \"3 hours ago\"",
				Action: c.agoAction,
				Flags:  []cli.Flag{refFlag()},
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "timestamp"},
				},
			},
			{
				Name:   "duration",
				Usage:  "format a number of seconds, e.g. \"2 hours, 30 minutes\"",
				Action: c.durationAction,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "compact",
						Usage: "use short unit codes (2h 30m)",
					},
					&cli.IntFlag{
						Name:  "max-units",
						Usage: "maximum number of units to show",
					},
				},
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "seconds"},
				},
			},
			{
				Name:   "parse",
				Usage:  "parse a human-written duration into seconds",
				Action: c.parseAction,
			},
			{
				Name:   "date",
				Usage:  "label a date relative to the reference, e.g. \"Last Friday\"",
				Action: c.dateAction,
				Flags:  []cli.Flag{refFlag()},
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "timestamp"},
				},
			},
			{
				Name:   "range",
				Usage:  "format the dates between two timestamps",
				Action: c.rangeAction,
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "start"},
					&cli.StringArg{Name: "end"},
				},
			},
			{
				Name:   "batch",
				Usage:  "parse and reformat one duration per line from a file or stdin",
				Action: c.batchAction,
			},
			{
				Name:   "serve",
				Usage:  "starts the http api",
				Action: c.serveAction,
			},
		},
	}
	return cmd.Run(ctx, args)
}

func refFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "ref",
		Usage: "reference timestamp (unix seconds or RFC 3339), defaults to now",
	}
}
