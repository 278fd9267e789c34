package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"
	"olexsmir.xyz/whenwords/humanize"
)

func (c *Cli) agoAction(ctx context.Context, cmd *cli.Command) error {
	ts, ref, err := c.timestampAndRef(cmd)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, humanize.TimeAgo(ts, ref))
	return nil
}

func (c *Cli) dateAction(ctx context.Context, cmd *cli.Command) error {
	ts, ref, err := c.timestampAndRef(cmd)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, humanize.HumanDate(ts, ref))
	return nil
}

func (c *Cli) rangeAction(ctx context.Context, cmd *cli.Command) error {
	start, err := requiredTimestamp(cmd, "start")
	if err != nil {
		return err
	}
	end, err := requiredTimestamp(cmd, "end")
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, humanize.DateRange(start, end))
	return nil
}

func (c *Cli) durationAction(ctx context.Context, cmd *cli.Command) error {
	arg := cmd.StringArg("seconds")
	if arg == "" {
		return fmt.Errorf("no seconds provided")
	}

	seconds, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return fmt.Errorf("seconds must be an integer: %q", arg)
	}

	opts := humanize.DurationOptions{
		Compact:  c.cfg.Duration.Compact,
		MaxUnits: c.cfg.Duration.MaxUnits,
	}
	if cmd.IsSet("compact") {
		opts.Compact = cmd.Bool("compact")
	}
	if cmd.IsSet("max-units") {
		opts.MaxUnits = int(cmd.Int("max-units"))
		if opts.MaxUnits < 1 {
			return fmt.Errorf("max-units must be positive, got %d", opts.MaxUnits)
		}
	}

	out, err := humanize.Duration(seconds, opts)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, out)
	return nil
}

func (c *Cli) parseAction(ctx context.Context, cmd *cli.Command) error {
	secs, err := humanize.ParseDuration(strings.Join(cmd.Args().Slice(), " "))
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, secs)
	return nil
}

// timestampAndRef reads the "timestamp" argument and the --ref flag, falling
// back to the current time when --ref is not given.
func (c *Cli) timestampAndRef(cmd *cli.Command) (ts, ref humanize.Instant, err error) {
	if ts, err = requiredTimestamp(cmd, "timestamp"); err != nil {
		return ts, ref, err
	}

	r := cmd.String("ref")
	if r == "" {
		return ts, humanize.FromTime(c.now()), nil
	}
	if ref, err = humanize.ParseTimestamp(r); err != nil {
		return ts, ref, fmt.Errorf("--ref: %w", err)
	}
	return ts, ref, nil
}

func requiredTimestamp(cmd *cli.Command, name string) (humanize.Instant, error) {
	v := cmd.StringArg(name)
	if v == "" {
		return humanize.Instant{}, fmt.Errorf("no %s provided", name)
	}
	ts, err := humanize.ParseTimestamp(v)
	if err != nil {
		return ts, fmt.Errorf("%s: %w", name, err)
	}
	return ts, nil
}
