package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"olexsmir.xyz/whenwords/internal/batch"
)

func (c *Cli) batchAction(ctx context.Context, cmd *cli.Command) error {
	var in io.Reader = c.in
	if path := cmd.Args().Get(0); path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	lines, err := batch.ReadLines(in)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	results, err := batch.NewWorker(c.cfg).Convert(ctx, lines)
	if err != nil {
		return err
	}

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(c.out, "error: %s\n", r.Err)
			continue
		}
		fmt.Fprintf(c.out, "%d\t%s\n", r.Seconds, r.Formatted)
	}
	return nil
}
