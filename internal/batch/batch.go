// Package batch converts many duration expressions concurrently.
package batch

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/semaphore"
	"olexsmir.xyz/whenwords/humanize"
	"olexsmir.xyz/whenwords/internal/config"
)

// Result is the outcome for a single input line. Err is set when the line
// could not be parsed; Seconds and Formatted are then zero.
type Result struct {
	Line      string
	Seconds   int64
	Formatted string
	Err       error
}

type Worker struct {
	c *config.Config
}

func NewWorker(cfg *config.Config) *Worker {
	return &Worker{
		c: cfg,
	}
}

// Convert parses every line as a duration and re-renders it with the
// configured duration options. Results keep the order of lines. The returned
// error is only non-nil when ctx is cancelled before all lines are handled;
// per-line failures are reported in Result.Err.
func (w *Worker) Convert(ctx context.Context, lines []string) ([]Result, error) {
	results := make([]Result, len(lines))
	opts := humanize.DurationOptions{
		Compact:  w.c.Duration.Compact,
		MaxUnits: w.c.Duration.MaxUnits,
	}

	var wg sync.WaitGroup
	sem := semaphore.NewWeighted(int64(w.c.Batch.Workers))
	errCh := make(chan error, len(lines))

	for i, line := range lines {
		wg.Go(func() {
			if err := sem.Acquire(ctx, 1); err != nil {
				errCh <- err
				return
			}
			defer sem.Release(1)

			results[i] = convertLine(line, opts)
		})
	}

	wg.Wait()
	close(errCh)

	var errs []error
	for err := range errCh {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		slog.Error("batch: conversion interrupted", "lines", len(lines), "err", errs[0])
		return nil, errors.Join(errs...)
	}
	return results, nil
}

func convertLine(line string, opts humanize.DurationOptions) Result {
	r := Result{Line: line}

	secs, err := humanize.ParseDuration(line)
	if err != nil {
		r.Err = err
		return r
	}

	formatted, err := humanize.Duration(secs, opts)
	if err != nil {
		r.Err = err
		return r
	}

	r.Seconds = secs
	r.Formatted = formatted
	return r
}

// ReadLines returns the non-blank lines of r, skipping "#" comments.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, s.Err()
}
