package config

import (
	"errors"
	"fmt"
)

func (c Config) validate() error {
	var errs []error

	if err := checkPort(c.Server.Port); err != nil {
		errs = append(errs, fmt.Errorf("server.port %w", err))
	}

	if c.Duration.MaxUnits < 1 || c.Duration.MaxUnits > 6 {
		errs = append(errs, fmt.Errorf("duration.max_units must be between 1 and 6, got %d", c.Duration.MaxUnits))
	}

	if c.Batch.Workers < 1 {
		errs = append(errs, fmt.Errorf("batch.workers must be positive, got %d", c.Batch.Workers))
	}

	return errors.Join(errs...)
}

func checkPort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("must be between 1 and 65535, got %d", port)
	}
	return nil
}
