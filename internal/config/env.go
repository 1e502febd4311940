// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

func parseEnv(cfg any) error {
	return parseEnvFrom(cfg, nil)
}

// parseEnvFrom reads cfg from environ, or from the process environment when
// environ is nil. Every offending variable is reported, not only the first.
func parseEnvFrom(cfg any, environ map[string]string) error {
	err := env.ParseWithOptions(cfg, env.Options{Environment: environ})
	if err == nil {
		return nil
	}

	var aggErr env.AggregateError
	if errors.As(err, &aggErr) && len(aggErr.Errors) > 0 {
		err = errors.Join(aggErr.Errors...)
	}

	return fmt.Errorf("error getting env configs: %w", err)
}
