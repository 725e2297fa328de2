// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// ParseEnv loads configuration from the process environment.
func ParseEnv(target any) error {
	return ParseEnvFrom(target, env.ToMap(os.Environ()))
}

// ParseEnvFrom loads configuration from an explicit variable set instead of the
// process environment. Commands use it so tests never mutate global state.
func ParseEnvFrom(target any, vars map[string]string) error {
	if vars == nil {
		vars = map[string]string{}
	}
	if err := env.ParseWithOptions(target, env.Options{Environment: vars}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
