// Package cmd holds the startup plumbing shared by arena commands.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/arenahq/arena/internal/platform/config"
	"github.com/arenahq/arena/internal/platform/otel"
	"github.com/arenahq/arena/internal/platform/timeouts"
)

// ServiceWeb names the browser-facing web command for telemetry and logs.
const ServiceWeb = "web"

// ParseConfig loads environment defaults into cfg. Callers register flags
// seeded from cfg afterwards and call ParseArgs, so flags win over env.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnv(cfg)
}

// ParseArgs parses command-line flags.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// RunWithTelemetry installs the tracer provider for service, runs it and
// flushes spans once run returns.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return fmt.Errorf("service name is required")
	}
	if run == nil {
		return fmt.Errorf("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	shutdown, err := otel.Setup(ctx, service)
	if err != nil {
		return fmt.Errorf("setup telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := shutdown(flushCtx); err != nil {
			log.Printf("otel shutdown service=%s err=%v", service, err)
		}
	}()

	started := time.Now()
	log.Printf("service starting service=%s", service)
	err = run(ctx)
	log.Printf("service stopped service=%s uptime=%s err=%v", service, time.Since(started).Round(time.Second), err)
	return err
}
