package cmd

import (
	"context"
	"errors"
	"flag"
	"testing"
)

type testConfig struct {
	Address string `env:"ARENA_CMD_TEST_ADDRESS" envDefault:"127.0.0.1:8086"`
	Store   string `env:"ARENA_CMD_TEST_STORE" envDefault:"sqlite"`
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("ARENA_CMD_TEST_ADDRESS", "env:9000")
	t.Setenv("ARENA_CMD_TEST_STORE", "redis")

	cfg := testConfig{}
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	if err := ParseConfig(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	fs.StringVar(&cfg.Address, "http-addr", cfg.Address, "address")
	if err := ParseArgs(fs, []string{"-http-addr", "flag:9001"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfg.Address != "flag:9001" {
		t.Fatalf("Address = %q, want flag value", cfg.Address)
	}
	if cfg.Store != "redis" {
		t.Fatalf("Store = %q, want env value", cfg.Store)
	}
}

func TestParseConfigRejectsNilTarget(t *testing.T) {
	if err := ParseConfig[testConfig](nil); err == nil {
		t.Fatal("expected nil target error")
	}
}

func TestParseArgsRejectsNilParser(t *testing.T) {
	if err := ParseArgs(nil, []string{}); err == nil {
		t.Fatal("expected parse args to reject nil parser")
	}
}

func TestRunWithTelemetryRejectsMissingInputs(t *testing.T) {
	if err := RunWithTelemetry(context.Background(), "", func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected missing service error")
	}
	if err := RunWithTelemetry(context.Background(), ServiceWeb, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
}

func TestRunWithTelemetryReturnsRunError(t *testing.T) {
	t.Setenv("ARENA_OTEL_ENDPOINT", "")
	want := errors.New("boom")
	got := RunWithTelemetry(context.Background(), ServiceWeb, func(context.Context) error { return want })
	if !errors.Is(got, want) {
		t.Fatalf("RunWithTelemetry() = %v, want %v", got, want)
	}
}
