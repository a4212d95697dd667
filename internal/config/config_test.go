package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Seed != defaultSeed {
		t.Fatalf("expected default seed %d, got %d", defaultSeed, cfg.Seed)
	}
	if cfg.Matches != defaultMatches {
		t.Fatalf("expected default matches %d, got %d", defaultMatches, cfg.Matches)
	}
	if cfg.TableSize != defaultTableSize {
		t.Fatalf("expected default table size %d, got %d", defaultTableSize, cfg.TableSize)
	}
	if cfg.Workers != defaultWorkers {
		t.Fatalf("expected default workers %d, got %d", defaultWorkers, cfg.Workers)
	}
	if cfg.SquadSize != defaultSquadSize || cfg.SquadKeepers != defaultSquadKeepers {
		t.Fatalf("expected default squad shape %d/%d, got %d/%d",
			defaultSquadSize, defaultSquadKeepers, cfg.SquadSize, cfg.SquadKeepers)
	}
	if cfg.Output != defaultOutput {
		t.Fatalf("expected default output %q, got %q", defaultOutput, cfg.Output)
	}
	if cfg.Log.Level != defaultLogLevel || cfg.Log.Format != defaultLogFormat {
		t.Fatalf("expected default log config, got %+v", cfg.Log)
	}
	if cfg.Metrics.Addr != "" {
		t.Fatalf("expected metrics listener disabled by default, got %q", cfg.Metrics.Addr)
	}
	if cfg.Metrics.ExportInterval != defaultOtelInterval {
		t.Fatalf("expected default export interval %s, got %s", defaultOtelInterval, cfg.Metrics.ExportInterval)
	}
	if cfg.Metrics.ServiceName != defaultOtelService {
		t.Fatalf("expected default service name %s, got %s", defaultOtelService, cfg.Metrics.ServiceName)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envSeed, "-42")
	t.Setenv(envMatches, "25")
	t.Setenv(envTableSize, "24")
	t.Setenv(envWorkers, "8")
	t.Setenv(envOutput, "data/fixtures.json")
	t.Setenv(envLogLevel, "debug")
	t.Setenv(envLogFormat, "json")
	t.Setenv(envMetricsAddr, ":9090")
	t.Setenv(envOtelEndpoint, "otel:4318")
	t.Setenv(envOtelInterval, "45s")

	cfg := Load()

	if cfg.Seed != -42 {
		t.Fatalf("expected seed -42, got %d", cfg.Seed)
	}
	if cfg.Matches != 25 {
		t.Fatalf("expected 25 matches, got %d", cfg.Matches)
	}
	if cfg.TableSize != 24 {
		t.Fatalf("expected table size 24, got %d", cfg.TableSize)
	}
	if cfg.Workers != 8 {
		t.Fatalf("expected 8 workers, got %d", cfg.Workers)
	}
	if cfg.Output != "data/fixtures.json" {
		t.Fatalf("expected output override, got %q", cfg.Output)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Fatalf("expected log overrides, got %+v", cfg.Log)
	}
	if cfg.Metrics.Addr != ":9090" {
		t.Fatalf("expected metrics addr override, got %q", cfg.Metrics.Addr)
	}
	if cfg.Metrics.OtlpEndpoint != "otel:4318" {
		t.Fatalf("expected otlp endpoint override, got %q", cfg.Metrics.OtlpEndpoint)
	}
	if cfg.Metrics.ExportInterval != 45*time.Second {
		t.Fatalf("expected export interval 45s, got %s", cfg.Metrics.ExportInterval)
	}
}

func TestLoadInvalidCountFallsBack(t *testing.T) {
	t.Setenv(envMatches, "not-a-number")

	cfg := Load()

	if cfg.Matches != defaultMatches {
		t.Fatalf("expected default matches on invalid value, got %d", cfg.Matches)
	}
}

func TestLoadNonPositiveCountFallsBack(t *testing.T) {
	t.Setenv(envWorkers, "0")

	cfg := Load()

	if cfg.Workers != defaultWorkers {
		t.Fatalf("expected default workers on non-positive value, got %d", cfg.Workers)
	}
}
