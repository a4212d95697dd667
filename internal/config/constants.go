package config

import "time"

const (
	envSeed         = "FIXTURES_SEED"
	envMatches      = "FIXTURES_MATCHES"
	envTableSize    = "FIXTURES_TABLE_SIZE"
	envWorkers      = "FIXTURES_WORKERS"
	envSquadSize    = "FIXTURES_SQUAD_SIZE"
	envSquadKeepers = "FIXTURES_SQUAD_KEEPERS"
	envOutput       = "FIXTURES_OUTPUT"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"
	envMetricsAddr  = "METRICS_ADDR"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelEnabled  = "OTEL_METRICS_ENABLED"
	envOtelInterval = "OTEL_EXPORT_INTERVAL"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	// Seed 0 asks the generator for a random seed.
	defaultSeed      = 0
	defaultMatches   = 10
	defaultTableSize = 20
	defaultWorkers   = 1
	// Squad shape matching a typical senior squad registration.
	defaultSquadSize    = 25
	defaultSquadKeepers = 3
	// "-" writes the dataset to stdout.
	defaultOutput    = "-"
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
	// OTLP push cadence when an endpoint is configured.
	defaultOtelInterval = 15 * Duration(time.Second)
	defaultOtelService  = "fixturegen"
)
