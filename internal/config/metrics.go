package config

import "time"

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	// Addr serves the Prometheus scrape endpoint while a run is in
	// flight; empty disables the listener.
	Addr           string
	OtelEnabled    bool
	OtlpEndpoint   string
	ExportInterval time.Duration
	ServiceName    string
	OtlpInsecure   bool
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Addr:           envOrDefault(envMetricsAddr, ""),
		OtelEnabled:    boolEnvOrDefault(envOtelEnabled, true),
		OtlpEndpoint:   envOrDefault(envOtelEndpoint, ""),
		ExportInterval: durationEnvOrDefault(envOtelInterval, defaultOtelInterval),
		ServiceName:    envOrDefault(envOtelService, defaultOtelService),
		OtlpInsecure:   boolEnvOrDefault(envOtelInsecure, true),
	}
}
