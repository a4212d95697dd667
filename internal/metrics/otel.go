package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

const defaultExportInterval = 15 * time.Second

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled        bool
	ServiceName    string
	OtlpEndpoint   string
	OtlpInsecure   bool
	ExportInterval time.Duration
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and optional OTLP exporter.
// It returns a Recorder, the Prometheus HTTP handler, and a shutdown function.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = "fixturegen"
	}
	if cfg.ExportInterval <= 0 {
		cfg.ExportInterval = defaultExportInterval
	}

	promReader, promHandler, err := promReaderFactory()
	if err != nil {
		return nil, nil, nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure, cfg.ExportInterval)
		if err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, nil, nil, err
	}

	rec := newRecorder(otelInst)
	shutdown := func(c context.Context) error {
		return provider.Shutdown(c)
	}

	return rec, promHandler, shutdown, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool, interval time.Duration) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(interval)), nil
}

type otelInstruments struct {
	ctx              context.Context
	meter            metric.Meter
	matches          metric.Int64Counter
	matchLatencyMs   metric.Float64Histogram
	events           metric.Int64Counter
	tableRows        metric.Int64Counter
	datasetBuilds    metric.Int64Counter
	datasetErrors    metric.Int64Counter
	datasetLatencyMs metric.Float64Histogram
}

func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter("fixturegen")
	ctx := context.Background()

	matches, err := meter.Int64Counter("matches_generated_total")
	if err != nil {
		return nil, err
	}
	matchLatency, err := meter.Float64Histogram("match_duration_ms")
	if err != nil {
		return nil, err
	}
	events, err := meter.Int64Counter("match_events_total")
	if err != nil {
		return nil, err
	}
	tableRows, err := meter.Int64Counter("table_rows_total")
	if err != nil {
		return nil, err
	}
	datasetBuilds, err := meter.Int64Counter("dataset_builds_total")
	if err != nil {
		return nil, err
	}
	datasetErrors, err := meter.Int64Counter("dataset_errors_total")
	if err != nil {
		return nil, err
	}
	datasetLatency, err := meter.Float64Histogram("dataset_duration_ms")
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		ctx:              ctx,
		meter:            meter,
		matches:          matches,
		matchLatencyMs:   matchLatency,
		events:           events,
		tableRows:        tableRows,
		datasetBuilds:    datasetBuilds,
		datasetErrors:    datasetErrors,
		datasetLatencyMs: datasetLatency,
	}, nil
}

func (o *otelInstruments) recordMatch(duration time.Duration) {
	if o == nil {
		return
	}
	o.recordCounter(o.matches, 1)
	o.recordHistogram(o.matchLatencyMs, float64(duration.Milliseconds()))
}

func (o *otelInstruments) recordEvents(kind string, count int) {
	if o == nil {
		return
	}
	o.recordCounter(o.events, int64(count), attribute.String(AttrKind, kind))
}

func (o *otelInstruments) recordTable(rows int) {
	if o == nil {
		return
	}
	o.recordCounter(o.tableRows, int64(rows))
}

func (o *otelInstruments) recordDataset(duration time.Duration, err error) {
	if o == nil {
		return
	}
	o.recordCounter(o.datasetBuilds, 1)
	o.recordHistogram(o.datasetLatencyMs, float64(duration.Milliseconds()))
	if err != nil {
		o.recordCounter(o.datasetErrors, 1)
	}
}

func (o *otelInstruments) recordCounter(counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	counter.Add(o.ctx, value, metric.WithAttributes(attrs...))
}

func (o *otelInstruments) recordHistogram(hist metric.Float64Histogram, value float64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	hist.Record(o.ctx, value, metric.WithAttributes(attrs...))
}
