package otel

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/rotaract-dypcoe/landing/internal/platform/config"
)

// Options selects whether and where spans are exported.
type Options struct {
	Endpoint string `env:"OTEL_ENDPOINT"`
	Enabled  string `env:"OTEL_ENABLED"`
}

// LoadOptions reads tracing options from the environment.
func LoadOptions() (Options, error) {
	var opts Options
	if err := config.ParseEnv(&opts); err != nil {
		return Options{}, err
	}
	return opts, nil
}

func (o Options) active() bool {
	if strings.EqualFold(strings.TrimSpace(o.Enabled), "false") {
		return false
	}
	return strings.TrimSpace(o.Endpoint) != ""
}

// Setup initialises OpenTelemetry tracing for the given service using
// options from the environment.
//
// Tracing is opt-in: when ROTARACT_LANDING_OTEL_ENDPOINT is empty or
// ROTARACT_LANDING_OTEL_ENABLED is "false", Setup returns a no-op shutdown
// function and no global provider is registered.
func Setup(ctx context.Context, serviceName string) (shutdown func(context.Context) error, err error) {
	opts, err := LoadOptions()
	if err != nil {
		return func(context.Context) error { return nil }, err
	}
	return SetupWithOptions(ctx, serviceName, opts)
}

// SetupWithOptions is Setup with explicit options. The returned shutdown
// function flushes pending spans and should be deferred by the caller.
func SetupWithOptions(ctx context.Context, serviceName string, opts Options) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }
	if !opts.active() {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(strings.TrimSpace(opts.Endpoint)),
	)
	if err != nil {
		return noop, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return noop, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}
