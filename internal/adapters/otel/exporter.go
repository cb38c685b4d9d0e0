// Package otel exports hook invocation metrics to an OTLP collector.
package otel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/charlesmsiegel/claude-tooling/internal/config"
	"github.com/charlesmsiegel/claude-tooling/internal/domain"
)

const (
	serviceName    = "claude-tooling"
	serviceVersion = "1.0.0"
)

// Exporter exports hook invocation metrics to an OTEL Collector.
type Exporter struct {
	provider         *sdkmetric.MeterProvider
	meter            metric.Meter
	invocationsTotal metric.Int64Counter
	durationHist     metric.Float64Histogram
}

// NewExporter creates a new OTEL metrics exporter.
func NewExporter(ctx context.Context, cfg config.OTel) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, fmt.Errorf("OTEL exporter is disabled or endpoint not configured")
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	invocationsTotal, err := meter.Int64Counter(
		"claude_tooling_hook_invocations_total",
		metric.WithDescription("Total hook invocations by hook and action"),
		metric.WithUnit("{invocation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating invocations counter: %w", err)
	}

	durationHist, err := meter.Float64Histogram(
		"claude_tooling_hook_duration_seconds",
		metric.WithDescription("External tool run duration per hook"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration histogram: %w", err)
	}

	return &Exporter{
		provider:         provider,
		meter:            meter,
		invocationsTotal: invocationsTotal,
		durationHist:     durationHist,
	}, nil
}

// ExportInvocation records metrics for a completed hook run.
func (e *Exporter) ExportInvocation(ctx context.Context, inv *domain.Invocation) error {
	attrs := []attribute.KeyValue{
		attribute.String("hook", inv.Hook),
		attribute.String("action", inv.Action),
		attribute.String("tool", inv.Tool),
	}
	opt := metric.WithAttributes(attrs...)

	e.invocationsTotal.Add(ctx, 1, opt)
	e.durationHist.Record(ctx, inv.Duration.Seconds(), opt)

	return nil
}

// Close shuts down the exporter and flushes any pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
