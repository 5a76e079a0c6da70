package tmpstorage

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type tracingProvider struct {
	base   Provider
	tracer trace.Tracer
}

// NewTracingProvider is a decorator for Provider that creates an
// OpenTelemetry trace span for every operation. Rejected allocations
// are recorded as span events, while failures mark the span as failed.
func NewTracingProvider(base Provider, tracerProvider trace.TracerProvider) Provider {
	return &tracingProvider{
		base:   base,
		tracer: tracerProvider.Tracer("github.com/buildbarn/bb-local-tmp-storage/pkg/tmpstorage"),
	}
}

func recordError(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

func (p *tracingProvider) TryGetLocalTmpStorage(ctx context.Context, identifier string, requestedSizeBytes int64) (string, bool, error) {
	ctxWithTracing, span := p.tracer.Start(ctx, "Provider.TryGetLocalTmpStorage", trace.WithAttributes(
		attribute.String("identifier", identifier),
		attribute.Int64("requested_size_bytes", requestedSizeBytes),
	))
	defer span.End()

	path, admitted, err := p.base.TryGetLocalTmpStorage(ctxWithTracing, identifier, requestedSizeBytes)
	if err != nil {
		recordError(span, err)
	} else if admitted {
		span.SetAttributes(attribute.String("path", path))
	} else {
		span.AddEvent("Rejected")
	}
	return path, admitted, err
}

func (p *tracingProvider) CleanupLocalTmpStorage(ctx context.Context, identifier string) error {
	ctxWithTracing, span := p.tracer.Start(ctx, "Provider.CleanupLocalTmpStorage", trace.WithAttributes(
		attribute.String("identifier", identifier),
	))
	defer span.End()

	err := p.base.CleanupLocalTmpStorage(ctxWithTracing, identifier)
	recordError(span, err)
	return err
}

func (p *tracingProvider) CleanupLocalTmpStorageInCaseOfUncleanShutdown(ctx context.Context) error {
	ctxWithTracing, span := p.tracer.Start(ctx, "Provider.CleanupLocalTmpStorageInCaseOfUncleanShutdown")
	defer span.End()

	err := p.base.CleanupLocalTmpStorageInCaseOfUncleanShutdown(ctxWithTracing)
	recordError(span, err)
	return err
}
