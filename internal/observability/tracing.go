package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/CodeMasters-AiFactory/Stargate-sub019"

// Tracer returns the tracer used by the strategy pipeline. It resolves
// against the globally installed tracer provider, so callers that never
// install one get the noop tracer and pay no overhead.
func Tracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// StartStageSpan starts a span for a pipeline stage. The returned end
// function records the error (if any) and ends the span.
func StartStageSpan(ctx context.Context, stage string, attrs ...attribute.KeyValue) (context.Context, func(err error)) {
	ctx, span := Tracer().Start(ctx, "pipeline."+stage, trace.WithAttributes(attrs...))

	end := func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}

	return ctx, end
}
