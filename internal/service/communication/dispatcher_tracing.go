package communication

import (
	"context"

	"gitee.com/flycash/communication-platform/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracingDispatcher 为群发添加链路追踪的装饰器
type TracingDispatcher struct {
	dispatcher Dispatcher
	tracer     trace.Tracer
}

func NewTracingDispatcher(d Dispatcher) *TracingDispatcher {
	return &TracingDispatcher{
		dispatcher: d,
		tracer:     otel.Tracer("communication-platform/dispatcher"),
	}
}

func (t *TracingDispatcher) Send(ctx context.Context, caller domain.Caller, req domain.SendRequest) (domain.DispatchResult, error) {
	ctx, span := t.tracer.Start(ctx, "Dispatcher.Send",
		trace.WithAttributes(
			attribute.String("communication.sender", caller.SenderID()),
			attribute.String("communication.mode", req.Target.Mode),
			attribute.Bool("communication.includeAdmins", req.Target.IncludeAdmins),
		))
	defer span.End()

	res, err := t.dispatcher.Send(ctx, caller, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return res, err
	}
	span.SetAttributes(
		attribute.Int64("communication.id", res.Communication.ID),
		attribute.Int("communication.recipients", res.RecipientCount),
	)
	return res, nil
}
