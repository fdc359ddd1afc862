package communication

import (
	"context"
	"errors"
	"time"

	"gitee.com/flycash/communication-platform/internal/domain"
	"gitee.com/flycash/communication-platform/internal/errs"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsDispatcher 为群发添加指标收集的装饰器
type MetricsDispatcher struct {
	dispatcher       Dispatcher
	dispatchCounter  *prometheus.CounterVec
	recipientCounter prometheus.Counter
	durationSummary  prometheus.Summary
}

func NewMetricsDispatcher(d Dispatcher, reg prometheus.Registerer) *MetricsDispatcher {
	dispatchCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "communication_dispatch_total",
			Help: "群发次数，按结果分类",
		},
		[]string{"outcome"},
	)
	recipientCounter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "communication_dispatch_recipients_total",
		Help: "成功投递的收件人总数",
	})
	durationSummary := prometheus.NewSummary(prometheus.SummaryOpts{
		Name:       "communication_dispatch_duration_seconds",
		Help:       "群发耗时统计（秒）",
		Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		MaxAge:     time.Minute * 5,
	})
	reg.MustRegister(dispatchCounter, recipientCounter, durationSummary)

	return &MetricsDispatcher{
		dispatcher:       d,
		dispatchCounter:  dispatchCounter,
		recipientCounter: recipientCounter,
		durationSummary:  durationSummary,
	}
}

func (m *MetricsDispatcher) Send(ctx context.Context, caller domain.Caller, req domain.SendRequest) (domain.DispatchResult, error) {
	start := time.Now()
	res, err := m.dispatcher.Send(ctx, caller, req)
	m.durationSummary.Observe(time.Since(start).Seconds())

	m.dispatchCounter.WithLabelValues(outcome(err)).Inc()
	if err == nil {
		m.recipientCounter.Add(float64(res.RecipientCount))
	}
	return res, err
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, errs.ErrValidation):
		return "validation_error"
	case errors.Is(err, errs.ErrInvalidTarget):
		return "invalid_target"
	case errors.Is(err, errs.ErrNoRecipients):
		return "no_recipients"
	default:
		return "internal_error"
	}
}
