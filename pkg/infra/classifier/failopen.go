package classifier

import (
	"context"
	"time"

	"github.com/feedguard/feedguard/pkg/domain/moderation"
	"github.com/feedguard/feedguard/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

// failOpenClient enforces the product policy that moderation is a value-add,
// not a publishing gate: any failure of the underlying client degrades to
// "treat as non-toxic, pass the text through unchanged".
type failOpenClient struct {
	inner  Client
	logger *logrus.Logger
}

// NewFailOpen wraps a Client so that Classify and Censor never return an
// error for transport, timeout, or payload failures. Empty input is still
// rejected; that is a caller contract violation, not a service failure.
func NewFailOpen(inner Client, logger *logrus.Logger) Client {
	return &failOpenClient{inner: inner, logger: logger}
}

func (c *failOpenClient) Classify(ctx context.Context, text string) (moderation.Verdict, error) {
	if text == "" {
		return moderation.Verdict{}, ErrEmptyInput
	}

	start := time.Now()
	verdict, err := c.inner.Classify(ctx, text)
	prometheus.ClassifierLatency.WithLabelValues("predict").
		Observe(float64(time.Since(start).Milliseconds()))

	if err != nil {
		prometheus.ClassifierCallsTotal.WithLabelValues("predict", "fail_open").Inc()
		c.logger.WithError(err).Warn("classification unavailable, falling back to safe default")
		return moderation.SafeDefault(text), nil
	}

	prometheus.ClassifierCallsTotal.WithLabelValues("predict", "ok").Inc()
	return verdict, nil
}

func (c *failOpenClient) Censor(
	ctx context.Context,
	text string,
	level moderation.CensorLevel,
) (string, error) {
	if text == "" {
		return "", ErrEmptyInput
	}

	start := time.Now()
	censored, err := c.inner.Censor(ctx, text, level)
	prometheus.ClassifierLatency.WithLabelValues("censor").
		Observe(float64(time.Since(start).Milliseconds()))

	if err != nil {
		prometheus.ClassifierCallsTotal.WithLabelValues("censor", "fail_open").Inc()
		c.logger.WithError(err).Warn("censoring unavailable, passing text through unchanged")
		return text, nil
	}

	prometheus.ClassifierCallsTotal.WithLabelValues("censor", "ok").Inc()
	return censored, nil
}
