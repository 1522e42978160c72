package middleware

import (
	"fmt"
	"strconv"
	"time"

	"github.com/feedguard/feedguard/pkg/infra/prometheus"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type metricsMiddleware struct {
	logger *logrus.Logger
}

func NewMetricsMiddleware(logger *logrus.Logger) Middleware {
	return &metricsMiddleware{
		logger: logger,
	}
}

func (m *metricsMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := GetStatusClass(strconv.Itoa(c.Response().StatusCode()))
		prometheus.RequestTotal.WithLabelValues(c.Method(), status).Inc()
		prometheus.RequestLatency.WithLabelValues(c.Route().Path).Observe(float64(time.Since(start).Milliseconds()))

		return err
	}
}

// GetStatusClass returns the status code's class (e.g., "2xx")
func GetStatusClass(status string) string {
	code, err := strconv.Atoi(status)
	if err != nil {
		return "5xx"
	}
	return fmt.Sprintf("%dxx", code/100)
}
