package middleware

import (
	"log"
	"time"

	"skillmatrix/internal/metrics"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-ID"

// AccessLogMiddleware logs one line per request and feeds the request
// metrics. The route label is the matched route pattern, never the raw path.
type AccessLogMiddleware struct {
	logger  *log.Logger
	metrics *metrics.Metrics
}

func NewAccessLogMiddleware(logger *log.Logger, m *metrics.Metrics) *AccessLogMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &AccessLogMiddleware{logger: logger, metrics: m}
}

func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(HeaderRequestID, rid)

		err := c.Next()

		dur := time.Since(start)
		status := c.Response().StatusCode()
		method := c.Method()

		route := "unmatched"
		if r := c.Route(); r != nil && r.Path != "" {
			route = r.Path
		}
		m.metrics.ObserveHTTP(method, route, status, dur)

		m.logger.Printf(
			"[HTTP] access | rid=%s ip=%s method=%s path=%s route=%s status=%d latency=%s resp_bytes=%d ua=%q",
			rid, c.IP(), method, c.OriginalURL(), route, status, dur, len(c.Response().Body()), c.Get("User-Agent"),
		)

		return err
	}
}
