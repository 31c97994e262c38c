package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	PlansGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "study_plans_generated_total",
			Help: "Study plans generated, by cognitive profile and energy level",
		},
		[]string{"profile", "energy_level"},
	)

	PlanSlots = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "study_plan_slots",
			Help:    "Number of slots per generated study plan",
			Buckets: []float64{0, 1, 2, 4, 6, 8, 12, 16},
		},
	)

	PlanBuildDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "study_plan_build_duration_seconds",
			Help:    "Time spent building a study plan",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
		},
	)
)

var registerOnce sync.Once

func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(PlansGenerated)
		prometheus.MustRegister(PlanSlots)
		prometheus.MustRegister(PlanBuildDuration)
	})
}

// ObservePlan 记录一次计划生成
func ObservePlan(profile, energyLevel string, slots int, elapsed time.Duration) {
	PlansGenerated.WithLabelValues(profile, energyLevel).Inc()
	PlanSlots.Observe(float64(slots))
	PlanBuildDuration.Observe(elapsed.Seconds())
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		RequestCounter.WithLabelValues(
			c.Request.Method,
			endpoint,
			strconv.Itoa(c.Writer.Status()),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			endpoint,
		).Observe(time.Since(start).Seconds())
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
