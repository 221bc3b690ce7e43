// Package metrics 基于Prometheus的指标定义
//
// 指标在包初始化时通过promauto注册到默认Registry，/metrics端点用promhttp.Handler()暴露。
//
// 命名规范：
//   - Counter以 _total 结尾
//   - Histogram以单位结尾（_seconds）
//   - 标签只使用有限取值（method、status、result），不要用id作为标签
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 结果标签取值
const (
	ResultSuccess  = "success"
	ResultFailure  = "failure"
	ResultRejected = "rejected"
	ResultInvalid  = "invalid"
)

var (
	// HTTPRequestsTotal HTTP请求总数
	// 标签：method、path（路由模板，如 /api/v1/books/:id）、status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration HTTP请求耗时
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP请求耗时（秒）",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "path"},
	)

	// HTTPRequestsInProgress 正在处理的HTTP请求数
	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "正在处理的HTTP请求数",
		},
	)

	AuthorsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "library_authors_created_total",
			Help: "作者创建总数",
		},
	)

	AuthorsDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "library_authors_deleted_total",
			Help: "作者删除总数",
		},
	)

	BooksCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "library_books_created_total",
			Help: "图书创建总数",
		},
	)

	// BookPatchesTotal 图书局部更新次数
	// 标签：result（success/invalid/failure）
	BookPatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "library_book_patches_total",
			Help: "图书JSON Patch请求总数",
		},
		[]string{"result"},
	)

	CommentsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "library_comments_created_total",
			Help: "评论创建总数",
		},
	)

	// EventsPublishedTotal 领域事件发布总数
	// 标签：routing_key、result（success/failure/rejected）
	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "library_events_published_total",
			Help: "领域事件发布总数",
		},
		[]string{"routing_key", "result"},
	)

	// EventsConsumedTotal 事件日志消费者处理的消息数
	EventsConsumedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "library_events_consumed_total",
			Help: "领域事件消费总数",
		},
		[]string{"routing_key", "result"},
	)

	// CircuitBreakerState 熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）",
		},
		[]string{"name"},
	)
)

// IncCounter 递增计数器
func IncCounter(counter prometheus.Counter) {
	counter.Inc()
}

// IncCounterVec 递增带标签的计数器
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	counter.With(labels).Inc()
}

func IncGauge(gauge prometheus.Gauge) {
	gauge.Inc()
}

func DecGauge(gauge prometheus.Gauge) {
	gauge.Dec()
}

func SetGaugeVec(gauge *prometheus.GaugeVec, labels map[string]string, value float64) {
	gauge.With(labels).Set(value)
}

func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	histogram.With(labels).Observe(value)
}
