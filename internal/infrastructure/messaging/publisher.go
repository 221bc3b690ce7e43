// Package messaging 领域事件的RabbitMQ实现
package messaging

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/xiebiao/libraryapi/internal/application/event"
	"github.com/xiebiao/libraryapi/internal/infrastructure/config"
	"github.com/xiebiao/libraryapi/pkg/circuitbreaker"
	"github.com/xiebiao/libraryapi/pkg/metrics"
	"github.com/xiebiao/libraryapi/pkg/mq"
)

const (
	exchangeType   = "topic"
	publishTimeout = 2 * time.Second
)

// broker 底层消息发布能力（*mq.Publisher）
type broker interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}

// RabbitPublisher 经过熔断器的事件发布者
// RabbitMQ不可用时熔断器打开，后续发布直接失败，不再等待超时
type RabbitPublisher struct {
	broker  broker
	breaker *circuitbreaker.CircuitBreaker
}

// NewRabbitPublisher 包装broker
func NewRabbitPublisher(b broker, breaker *circuitbreaker.CircuitBreaker) *RabbitPublisher {
	metrics.SetGaugeVec(metrics.CircuitBreakerState, map[string]string{"name": breaker.Name()}, float64(breaker.State()))
	breaker.SetStateChangeCallback(func(name string, from, to circuitbreaker.State) {
		log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state changed")
		metrics.SetGaugeVec(metrics.CircuitBreakerState, map[string]string{"name": name}, float64(to))
	})
	return &RabbitPublisher{broker: b, breaker: breaker}
}

// Publish 发布事件；熔断时返回circuitbreaker.ErrOpenState
func (p *RabbitPublisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	err := p.breaker.ExecuteContext(ctx, func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, publishTimeout)
		defer cancel()
		return p.broker.Publish(ctx, routingKey, payload)
	})

	result := metrics.ResultSuccess
	switch {
	case errors.Is(err, circuitbreaker.ErrOpenState):
		result = metrics.ResultRejected
	case err != nil:
		result = metrics.ResultFailure
	}
	metrics.IncCounterVec(metrics.EventsPublishedTotal, map[string]string{"routing_key": routingKey, "result": result})
	return err
}

// NewPublisher 按配置创建事件发布者
// mq.enabled=false时返回NopPublisher；连接失败时降级为NopPublisher并记录日志，不阻止服务启动
func NewPublisher(cfg *config.Config) (event.Publisher, func(), error) {
	if !cfg.MQ.Enabled {
		return event.NopPublisher{}, func() {}, nil
	}

	pub, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, exchangeType)
	if err != nil {
		log.Error().Err(err).Str("exchange", cfg.MQ.Exchange).Msg("event publisher disabled")
		return event.NopPublisher{}, func() {}, nil
	}

	breaker := circuitbreaker.NewCircuitBreaker("event-publisher", circuitbreaker.Config{
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts circuitbreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})

	cleanup := func() {
		if err := pub.Close(); err != nil {
			log.Error().Err(err).Msg("close event publisher")
		}
	}
	return NewRabbitPublisher(pub, breaker), cleanup, nil
}

// NewConsumer 创建订阅全部领域事件的消费者（cmd/eventlog使用）
func NewConsumer(cfg *config.Config) (*mq.Consumer, error) {
	return mq.NewConsumer(cfg.MQ.URL, cfg.MQ.Exchange, exchangeType, cfg.MQ.Queue, event.RoutingKeys)
}
