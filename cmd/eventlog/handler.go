package main

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/xiebiao/libraryapi/pkg/metrics"
	"github.com/xiebiao/libraryapi/pkg/mq"
)

// envelope 与event.Envelope同构，Data保留原始JSON
type envelope struct {
	Type       string          `json:"type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Data       json.RawMessage `json:"data"`
}

// handleDelivery 记录一条事件
// 消息体无法解析时直接确认，重新入队也不会成功
func handleDelivery(_ context.Context, d mq.Delivery) error {
	var env envelope
	if err := json.Unmarshal(d.Body, &env); err != nil {
		log.Error().Err(err).Str("routing_key", d.RoutingKey).Bytes("body", d.Body).Msg("invalid event")
		metrics.IncCounterVec(metrics.EventsConsumedTotal, map[string]string{"routing_key": d.RoutingKey, "result": "invalid"})
		return nil
	}

	log.Info().
		Str("routing_key", d.RoutingKey).
		Str("type", env.Type).
		Time("occurred_at", env.OccurredAt).
		RawJSON("data", env.Data).
		Msg("event")
	metrics.IncCounterVec(metrics.EventsConsumedTotal, map[string]string{"routing_key": d.RoutingKey, "result": "ok"})
	return nil
}
