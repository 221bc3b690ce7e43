// eventlog 订阅全部领域事件并写入结构化日志，用于审计和排查
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/xiebiao/libraryapi/internal/infrastructure/config"
	"github.com/xiebiao/libraryapi/internal/infrastructure/messaging"
	"github.com/xiebiao/libraryapi/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("加载配置失败")
	}
	logger.Init(logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})

	consumer, err := messaging.NewConsumer(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("创建消费者失败")
	}
	defer func() {
		if err := consumer.Close(); err != nil {
			log.Error().Err(err).Msg("关闭消费者失败")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info().Str("exchange", cfg.MQ.Exchange).Str("queue", cfg.MQ.Queue).Msg("事件日志启动")
	if err := consumer.Consume(ctx, handleDelivery); err != nil {
		log.Error().Err(err).Msg("消费中断")
		os.Exit(1)
	}
}
