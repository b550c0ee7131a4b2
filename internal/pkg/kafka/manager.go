package kafka

import (
	"Limelight/internal/api/config"
	"Limelight/internal/service"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ConsumerManager 管理所有 Kafka 消费者
type ConsumerManager struct {
	impressionConsumer sarama.ConsumerGroup
	impressionHandler  sarama.ConsumerGroupHandler
}

// NewConsumerManager 构造函数
func NewConsumerManager(
	cfg *config.Config,
	impressionSvc service.ImpressionService,
) (*ConsumerManager, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	impressionConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaImpressionConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	impressionHandler := NewImpressionHandler(impressionSvc)

	return &ConsumerManager{
		impressionConsumer: impressionConsumer,
		impressionHandler:  impressionHandler,
	}, nil
}

// Start 启动所有消费者
func (m *ConsumerManager) Start(ctx context.Context, cfg *config.Config) error {
	go func() {
		topic := cfg.KafkaImpressionConsumer.Topic
		log.Info("Impression consumer started", "topic", topic)
		for {
			if err := m.impressionConsumer.Consume(ctx, []string{topic}, m.impressionHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")

	if err := m.impressionConsumer.Close(); err != nil {
		log.Error("Failed to close impression consumer", "err", err)
	}

	return nil
}
