package producer

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/wiki_service/config"
	"github.com/Xushengqwer/wiki_service/mq/events"
)

// messageWriter 是 *kafka.Writer 中用到的部分，便于测试替换
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaProducer 发布工具生命周期事件
type KafkaProducer struct {
	writer messageWriter
	logger *zap.Logger
	topics config.Topics
}

// NewKafkaProducer 未配置 brokers 时返回 nil
func NewKafkaProducer(cfg config.KafkaConfig, logger *zap.Logger) *KafkaProducer {
	if len(cfg.Brokers) == 0 {
		logger.Warn("未配置 Kafka brokers，事件发布已禁用")
		return nil
	}
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
	}
	return newKafkaProducer(writer, cfg.Topics, logger)
}

func newKafkaProducer(writer messageWriter, topics config.Topics, logger *zap.Logger) *KafkaProducer {
	return &KafkaProducer{writer: writer, logger: logger, topics: topics}
}

// SendEvent 序列化事件并写入指定主题，key 用于分区
func (p *KafkaProducer) SendEvent(ctx context.Context, topic string, key string, event interface{}) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("序列化 Kafka 事件失败", zap.Error(err), zap.String("topic", topic))
		return err
	}

	p.logger.Debug("发送 Kafka 消息", zap.String("topic", topic), zap.ByteString("payload", eventBytes))

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: eventBytes,
	})
	if err != nil {
		p.logger.Error("写入 Kafka 消息失败", zap.Error(err), zap.String("topic", topic))
		return err
	}
	p.logger.Info("Kafka 消息发送成功", zap.String("topic", topic), zap.String("key", key))
	return nil
}

// SendListingSubmittedEvent 新工具提交后通知下游 (例如外部审核系统)
func (p *KafkaProducer) SendListingSubmittedEvent(ctx context.Context, data events.ListingData) error {
	event := events.ListingSubmittedEvent{
		EventID:   uuid.New().String(),
		Timestamp: time.Now(),
		Listing:   data,
	}
	return p.SendEvent(ctx, p.topics.ListingSubmitted, listingKey(data.ID), event)
}

// SendListingModeratedEvent 广播审核结果
func (p *KafkaProducer) SendListingModeratedEvent(ctx context.Context, data events.ModerationData) error {
	event := events.ListingModeratedEvent{
		EventID:        uuid.New().String(),
		Timestamp:      time.Now(),
		ModerationData: data,
	}
	return p.SendEvent(ctx, p.topics.ListingModerated, listingKey(data.ListingID), event)
}

// Close 刷新缓冲并关闭底层 writer
func (p *KafkaProducer) Close() error {
	if err := p.writer.Close(); err != nil {
		p.logger.Error("关闭 Kafka 生产者失败", zap.Error(err))
		return err
	}
	p.logger.Info("Kafka 生产者已关闭")
	return nil
}

func listingKey(id uint64) string {
	return "listing-" + strconv.FormatUint(id, 10)
}
