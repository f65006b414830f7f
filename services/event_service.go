package services

import (
	"fmt"
	"log"
	"time"

	"github.com/IBM/sarama"
)

// IEventPublisher defines the interface for publishing domain events.
type IEventPublisher interface {
	Publish(topic string, message []byte) error
}

// KafkaPublisher implements IEventPublisher using a Sarama sync producer.
type KafkaPublisher struct {
	producer sarama.SyncProducer
}

// NewKafkaPublisher connects a sync producer to the given brokers.
func NewKafkaPublisher(brokers []string) (IEventPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to start Sarama producer: %w", err)
	}

	log.Println("Kafka producer connected successfully.")
	return &KafkaPublisher{producer: producer}, nil
}

// Publish sends one event to the given topic.
func (p *KafkaPublisher) Publish(topic string, message []byte) error {
	msg := &sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.ByteEncoder(message),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return err
	}
	log.Printf("Event published to topic '%s', partition %d, offset %d", topic, partition, offset)
	return nil
}
