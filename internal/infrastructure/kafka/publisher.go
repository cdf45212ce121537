package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	"github.com/jaevor/go-nanoid"
	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	writer     *kafka.Writer
	newEventID func() string
}

func NewKafkaPublisher(brokers []string, topic string) (*KafkaPublisher, error) {
	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}

	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
		newEventID: idGenerator,
	}, nil
}

func (k *KafkaPublisher) PublishExchange(transaction *domain.Transaction) error {
	event := ExchangeEvent{
		EventID:       k.newEventID(),
		TransactionID: transaction.ID,
		UserID:        transaction.UserID,
		FromCurrency:  transaction.FromCurrency.String(),
		ToCurrency:    transaction.ToCurrency.String(),
		AmountFrom:    transaction.AmountFrom.String(),
		AmountTo:      transaction.AmountTo.String(),
		Rate:          transaction.Rate.String(),
		Status:        string(transaction.Status),
		ErrorMessage:  transaction.ErrorMessage,
	}

	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return k.writer.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(transaction.UserID),
		Value: msg,
		Time:  time.Now(),
	})
}

func (k *KafkaPublisher) Close() error {
	return k.writer.Close()
}
