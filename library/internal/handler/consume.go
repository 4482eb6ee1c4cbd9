package handler

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/grouplib/library-app/library/internal/model"
	"github.com/grouplib/library-app/pkg/kafka"
)

type recordLoanEvent func(ctx context.Context, event model.LoanEventRecord) error

type Consumer struct {
	recordHandler recordLoanEvent
	log           *zap.Logger
	ready         chan bool
	readyOnce     sync.Once
}

func NewConsumer(record recordLoanEvent, log *zap.Logger) *Consumer {
	return &Consumer{
		recordHandler: record,
		log:           log.Named("consumer"),
		ready:         make(chan bool),
	}
}

// Setup runs at the start of every session; the handler instance is
// reused across rebalances, so the ready channel closes only once.
func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	consumer.readyOnce.Do(func() {
		close(consumer.ready)
	})
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited.
func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var event kafka.LoanEvent
			if err := json.Unmarshal(message.Value, &event); err != nil {
				consumer.log.Error("", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			if err := consumer.recordHandler(context.Background(), model.LoanEventRecord{
				Timestamp: event.Timestamp,
				RecordUid: event.RecordUid,
				UserName:  event.UserName,
				BookName:  event.BookName,
				EventType: string(event.EventType),
			}); err != nil {
				consumer.log.Error("consumer.recordHandler", zap.Error(err))
				continue
			}

			consumer.log.Debug("Message claimed:", zap.String("value", string(message.Value)), zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
