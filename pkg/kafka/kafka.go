package kafka

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS" default:"localhost:9092"`
}

const (
	LoanTopic         = "loan-events"
	LoanConsumerGroup = "library-loan-events"
)

type EventType string

const (
	EventLoan   EventType = "LOAN"
	EventReturn EventType = "RETURN"
)

// LoanEvent is the audit payload published for every successful
// loan/return transition.
type LoanEvent struct {
	Timestamp time.Time `json:"timestamp"`
	RecordUid string    `json:"recordUid"`
	UserName  string    `json:"username"`
	BookName  string    `json:"bookName"`
	EventType EventType `json:"eventType"`
}

func NewProducer(cfg Config) (sarama.AsyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForLocal
	defaultCfg.Producer.Return.Successes = false
	defaultCfg.Producer.Return.Errors = false

	return sarama.NewAsyncProducer(cfg.Addrs, defaultCfg)
}

func NewConsumer(cfg Config, group string) (sarama.ConsumerGroup, error) {
	defaultCfg := sarama.NewConfig()
	defaultCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetOldest

	return sarama.NewConsumerGroup(cfg.Addrs, group, defaultCfg)
}

// Consume runs the consumer group loop until ctx is canceled.
func Consume(ctx context.Context, consumer sarama.ConsumerGroup, h sarama.ConsumerGroupHandler, log *zap.Logger, topics ...string) {
	for {
		if err := consumer.Consume(ctx, topics, h); err != nil {
			log.Error("consumer.Consume", zap.Error(err))
		}
		if ctx.Err() != nil {
			return
		}
	}
}
