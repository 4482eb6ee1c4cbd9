package handler

import (
	"encoding/json"

	"github.com/IBM/sarama"

	"github.com/grouplib/library-app/pkg/kafka"
)

type EventLog interface {
	Log(event kafka.LoanEvent) error
}

type eventLog struct {
	producer sarama.AsyncProducer
	topic    string
}

func NewEventLog(producer sarama.AsyncProducer, topic string) *eventLog {
	return &eventLog{
		producer: producer,
		topic:    topic,
	}
}

func (l *eventLog) Log(event kafka.LoanEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{Topic: l.topic, Value: sarama.StringEncoder(data)}
	l.producer.Input() <- msg
	return nil
}

// NopEventLog drops events; used when kafka is not configured.
type NopEventLog struct{}

func (NopEventLog) Log(kafka.LoanEvent) error { return nil }
