package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/radieske/nba-predictor-api/internal/shared/kafka"
	"github.com/radieske/nba-predictor-api/pkg/contracts/events"
)

type KafkaPublisher struct {
	Writer kafka.MessageWriter
	Topic  string
}

func NewKafkaPublisher(w kafka.MessageWriter, topic string) *KafkaPublisher {
	return &KafkaPublisher{Writer: w, Topic: topic}
}

// PublishPredictionMade usa o prediction_id como chave da mensagem
func (p *KafkaPublisher) PublishPredictionMade(ctx context.Context, e events.PredictionMade) error {
	b, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal prediction_made: %w", err)
	}
	if err := kafka.WriteJSON(ctx, p.Writer, e.PredictionID, b); err != nil {
		return fmt.Errorf("kafka %s: %w", p.Topic, err)
	}
	return nil
}
