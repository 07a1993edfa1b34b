package pubsub

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/radieske/nba-predictor-api/pkg/contracts/events"
)

const ChannelPredictionsBroadcast = "predictions_broadcast"

type RedisBroadcaster struct {
	r       *redis.Client
	channel string
}

func NewRedisBroadcaster(r *redis.Client, channel string) *RedisBroadcaster {
	if channel == "" {
		channel = ChannelPredictionsBroadcast
	}
	return &RedisBroadcaster{r: r, channel: channel}
}

func (b *RedisBroadcaster) Publish(ctx context.Context, payload []byte) error {
	return b.r.Publish(ctx, b.channel, payload).Err()
}

func (b *RedisBroadcaster) PublishPredictionMade(ctx context.Context, e events.PredictionMade) error {
	msg, err := json.Marshal(Update{Type: "prediction_made", Payload: e})
	if err != nil {
		return fmt.Errorf("marshal broadcast: %w", err)
	}
	if err := b.Publish(ctx, msg); err != nil {
		return fmt.Errorf("redis publish %s: %w", b.channel, err)
	}
	return nil
}

// Envelope publicado no canal
type Update struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}
