package pubsub

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radieske/nba-predictor-api/pkg/contracts/events"
)

func TestRedisBroadcaster_PublishPredictionMade(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()
	ctx := context.Background()

	sub := rdb.Subscribe(ctx, "test_channel")
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	b := NewRedisBroadcaster(rdb, "test_channel")
	ev := events.PredictionMade{PredictionID: "pred-1", HomeTeam: "Lakers", AwayTeam: "Celtics", Source: events.SourceModel}
	require.NoError(t, b.PublishPredictionMade(ctx, ev))

	select {
	case msg := <-sub.Channel():
		var got struct {
			Type    string                `json:"type"`
			Payload events.PredictionMade `json:"payload"`
		}
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
		assert.Equal(t, "prediction_made", got.Type)
		assert.Equal(t, ev, got.Payload)
	case <-time.After(2 * time.Second):
		t.Fatal("no message received")
	}
}

func TestRedisBroadcaster_DefaultChannel(t *testing.T) {
	b := NewRedisBroadcaster(nil, "")
	assert.Equal(t, ChannelPredictionsBroadcast, b.channel)
}

func TestRedisBroadcaster_ServerDown(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer rdb.Close()
	mr.Close()

	err := NewRedisBroadcaster(rdb, "c").PublishPredictionMade(context.Background(), events.PredictionMade{})
	assert.Error(t, err)
}
