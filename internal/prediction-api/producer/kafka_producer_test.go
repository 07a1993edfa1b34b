package producer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radieske/nba-predictor-api/pkg/contracts/events"
)

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func sampleEvent() events.PredictionMade {
	return events.PredictionMade{
		PredictionID:    "pred-1",
		HomeTeam:        "Lakers",
		AwayTeam:        "Celtics",
		PredictedWinner: "Lakers",
		Confidence:      0.8,
		Source:          events.SourceFallback,
		FallbackReason:  "transport",
		TsUnixMs:        1700000000000,
	}
}

func TestKafkaPublisher_PublishPredictionMade(t *testing.T) {
	w := &fakeWriter{}
	p := NewKafkaPublisher(w, "predictions_made")

	require.NoError(t, p.PublishPredictionMade(context.Background(), sampleEvent()))

	require.Len(t, w.msgs, 1)
	assert.Equal(t, "pred-1", string(w.msgs[0].Key))

	var got events.PredictionMade
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &got))
	assert.Equal(t, sampleEvent(), got)
}

func TestKafkaPublisher_WrapsWriterError(t *testing.T) {
	p := NewKafkaPublisher(&fakeWriter{err: errors.New("no brokers")}, "predictions_made")

	err := p.PublishPredictionMade(context.Background(), sampleEvent())

	assert.EqualError(t, err, "kafka predictions_made: no brokers")
}
