package producer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/multierr"

	"github.com/radieske/nba-predictor-api/pkg/contracts/events"
)

type countingPublisher struct {
	n   int
	err error
}

func (c *countingPublisher) PublishPredictionMade(context.Context, events.PredictionMade) error {
	c.n++
	return c.err
}

func TestFanout_DeliversToAllSinks(t *testing.T) {
	a, b := &countingPublisher{}, &countingPublisher{}
	f := &Fanout{}
	f.Add("kafka", a)
	f.Add("redis", b)

	assert.NoError(t, f.PublishPredictionMade(context.Background(), sampleEvent()))
	assert.Equal(t, 2, f.Len())
	assert.Equal(t, 1, a.n)
	assert.Equal(t, 1, b.n)
}

func TestFanout_CollectsErrors(t *testing.T) {
	a := &countingPublisher{err: errors.New("kafka down")}
	b := &countingPublisher{}
	c := &countingPublisher{err: errors.New("redis down")}
	var failed []string
	f := &Fanout{OnError: func(sink string, _ error) { failed = append(failed, sink) }}
	f.Add("kafka", a)
	f.Add("noop", b)
	f.Add("redis", c)

	err := f.PublishPredictionMade(context.Background(), sampleEvent())

	assert.Len(t, multierr.Errors(err), 2)
	assert.Equal(t, []string{"kafka", "redis"}, failed)
	assert.Equal(t, 1, b.n)
}

func TestFanout_Empty(t *testing.T) {
	assert.NoError(t, (&Fanout{}).PublishPredictionMade(context.Background(), sampleEvent()))
}
