package producer

import (
	"context"

	"go.uber.org/multierr"

	"github.com/radieske/nba-predictor-api/pkg/contracts/events"
)

type Publisher interface {
	PublishPredictionMade(context.Context, events.PredictionMade) error
}

// Sink nomeia um publisher para métricas e logs
type Sink struct {
	Name      string
	Publisher Publisher
}

// Fanout entrega o evento a todos os sinks; a falha de um não impede os demais
type Fanout struct {
	Sinks   []Sink
	OnError func(sink string, err error)
}

func (f *Fanout) Add(name string, p Publisher) {
	f.Sinks = append(f.Sinks, Sink{Name: name, Publisher: p})
}

func (f *Fanout) Len() int { return len(f.Sinks) }

func (f *Fanout) PublishPredictionMade(ctx context.Context, e events.PredictionMade) error {
	var errs error
	for _, s := range f.Sinks {
		if err := s.Publisher.PublishPredictionMade(ctx, e); err != nil {
			if f.OnError != nil {
				f.OnError(s.Name, err)
			}
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}
