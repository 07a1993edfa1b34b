package predictor

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/radieske/nba-predictor-api/internal/prediction-api/dto"
	"github.com/radieske/nba-predictor-api/internal/prediction-api/mlclient"
	"github.com/radieske/nba-predictor-api/pkg/contracts/events"
)

const HealthMessage = "NBA Predictor API is running!"

// Matchup é a entrada do orquestrador
type Matchup struct {
	HomeTeam string
	AwayTeam string
	GameDate string
}

// Prediction carrega o resultado e de onde ele veio
type Prediction struct {
	Result dto.PredictionResult
	Source string          // events.SourceModel | events.SourceFallback
	Reason mlclient.Reason // vazio quando Source=model
}

func (p Prediction) Fallback() bool { return p.Source == events.SourceFallback }

type MLClient interface {
	Predict(ctx context.Context, homeTeam, awayTeam string) mlclient.Outcome
}

type Publisher interface {
	PublishPredictionMade(context.Context, events.PredictionMade) error
}

// Service orquestra a chamada ao ML e o fallback local
type Service struct {
	Log       *zap.Logger
	Client    MLClient
	Publisher Publisher // opcional

	// Rand deve devolver valores em [0,1)
	Rand func() float64

	OnMLCall   func(d time.Duration)
	OnFallback func(reason mlclient.Reason)
}

func NewService(log *zap.Logger, c MLClient, p Publisher) *Service {
	return &Service{Log: log, Client: c, Publisher: p, Rand: rand.Float64}
}

func (s *Service) Health() string { return HealthMessage }

// PredictGame nunca falha: qualquer problema com o ML cai no fallback
func (s *Service) PredictGame(ctx context.Context, m Matchup) Prediction {
	start := time.Now()
	out := s.Client.Predict(ctx, m.HomeTeam, m.AwayTeam)
	if s.OnMLCall != nil {
		s.OnMLCall(time.Since(start))
	}

	var p Prediction
	if out.OK() {
		p = Prediction{
			Result: dto.PredictionResult{
				PredictedWinner: out.Reply.PredictedWinner,
				Confidence:      out.Reply.Confidence,
				Message:         out.Reply.Message,
				// times sempre da requisição, nunca o eco do ML
				HomeTeam: m.HomeTeam,
				AwayTeam: m.AwayTeam,
			},
			Source: events.SourceModel,
		}
	} else {
		s.Log.Warn("ml prediction unavailable, using fallback",
			zap.String("reason", string(out.Reason)),
			zap.String("home_team", m.HomeTeam),
			zap.String("away_team", m.AwayTeam),
			zap.Error(out.Err),
		)
		if s.OnFallback != nil {
			s.OnFallback(out.Reason)
		}
		p = Prediction{
			Result: fallbackPrediction(m.HomeTeam, m.AwayTeam, s.Rand()),
			Source: events.SourceFallback,
			Reason: out.Reason,
		}
	}

	s.publish(ctx, m, p)
	return p
}

// publish é best effort, limitado a 500ms e desacoplado do cancelamento da requisição
func (s *Service) publish(ctx context.Context, m Matchup, p Prediction) {
	if s.Publisher == nil {
		return
	}
	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 500*time.Millisecond)
	defer cancel()

	ev := events.PredictionMade{
		PredictionID:    uuid.NewString(),
		HomeTeam:        m.HomeTeam,
		AwayTeam:        m.AwayTeam,
		GameDate:        m.GameDate,
		PredictedWinner: p.Result.PredictedWinner,
		Confidence:      p.Result.Confidence,
		Source:          p.Source,
		FallbackReason:  string(p.Reason),
		TsUnixMs:        time.Now().UnixMilli(),
	}
	if err := s.Publisher.PublishPredictionMade(pctx, ev); err != nil {
		s.Log.Warn("publish prediction_made failed", zap.String("prediction_id", ev.PredictionID), zap.Error(err))
	}
}
