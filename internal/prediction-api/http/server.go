package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/radieske/nba-predictor-api/internal/prediction-api/dto"
	"github.com/radieske/nba-predictor-api/internal/prediction-api/metrics"
	"github.com/radieske/nba-predictor-api/internal/prediction-api/predictor"
)

const HelloMessage = "Hello from NBA Predictor API!"

type Predictor interface {
	PredictGame(ctx context.Context, m predictor.Matchup) predictor.Prediction
	Health() string
}

type Server struct {
	log  *zap.Logger
	pred Predictor

	// OnOutcome recebe metrics.OutcomeModel, OutcomeFallback ou OutcomeError
	OnOutcome func(outcome string)
}

func NewServer(log *zap.Logger, p Predictor) *Server {
	return &Server{log: log, pred: p}
}

// Router expõe /api/predictions/* com CORS liberado para qualquer origem
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(withCORS)
	r.Route("/api/predictions", func(r chi.Router) {
		r.Get("/health", s.health)
		r.Get("/hello", s.hello)
		r.Post("/predict", s.predict)
	})
	return r
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusOK, s.pred.Health())
}

func (s *Server) hello(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusOK, HelloMessage)
}

func (s *Server) predict(w http.ResponseWriter, r *http.Request) {
	var req dto.MatchupRequest

	// o orquestrador não deveria entrar em pânico, mas a resposta tem que sair bem formada
	defer func() {
		if rec := recover(); rec != nil {
			s.log.Error("predict panic", zap.Any("panic", rec), zap.Stack("stack"))
			s.fail(w, req, fmt.Errorf("%v", rec))
		}
	}()

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.fail(w, req, fmt.Errorf("invalid JSON body: %w", err))
		return
	}
	if err := req.Validate(); err != nil {
		s.fail(w, req, err)
		return
	}

	p := s.pred.PredictGame(r.Context(), predictor.Matchup{
		HomeTeam: req.Home(),
		AwayTeam: req.Away(),
		GameDate: req.Date(),
	})

	outcome := metrics.OutcomeModel
	if p.Fallback() {
		outcome = metrics.OutcomeFallback
	}
	s.observe(outcome)

	s.log.Debug("prediction served",
		zap.String("home_team", p.Result.HomeTeam),
		zap.String("away_team", p.Result.AwayTeam),
		zap.String("winner", p.Result.PredictedWinner),
		zap.Float64("confidence", p.Result.Confidence),
		zap.String("source", p.Source),
	)
	writeJSON(w, http.StatusOK, p.Result)
}

// fail responde 400 com um PredictionResult de erro ecoando os times recebidos
func (s *Server) fail(w http.ResponseWriter, req dto.MatchupRequest, err error) {
	s.log.Error("predict failed", zap.Error(err))
	s.observe(metrics.OutcomeError)
	writeJSON(w, http.StatusBadRequest, dto.PredictionResult{
		PredictedWinner: dto.ErrorWinner,
		Confidence:      0.0,
		Message:         "Failed to make prediction: " + err.Error(),
		HomeTeam:        req.Home(),
		AwayTeam:        req.Away(),
	})
}

func (s *Server) observe(outcome string) {
	if s.OnOutcome != nil {
		s.OnOutcome(outcome)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeText(w http.ResponseWriter, status int, s string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(s))
}

func withCORS(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		h.ServeHTTP(w, r)
	})
}
