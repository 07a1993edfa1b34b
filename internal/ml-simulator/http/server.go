package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	sdto "github.com/radieske/nba-predictor-api/internal/ml-simulator/dto"
)

// vantagem de jogar em casa usada no sorteio do vencedor
const homeWinProbability = 0.6

// Server simula o serviço Python de ML (POST /predict)
type Server struct {
	log       *zap.Logger
	errorRate float64
	rnd       func() float64

	served *prometheus.CounterVec
}

func NewServer(log *zap.Logger, errorRate float64, rnd func() float64, reg prometheus.Registerer) *Server {
	served := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ml_sim_predictions_total",
		Help: "respostas do simulador por resultado",
	}, []string{"result"})
	reg.MustRegister(served)
	return &Server{log: log, errorRate: errorRate, rnd: rnd, served: served}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Post("/predict", s.predict)
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return r
}

func (s *Server) predict(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req sdto.PredictReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.served.WithLabelValues("bad_request").Inc()
		writeJSON(w, http.StatusBadRequest, errorResp(req, "invalid JSON body"))
		return
	}
	if req.HomeTeam == "" || req.AwayTeam == "" {
		s.served.WithLabelValues("bad_request").Inc()
		writeJSON(w, http.StatusBadRequest, errorResp(req, "homeTeam and awayTeam are required"))
		return
	}

	// falha injetada: resposta 200 com campo error preenchido
	if s.rnd() < s.errorRate {
		s.served.WithLabelValues("error").Inc()
		s.log.Debug("injected model error", zap.String("home", req.HomeTeam), zap.String("away", req.AwayTeam))
		writeJSON(w, http.StatusOK, errorResp(req, "model unavailable"))
		return
	}

	winner := req.AwayTeam
	if s.rnd() < homeWinProbability {
		winner = req.HomeTeam
	}
	confidence := 0.5 + s.rnd()*0.45 // [0.5, 0.95)

	s.served.WithLabelValues("ok").Inc()
	writeJSON(w, http.StatusOK, sdto.PredictResp{
		PredictedWinner: winner,
		Confidence:      confidence,
		Message:         fmt.Sprintf("%s has %.1f%% chance to win", winner, confidence*100),
		HomeTeam:        req.HomeTeam,
		AwayTeam:        req.AwayTeam,
	})
}

func errorResp(req sdto.PredictReq, msg string) sdto.PredictResp {
	return sdto.PredictResp{HomeTeam: req.HomeTeam, AwayTeam: req.AwayTeam, Error: &msg}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
