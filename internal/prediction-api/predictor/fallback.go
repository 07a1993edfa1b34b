package predictor

import (
	"fmt"

	"github.com/radieske/nba-predictor-api/internal/prediction-api/dto"
)

// Heurística de placeholder usada quando o modelo não responde.
// confidence ~ U[0.6, 1.0); mandante vence acima de 0.7.
const (
	fallbackBase      = 0.6
	fallbackSpread    = 0.4
	fallbackThreshold = 0.7
)

// fallbackPrediction recebe r em [0,1)
func fallbackPrediction(homeTeam, awayTeam string, r float64) dto.PredictionResult {
	confidence := r*fallbackSpread + fallbackBase
	winner := awayTeam
	if confidence > fallbackThreshold {
		winner = homeTeam
	}

	return dto.PredictionResult{
		PredictedWinner: winner,
		Confidence:      confidence,
		Message:         fmt.Sprintf("%s has %.1f%% chance to win", winner, confidence*100),
		HomeTeam:        homeTeam,
		AwayTeam:        awayTeam,
	}
}
