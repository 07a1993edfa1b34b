package predictor

import (
	"fmt"
	"math/rand"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackPrediction_WinnerRule(t *testing.T) {
	tests := []struct {
		name       string
		r          float64
		wantWinner string
		wantConf   float64
		wantMsg    string
	}{
		{"lowest draw goes to away", 0, "Celtics", 0.6, "Celtics has 60.0% chance to win"},
		{"below threshold", 0.2, "Celtics", 0.68, "Celtics has 68.0% chance to win"},
		{"above threshold", 0.3, "Lakers", 0.72, "Lakers has 72.0% chance to win"},
		{"middle", 0.5, "Lakers", 0.8, "Lakers has 80.0% chance to win"},
		{"highest draw", 0.9999, "Lakers", 0.99996, "Lakers has 100.0% chance to win"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fallbackPrediction("Lakers", "Celtics", tt.r)

			assert.Equal(t, tt.wantWinner, got.PredictedWinner)
			assert.InDelta(t, tt.wantConf, got.Confidence, 1e-9)
			assert.Equal(t, tt.wantMsg, got.Message)
			assert.Equal(t, "Lakers", got.HomeTeam)
			assert.Equal(t, "Celtics", got.AwayTeam)
		})
	}
}

func TestFallbackPrediction_Properties(t *testing.T) {
	msgRe := regexp.MustCompile(`^(Lakers|Celtics) has (\d+\.\d)% chance to win$`)
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		got := fallbackPrediction("Lakers", "Celtics", rng.Float64())

		assert.GreaterOrEqual(t, got.Confidence, 0.6)
		assert.Less(t, got.Confidence, 1.0)

		if got.Confidence > 0.7 {
			assert.Equal(t, "Lakers", got.PredictedWinner)
		} else {
			assert.Equal(t, "Celtics", got.PredictedWinner)
		}

		m := msgRe.FindStringSubmatch(got.Message)
		if assert.NotNil(t, m, got.Message) {
			assert.Equal(t, got.PredictedWinner, m[1])
			assert.Equal(t, fmt.Sprintf("%.1f", got.Confidence*100), m[2])
		}
	}
}

func TestFallbackPrediction_EmptyTeams(t *testing.T) {
	got := fallbackPrediction("", "", 0.5)

	assert.Equal(t, "", got.PredictedWinner)
	assert.Equal(t, " has 80.0% chance to win", got.Message)
}
