package events

// Valores de Source
const (
	SourceModel    = "model"
	SourceFallback = "fallback"
)

// PredictionMade é publicado a cada predição servida pela API
type PredictionMade struct {
	PredictionID    string  `json:"prediction_id"`
	HomeTeam        string  `json:"home_team"`
	AwayTeam        string  `json:"away_team"`
	GameDate        string  `json:"game_date,omitempty"`
	PredictedWinner string  `json:"predicted_winner"`
	Confidence      float64 `json:"confidence"`
	Source          string  `json:"source"`                    // model | fallback
	FallbackReason  string  `json:"fallback_reason,omitempty"` // só quando Source=fallback
	TsUnixMs        int64   `json:"ts_unix_ms"`
}
