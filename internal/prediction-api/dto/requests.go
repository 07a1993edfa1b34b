package dto

import "errors"

// MatchupRequest é o corpo de POST /api/predictions/predict.
// Ponteiros distinguem campo ausente/null de string vazia.
type MatchupRequest struct {
	HomeTeam *string `json:"homeTeam"`
	AwayTeam *string `json:"awayTeam"`
	GameDate *string `json:"gameDate"` // informativo, não entra na predição
}

var (
	ErrMissingHomeTeam = errors.New("homeTeam is required")
	ErrMissingAwayTeam = errors.New("awayTeam is required")
)

// Validate só checa presença; strings vazias passam
func (r MatchupRequest) Validate() error {
	if r.HomeTeam == nil {
		return ErrMissingHomeTeam
	}
	if r.AwayTeam == nil {
		return ErrMissingAwayTeam
	}
	return nil
}

func (r MatchupRequest) Home() string { return deref(r.HomeTeam) }
func (r MatchupRequest) Away() string { return deref(r.AwayTeam) }
func (r MatchupRequest) Date() string { return deref(r.GameDate) }

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
