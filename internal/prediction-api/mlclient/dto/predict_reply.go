package dto

import (
	"bytes"
	"encoding/json"
)

// PredictReply representa a resposta do serviço de ML.
// Error nulo/ausente indica sucesso; qualquer outro valor invalida a resposta.
type PredictReply struct {
	PredictedWinner string          `json:"predictedWinner"`
	Confidence      float64         `json:"confidence"`
	Message         string          `json:"message"`
	HomeTeam        string          `json:"homeTeam"`
	AwayTeam        string          `json:"awayTeam"`
	Error           json.RawMessage `json:"error,omitempty"`
}

// RemoteError devolve o erro reportado pelo serviço, se houver
func (r PredictReply) RemoteError() (string, bool) {
	raw := bytes.TrimSpace(r.Error)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}
	return string(raw), true
}
