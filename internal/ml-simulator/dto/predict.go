package dto

type PredictReq struct {
	HomeTeam string `json:"homeTeam"`
	AwayTeam string `json:"awayTeam"`
}

// PredictResp segue o contrato do modelo Python: error null em caso de sucesso
type PredictResp struct {
	PredictedWinner string  `json:"predictedWinner,omitempty"`
	Confidence      float64 `json:"confidence,omitempty"`
	Message         string  `json:"message,omitempty"`
	HomeTeam        string  `json:"homeTeam"`
	AwayTeam        string  `json:"awayTeam"`
	Error           *string `json:"error"`
}
