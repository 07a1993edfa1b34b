package dto

// PredictRequest é o payload enviado ao serviço de ML em POST /predict.
type PredictRequest struct {
	HomeTeam string `json:"homeTeam"`
	AwayTeam string `json:"awayTeam"`
}
