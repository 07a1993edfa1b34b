package dto

// Vencedor usado nas respostas de erro do handler
const ErrorWinner = "Error"

type PredictionResult struct {
	PredictedWinner string  `json:"predictedWinner"`
	Confidence      float64 `json:"confidence"`
	Message         string  `json:"message"`
	HomeTeam        string  `json:"homeTeam"`
	AwayTeam        string  `json:"awayTeam"`
}
