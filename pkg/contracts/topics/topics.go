package topics

const (
	// Predições
	PredictionsMade = "predictions_made"
)
