package config

import (
	"os"
	"strconv"
	"time"

	ctopics "github.com/radieske/nba-predictor-api/pkg/contracts/topics"
)

// Config centraliza variáveis de ambiente e parâmetros de execução dos serviços
// Inclui URL do serviço de ML, sinks de eventos e portas
type Config struct {
	Env         string // "local", "dev", "prod"
	ServiceName string // ex: "prediction-api", "ml-simulator"

	// Serviço externo de predição (modelo de ML)
	MLServiceURL     string
	PredictorTimeout time.Duration // 0 = sem timeout

	// Sinks opcionais de eventos; vazio desabilita
	KafkaBrokers       string // "a:9092,b:9092"
	TopicPredictions   string
	RedisAddr          string
	RedisPubSubChannel string

	// Simulador de ML
	SimErrorRate float64 // fração de respostas com campo error preenchido

	// Portas do serviço atual
	HTTPPort    string // Porta pública (ex.: API REST)
	MetricsPort string // Porta exclusiva para /metrics e /healthz
}

// Load carrega variáveis de ambiente e define defaults para cada serviço
// Resolve portas conforme o SERVICE_NAME
func Load() Config {
	svc := getEnv("SERVICE_NAME", "prediction-api")
	env := getEnv("ENV", "local")

	cfg := Config{
		Env:         env,
		ServiceName: svc,

		MLServiceURL:     getEnv("ML_SERVICE_URL", "http://localhost:5001"),
		PredictorTimeout: getDuration("PREDICTOR_TIMEOUT", 5*time.Second),

		KafkaBrokers:       getEnv("KAFKA_BROKERS", ""),
		TopicPredictions:   getEnv("KAFKA_TOPIC_PREDICTIONS", ctopics.PredictionsMade),
		RedisAddr:          getEnv("REDIS_ADDR", ""),
		RedisPubSubChannel: getEnv("REDIS_PUBSUB_CHANNEL", "predictions_broadcast"),

		SimErrorRate: getFloat("SIM_ERROR_RATE", 0.1),
	}

	// Define portas padrão para cada serviço
	switch svc {
	case "ml-simulator":
		cfg.HTTPPort = getEnv("HTTP_PORT_ML", "5001")
		cfg.MetricsPort = getEnv("METRICS_PORT_ML", "9101")
	default:
		cfg.HTTPPort = getEnv("HTTP_PORT", "8080")
		cfg.MetricsPort = getEnv("METRICS_PORT", "9100")
	}

	return cfg
}

// getEnv retorna o valor da variável de ambiente ou o default
func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

// getDuration aceita "750ms", "5s" etc.; valor inválido cai no default
func getDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	if v == "0" {
		return 0
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return def
	}
	return d
}

func getFloat(key string, def float64) float64 {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}
