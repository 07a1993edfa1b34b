package mlclient

import (
	mldto "github.com/radieske/nba-predictor-api/internal/prediction-api/mlclient/dto"
)

// Reason classifica por que a resposta do ML foi descartada
type Reason string

const (
	ReasonTransport     Reason = "transport"      // conexão recusada, DNS, reset...
	ReasonTimeout       Reason = "timeout"        // timeout do client ou deadline do contexto
	ReasonHTTPStatus    Reason = "http_status"    // resposta não-2xx
	ReasonMalformedBody Reason = "malformed_body" // JSON inválido ou com tipos errados
	ReasonEmptyReply    Reason = "empty_reply"    // corpo "null"
	ReasonRemoteError   Reason = "remote_error"   // campo error preenchido
)

// Outcome é o resultado de uma chamada: Success(reply) ou Fallback(reason)
type Outcome struct {
	Reply  *mldto.PredictReply
	Reason Reason
	Err    error
}

func Success(r *mldto.PredictReply) Outcome { return Outcome{Reply: r} }

func Fallback(reason Reason, err error) Outcome { return Outcome{Reason: reason, Err: err} }

// OK indica que a resposta do ML pode ser usada
func (o Outcome) OK() bool { return o.Reply != nil && o.Reason == "" }
