package mlclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	mldto "github.com/radieske/nba-predictor-api/internal/prediction-api/mlclient/dto"
)

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New cria o client do serviço de ML; timeout 0 deixa a chamada sem limite
func New(base string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(base, "/"),
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// Predict faz uma única chamada a POST {BaseURL}/predict.
// Nunca retorna erro: toda falha vira um Outcome de fallback.
func (c *Client) Predict(ctx context.Context, homeTeam, awayTeam string) Outcome {
	body, _ := json.Marshal(mldto.PredictRequest{HomeTeam: homeTeam, AwayTeam: awayTeam})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return Fallback(ReasonTransport, fmt.Errorf("build ml request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := c.HTTP.Do(req)
	if err != nil {
		return Fallback(classify(err), fmt.Errorf("ml predict: %w", err))
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return Fallback(ReasonHTTPStatus, fmt.Errorf("ml predict http %d", res.StatusCode))
	}

	var out *mldto.PredictReply
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		if isTimeout(err) {
			return Fallback(ReasonTimeout, fmt.Errorf("read ml reply: %w", err))
		}
		return Fallback(ReasonMalformedBody, fmt.Errorf("decode ml reply: %w", err))
	}
	if out == nil {
		return Fallback(ReasonEmptyReply, errors.New("ml reply is null"))
	}
	if msg, ok := out.RemoteError(); ok {
		return Fallback(ReasonRemoteError, fmt.Errorf("ml service error: %s", msg))
	}
	return Success(out)
}

func classify(err error) Reason {
	if isTimeout(err) {
		return ReasonTimeout
	}
	return ReasonTransport
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
