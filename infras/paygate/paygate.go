package paygate

//go:generate go run go.uber.org/mock/mockgen -source=./paygate.go -destination=./mocks/paygate_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"palmera/config"
	"palmera/infras/otel"
	"palmera/shared/constant"
	"time"

	"github.com/rs/zerolog/log"
	circuit "github.com/rubyist/circuitbreaker"
)

const (
	defaultTimeoutSeconds   = 10
	defaultBreakerThreshold = 10

	otelAttrSessionID = "payment.session_id"
	otelAttrStatus    = "payment.status"
)

// SessionStatus is the terminal state of a hosted checkout session as
// reported by the payment processor.
type SessionStatus struct {
	SessionID string `json:"id"`
	RawStatus string `json:"payment_status"`
	Paid      bool   `json:"-"`
}

// Gateway wraps the payment processor's session-status endpoint. The
// checkout UI itself is hosted by the processor; we only ever read
// session state back.
type Gateway interface {
	VerifySession(ctx context.Context, sessionID string) (SessionStatus, error)
}

type gatewayImpl struct {
	cfg    *config.Config
	client *circuit.HTTPClient
	otel   otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) Gateway {
	timeout := time.Duration(cfg.Payment.TimeoutSeconds) * time.Second
	if cfg.Payment.TimeoutSeconds <= 0 {
		timeout = defaultTimeoutSeconds * time.Second
	}

	threshold := cfg.Payment.BreakerThreshold
	if threshold <= 0 {
		threshold = defaultBreakerThreshold
	}

	return &gatewayImpl{
		cfg:    cfg,
		client: circuit.NewHTTPClient(timeout, threshold, nil),
		otel:   otl,
	}
}

func (g *gatewayImpl) VerifySession(ctx context.Context, sessionID string) (res SessionStatus, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".paygate.VerifySession")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelAttrSessionID, sessionID)

	url := fmt.Sprintf("%s/v1/checkout/sessions/%s", g.cfg.Payment.BaseURL, sessionID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return res, fmt.Errorf("failed to build payment session request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+g.cfg.Payment.SecretKey)

	resp, err := g.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("payment processor unreachable")

		return res, fmt.Errorf("failed to fetch payment session: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return res, fmt.Errorf("payment session %s not found", sessionID)
	}

	if resp.StatusCode != http.StatusOK {
		log.Error().Int("status_code", resp.StatusCode).Str("session_id", sessionID).Msg("unexpected payment processor response")

		return res, fmt.Errorf("unexpected payment processor response: %d", resp.StatusCode)
	}

	if err = json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return res, fmt.Errorf("failed to decode payment session: %w", err)
	}

	res.Paid = res.RawStatus == "paid"
	scope.SetAttribute(otelAttrStatus, res.RawStatus)

	return res, nil
}
