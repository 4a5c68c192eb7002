package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"experience-booking/internal/pkg/config"
	"experience-booking/internal/pkg/errs"
	"experience-booking/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

const (
	statusCompleted    = "completed"
	statusUserCanceled = "user canceled"
	statusExpired      = "expired"

	maxBodyBytes = 1 << 20
)

var (
	ErrMissingToken   = errs.New("payment token is required")
	ErrAmountMismatch = errs.New("paid amount does not match the upfront amount")
	ErrNotCompleted   = errs.New("payment is not completed")
)

// lookupResponse is the gateway's view of a payment the purchaser started
// client-side. total_amount is in minor units.
type lookupResponse struct {
	Pidx          string `json:"pidx"`
	TotalAmount   int64  `json:"total_amount"`
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id"`
}

// GatewayAuthority settles a charge by looking up the payment token at the
// gateway. It never initiates a payment itself.
type GatewayAuthority struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

func NewGatewayAuthority(cfg config.PaymentConfig) *GatewayAuthority {
	return &GatewayAuthority{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		secretKey:  cfg.SecretKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

func (g *GatewayAuthority) Charge(ctx context.Context, req shared.ChargeRequest, cb shared.ChargeCallbacks) {
	token := strings.TrimSpace(req.Token)
	if token == "" {
		cb.OnError(ErrMissingToken)
		return
	}

	res, err := g.lookup(ctx, token)
	if err != nil {
		cb.OnError(err)
		return
	}

	switch strings.ToLower(strings.TrimSpace(res.Status)) {
	case statusCompleted:
		want := minorUnits(req.Amount.Decimal())
		if res.TotalAmount != want {
			slog.Warn("payment amount mismatch",
				"order_id", req.OrderID,
				"expected_minor", want,
				"paid_minor", res.TotalAmount)
			cb.OnError(errs.Wrapf(ErrAmountMismatch, "expected %d, paid %d", want, res.TotalAmount))
			return
		}
		ref := res.TransactionID
		if ref == "" {
			ref = token
		}
		cb.OnSuccess(ref)
	case statusUserCanceled, statusExpired:
		cb.OnCancel()
	default:
		cb.OnError(errs.Wrapf(ErrNotCompleted, "status %q", res.Status))
	}
}

func (g *GatewayAuthority) lookup(ctx context.Context, token string) (lookupResponse, error) {
	body, err := json.Marshal(map[string]string{"pidx": token})
	if err != nil {
		return lookupResponse{}, errs.Wrap(err, "encode lookup request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/epayment/lookup/", bytes.NewReader(body))
	if err != nil {
		return lookupResponse{}, errs.Wrap(err, "build lookup request")
	}
	httpReq.Header.Set("Authorization", "key "+g.secretKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return lookupResponse{}, errs.Wrap(err, "payment lookup request")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return lookupResponse{}, errs.Wrap(err, "read lookup response")
	}

	// Canceled and expired payments may come back as 400 with a normal body.
	var res lookupResponse
	if err := json.Unmarshal(raw, &res); err != nil || res.Status == "" {
		return lookupResponse{}, errs.Newf("payment lookup failed: http=%d body=%s", resp.StatusCode, string(raw))
	}
	return res, nil
}

func minorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
