//go:build unit

package payment_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"experience-booking/internal/domain/money"
	"experience-booking/internal/infra/payment"
	"experience-booking/internal/pkg/config"
	"experience-booking/internal/pkg/errs"
	"experience-booking/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateway(t *testing.T, status int, body string) (*payment.GatewayAuthority, *[]string) {
	t.Helper()
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/epayment/lookup/", r.URL.Path)
		assert.Equal(t, "key test-key", r.Header.Get("Authorization"))
		var req map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		seen = append(seen, req["pidx"])
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return payment.NewGatewayAuthority(config.PaymentConfig{
		BaseURL:   srv.URL + "/",
		SecretKey: "test-key",
		Timeout:   time.Second,
	}), &seen
}

func charge(g *payment.GatewayAuthority, token, amount string) shared.ChargeResult {
	return shared.AwaitCharge(context.Background(), g, shared.ChargeRequest{
		Amount:  money.MustParse(amount),
		OrderID: "order-1",
		Token:   token,
	})
}

func TestGatewayAuthority_Charge(t *testing.T) {
	testCases := []struct {
		name    string
		status  int
		body    string
		amount  string
		outcome shared.ChargeOutcome
		ref     string
		errIs   error
	}{
		{
			name:    "success: completed with matching amount",
			status:  http.StatusOK,
			body:    `{"pidx":"pidx_1","total_amount":20050,"status":"Completed","transaction_id":"txn_9"}`,
			amount:  "200.50",
			outcome: shared.ChargeSucceeded,
			ref:     "txn_9",
		},
		{
			name:    "success: token stands in for a missing transaction id",
			status:  http.StatusOK,
			body:    `{"pidx":"pidx_1","total_amount":20000,"status":"Completed"}`,
			amount:  "200",
			outcome: shared.ChargeSucceeded,
			ref:     "pidx_1",
		},
		{
			name:    "success: user canceled",
			status:  http.StatusBadRequest,
			body:    `{"pidx":"pidx_1","total_amount":20000,"status":"User canceled"}`,
			amount:  "200",
			outcome: shared.ChargeCancelled,
		},
		{
			name:    "success: expired counts as cancel",
			status:  http.StatusBadRequest,
			body:    `{"pidx":"pidx_1","total_amount":20000,"status":"Expired"}`,
			amount:  "200",
			outcome: shared.ChargeCancelled,
		},
		{
			name:    "error: amount mismatch",
			status:  http.StatusOK,
			body:    `{"pidx":"pidx_1","total_amount":10000,"status":"Completed","transaction_id":"txn_9"}`,
			amount:  "200",
			outcome: shared.ChargeFailed,
			errIs:   payment.ErrAmountMismatch,
		},
		{
			name:    "error: pending",
			status:  http.StatusOK,
			body:    `{"pidx":"pidx_1","total_amount":20000,"status":"Pending"}`,
			amount:  "200",
			outcome: shared.ChargeFailed,
			errIs:   payment.ErrNotCompleted,
		},
		{
			name:    "error: unreadable body",
			status:  http.StatusInternalServerError,
			body:    `upstream exploded`,
			amount:  "200",
			outcome: shared.ChargeFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g, seen := newGateway(t, tc.status, tc.body)

			got := charge(g, " pidx_1 ", tc.amount)

			assert.Equal(t, tc.outcome, got.Outcome)
			assert.Equal(t, tc.ref, got.PaymentRef)
			assert.Equal(t, []string{"pidx_1"}, *seen)
			if tc.outcome == shared.ChargeFailed {
				require.Error(t, got.Err)
			}
			if tc.errIs != nil {
				assert.True(t, errs.Is(got.Err, tc.errIs), "got %v", got.Err)
			}
		})
	}

	t.Run("error: missing token never calls the gateway", func(t *testing.T) {
		g, seen := newGateway(t, http.StatusOK, `{}`)

		got := charge(g, "  ", "200")

		assert.Equal(t, shared.ChargeFailed, got.Outcome)
		assert.True(t, errs.Is(got.Err, payment.ErrMissingToken))
		assert.Empty(t, *seen)
	})
}
