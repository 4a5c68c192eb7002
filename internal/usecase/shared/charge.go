package shared

import (
	"context"
	"sync"

	"experience-booking/internal/domain/money"
)

type ChargeOutcome string

const (
	ChargeSucceeded ChargeOutcome = "success"
	ChargeCancelled ChargeOutcome = "cancelled"
	ChargeFailed    ChargeOutcome = "failed"
)

// ChargeRequest carries the amount in whole currency units, not minor units.
type ChargeRequest struct {
	Amount   money.Money
	Currency money.Currency
	OrderID  string
	// Token identifies the payment the purchaser completed with the gateway.
	Token       string
	Description string
}

// ChargeCallbacks are invoked at most once in total by a ChargeAuthority.
type ChargeCallbacks struct {
	OnSuccess func(paymentRef string)
	OnCancel  func()
	OnError   func(err error)
}

type ChargeAuthority interface {
	Charge(ctx context.Context, req ChargeRequest, cb ChargeCallbacks)
}

type ChargeResult struct {
	Outcome    ChargeOutcome
	PaymentRef string
	Err        error
}

// AwaitCharge turns the callback contract into a single result. The first
// callback wins; a cancelled context is reported as a failure.
func AwaitCharge(ctx context.Context, authority ChargeAuthority, req ChargeRequest) ChargeResult {
	results := make(chan ChargeResult, 1)
	var once sync.Once
	settle := func(r ChargeResult) {
		once.Do(func() { results <- r })
	}

	authority.Charge(ctx, req, ChargeCallbacks{
		OnSuccess: func(ref string) { settle(ChargeResult{Outcome: ChargeSucceeded, PaymentRef: ref}) },
		OnCancel:  func() { settle(ChargeResult{Outcome: ChargeCancelled}) },
		OnError:   func(err error) { settle(ChargeResult{Outcome: ChargeFailed, Err: err}) },
	})

	select {
	case r := <-results:
		return r
	case <-ctx.Done():
		return ChargeResult{Outcome: ChargeFailed, Err: ctx.Err()}
	}
}
