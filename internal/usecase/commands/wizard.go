package commands

import (
	"context"
	"errors"
	"log/slog"

	"experience-booking/internal/domain/booking"
	"experience-booking/internal/domain/pricing"
	"experience-booking/internal/domain/wizard"
	"experience-booking/internal/infra"
	"experience-booking/internal/pkg/errs"
	"experience-booking/internal/usecase/queries"
	"experience-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrWizardNotFound = errs.New("wizard session not found")

type SubmitDetails struct {
	Contact        booking.ContactPerson
	CouponCode     *string
	ReferralCode   *string
	PartialPayment bool
	Agent          *pricing.AgentPricing
	PaymentToken   string
}

// SubmitResult is either a rejected submission naming missing fields or a
// finalized booking; State is the session after the attempt.
type SubmitResult struct {
	State   wizard.State
	Missing []string
	Booking *FinalizeResult
}

type WizardCommands interface {
	Start(ctx context.Context, userID uuid.UUID, layout string) (wizard.State, error)
	Get(ctx context.Context, userID, id uuid.UUID) (wizard.State, error)
	Select(ctx context.Context, userID, id uuid.UUID, sel wizard.Selection) (wizard.State, error)
	Next(ctx context.Context, userID, id uuid.UUID) (wizard.Result, error)
	Back(ctx context.Context, userID, id uuid.UUID) (wizard.State, error)
	Submit(ctx context.Context, userID, id uuid.UUID, details SubmitDetails) (*SubmitResult, error)
	Abandon(ctx context.Context, userID, id uuid.UUID) error
}

type wizardUseCaseImpl struct {
	store    shared.WizardStore
	uow      shared.UnitOfWork
	checkout CheckoutCommands
}

func NewWizardUseCase(store shared.WizardStore, uow shared.UnitOfWork, checkout CheckoutCommands) WizardCommands {
	return &wizardUseCaseImpl{store: store, uow: uow, checkout: checkout}
}

func (uc *wizardUseCaseImpl) Start(ctx context.Context, userID uuid.UUID, layout string) (wizard.State, error) {
	l, err := wizard.NewLayout(layout)
	if err != nil {
		return wizard.State{}, errs.Mark(err, errs.ErrValidation)
	}
	state := wizard.NewState(userID, l)
	if err := uc.store.Save(ctx, state); err != nil {
		return wizard.State{}, err
	}
	return state, nil
}

func (uc *wizardUseCaseImpl) Get(ctx context.Context, userID, id uuid.UUID) (wizard.State, error) {
	return uc.load(ctx, userID, id)
}

func (uc *wizardUseCaseImpl) Select(ctx context.Context, userID, id uuid.UUID, sel wizard.Selection) (wizard.State, error) {
	state, err := uc.load(ctx, userID, id)
	if err != nil {
		return wizard.State{}, err
	}
	if err := uc.checkSelection(ctx, state, sel); err != nil {
		return wizard.State{}, err
	}

	next, err := state.Select(sel)
	if err != nil {
		return wizard.State{}, errs.Mark(err, errs.ErrValidation)
	}
	if err := uc.store.Save(ctx, next); err != nil {
		return wizard.State{}, err
	}
	return next, nil
}

func (uc *wizardUseCaseImpl) Next(ctx context.Context, userID, id uuid.UUID) (wizard.Result, error) {
	state, err := uc.load(ctx, userID, id)
	if err != nil {
		return wizard.Result{}, err
	}
	res := state.Next()
	if res.Advanced {
		if err := uc.store.Save(ctx, res.State); err != nil {
			return wizard.Result{}, err
		}
	}
	return res, nil
}

func (uc *wizardUseCaseImpl) Back(ctx context.Context, userID, id uuid.UUID) (wizard.State, error) {
	state, err := uc.load(ctx, userID, id)
	if err != nil {
		return wizard.State{}, err
	}
	prev := state.Back()
	if err := uc.store.Save(ctx, prev); err != nil {
		return wizard.State{}, err
	}
	return prev, nil
}

// Submit takes the session lock before reading the session, so a submit
// that waited on another one sees the reset session instead of a stale copy.
func (uc *wizardUseCaseImpl) Submit(ctx context.Context, userID, id uuid.UUID, details SubmitDetails) (*SubmitResult, error) {
	acquired, err := uc.store.AcquireSubmitLock(ctx, id)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, wizard.ErrSubmissionInProgress
	}
	defer func() {
		if rerr := uc.store.ReleaseSubmitLock(context.WithoutCancel(ctx), id); rerr != nil {
			slog.Warn("failed to release wizard submit lock", "wizard_id", id, "error", rerr.Error())
		}
	}()

	state, err := uc.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	// The store lock is authoritative; a flag left behind by a crashed submit is stale.
	state.Submitting = false
	begun, err := state.BeginSubmit()
	if err != nil {
		if errors.Is(err, wizard.ErrNotReadyForSubmission) {
			return nil, errs.Mark(err, errs.ErrValidation)
		}
		return nil, err
	}
	if !begun.Advanced {
		return &SubmitResult{State: begun.State, Missing: begun.Missing}, nil
	}
	if err := uc.store.Save(ctx, begun.State); err != nil {
		return nil, err
	}

	result, checkoutErr := uc.checkout.Checkout(ctx, userID, CheckoutRequest{
		ActivityID:       *begun.State.ActivityID,
		TimeSlotID:       *begun.State.SlotID,
		Date:             *begun.State.Date,
		ParticipantCount: begun.State.ParticipantCount,
		Contact:          details.Contact,
		CouponCode:       details.CouponCode,
		ReferralCode:     details.ReferralCode,
		PartialPayment:   details.PartialPayment,
		Agent:            details.Agent,
		PaymentToken:     details.PaymentToken,
	})

	final, err := begun.State.CompleteSubmit(checkoutErr == nil)
	if err != nil {
		return nil, err
	}
	if err := uc.store.Save(ctx, final); err != nil {
		slog.Warn("failed to save wizard state after submit", "wizard_id", id, "error", err.Error())
	}
	if checkoutErr != nil {
		return nil, checkoutErr
	}
	return &SubmitResult{State: final, Booking: result}, nil
}

// Abandon discards the session. A session mid-submit cannot be abandoned.
func (uc *wizardUseCaseImpl) Abandon(ctx context.Context, userID, id uuid.UUID) error {
	acquired, err := uc.store.AcquireSubmitLock(ctx, id)
	if err != nil {
		return err
	}
	if !acquired {
		return wizard.ErrSubmissionInProgress
	}
	if _, err := uc.load(ctx, userID, id); err != nil {
		if rerr := uc.store.ReleaseSubmitLock(context.WithoutCancel(ctx), id); rerr != nil {
			slog.Warn("failed to release wizard submit lock", "wizard_id", id, "error", rerr.Error())
		}
		return err
	}
	// Delete drops the lock key together with the session.
	return uc.store.Delete(ctx, id)
}

func (uc *wizardUseCaseImpl) load(ctx context.Context, userID, id uuid.UUID) (wizard.State, error) {
	state, err := uc.store.Load(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return wizard.State{}, errs.Mark(err, ErrWizardNotFound)
		}
		return wizard.State{}, err
	}
	if state.UserID != userID {
		return wizard.State{}, ErrWizardNotFound
	}
	return state, nil
}

// checkSelection rejects ids that do not exist or a slot from another activity.
func (uc *wizardUseCaseImpl) checkSelection(ctx context.Context, state wizard.State, sel wizard.Selection) error {
	reads := uc.uow.CommandReads()

	activityID := state.ActivityID
	if sel.ActivityID != nil {
		if _, err := reads.ActivityByID(ctx, *sel.ActivityID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, queries.ErrActivityNotFound)
			}
			return err
		}
		activityID = sel.ActivityID
	}

	if sel.SlotID != nil {
		slot, err := reads.TimeSlotByID(ctx, *sel.SlotID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, queries.ErrSlotNotFound)
			}
			return err
		}
		if activityID == nil || slot.ActivityID != *activityID {
			return errs.Mark(ErrSlotMismatch, errs.ErrValidation)
		}
	}
	return nil
}
