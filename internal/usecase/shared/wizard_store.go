package shared

import (
	"context"

	"experience-booking/internal/domain/wizard"

	"github.com/google/uuid"
)

type WizardStore interface {
	Save(ctx context.Context, state wizard.State) error
	Load(ctx context.Context, id uuid.UUID) (wizard.State, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// AcquireSubmitLock reports false when another submission holds the lock.
	AcquireSubmitLock(ctx context.Context, id uuid.UUID) (bool, error)
	ReleaseSubmitLock(ctx context.Context, id uuid.UUID) error
}
