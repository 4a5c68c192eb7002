package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"experience-booking/internal/domain/availability"
	"experience-booking/internal/infra/pgquery"
	"experience-booking/internal/infra/readstore"
	"experience-booking/internal/infra/repository"
	"experience-booking/internal/pkg/errs"
	"experience-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *pgquery.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *pgquery.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads shared.CommandReads) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return newCommandReads(u.q, u.pool)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			q:    u.q,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, reads shared.CommandReads) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, newCommandReads(u.q, pgxTx)); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx pgquery.DBTX
	q    *pgquery.Queries

	// Lazy-initialized repositories
	bookingRepo     shared.BookingRepository
	participantRepo shared.ParticipantRepository
	profileRepo     shared.ProfileRepository
	commandReads    shared.CommandReads
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.q, t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) Participants() shared.ParticipantRepository {
	if t.participantRepo == nil {
		t.participantRepo = repository.NewParticipantRepository(t.q, t.dbtx)
	}
	return t.participantRepo
}

func (t *pgTx) Profiles() shared.ProfileRepository {
	if t.profileRepo == nil {
		t.profileRepo = repository.NewProfileRepository(t.q, t.dbtx)
	}
	return t.profileRepo
}

// Reads inside a transaction see the transaction's own writes.
func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = newCommandReads(t.q, t.dbtx)
	}
	return t.commandReads
}

type commandReads struct {
	dbtx pgquery.DBTX

	catalog      *readstore.CatalogReadStore
	availability *readstore.AvailabilityReadStore
	coupons      *readstore.CouponReadStore
	profiles     *readstore.ProfileReadStore
	bookings     *readstore.BookingReadStore
}

func newCommandReads(q *pgquery.Queries, dbtx pgquery.DBTX) *commandReads {
	return &commandReads{
		dbtx:         dbtx,
		catalog:      readstore.NewCatalogReadStore(q),
		availability: readstore.NewAvailabilityReadStore(q),
		coupons:      readstore.NewCouponReadStore(q),
		profiles:     readstore.NewProfileReadStore(q),
		bookings:     readstore.NewBookingReadStore(q),
	}
}

func (r *commandReads) ExperienceByID(ctx context.Context, id uuid.UUID) (*shared.ExperienceSnapshot, error) {
	return r.catalog.ExperienceByID(ctx, r.dbtx, id)
}

func (r *commandReads) ActivityByID(ctx context.Context, id uuid.UUID) (*shared.ActivitySnapshot, error) {
	return r.catalog.ActivityByID(ctx, r.dbtx, id)
}

func (r *commandReads) TimeSlotByID(ctx context.Context, id uuid.UUID) (*shared.TimeSlotSnapshot, error) {
	return r.catalog.TimeSlotByID(ctx, r.dbtx, id)
}

func (r *commandReads) TimeSlotsByActivity(ctx context.Context, activityID uuid.UUID) ([]*shared.TimeSlotSnapshot, error) {
	return r.catalog.TimeSlotsByActivity(ctx, r.dbtx, activityID)
}

func (r *commandReads) BookedSeats(ctx context.Context, slotID uuid.UUID, window availability.DayWindow) (int, error) {
	return r.availability.BookedSeats(ctx, r.dbtx, slotID, window)
}

func (r *commandReads) BookedSeatsBySlots(ctx context.Context, slotIDs []uuid.UUID, window availability.DayWindow) (map[uuid.UUID]int, error) {
	return r.availability.BookedSeatsBySlots(ctx, r.dbtx, slotIDs, window)
}

func (r *commandReads) CouponByCode(ctx context.Context, code string) (*shared.CouponSnapshot, error) {
	return r.coupons.FindByCode(ctx, r.dbtx, code)
}

func (r *commandReads) ProfileByID(ctx context.Context, id uuid.UUID) (*shared.ProfileSnapshot, error) {
	return r.profiles.FindByID(ctx, r.dbtx, id)
}

func (r *commandReads) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	return r.bookings.FindByID(ctx, r.dbtx, id)
}
