package repository

import (
	"context"

	"experience-booking/internal/domain/booking"
	"experience-booking/internal/infra"
	"experience-booking/internal/infra/pgquery"
	"experience-booking/internal/infra/repository/converter"
	"experience-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	InsertBooking(ctx context.Context, db pgquery.DBTX, arg pgquery.InsertBookingParams) (uuid.UUID, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      pgquery.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db pgquery.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	params := converter.BookingToInsertParams(b)

	id, err := r.queries.InsertBooking(ctx, r.db, params)
	if err != nil {
		return uuid.Nil, classifyWriteErr("failed to create booking", err)
	}

	return id, nil
}

func classifyWriteErr(msg string, err error) error {
	switch {
	case pgconv.IsUniqueViolation(err):
		return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
	case pgconv.IsForeignKeyViolation(err):
		return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
	default:
		return infra.WrapRepoErr(msg, err)
	}
}
