package repository

import (
	"context"

	"experience-booking/internal/domain/booking"
	"experience-booking/internal/infra"
	"experience-booking/internal/infra/pgquery"
	"experience-booking/internal/infra/repository/converter"
	"experience-booking/internal/pkg/errs"
)

type ParticipantWriteQueries interface {
	InsertParticipants(ctx context.Context, db pgquery.DBTX, arg []pgquery.InsertParticipantsParams) (int64, error)
}

type ParticipantRepository struct {
	queries ParticipantWriteQueries
	db      pgquery.DBTX
}

func NewParticipantRepository(queries ParticipantWriteQueries, db pgquery.DBTX) *ParticipantRepository {
	return &ParticipantRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ParticipantRepository) CreateMany(ctx context.Context, participants []booking.Participant) error {
	if len(participants) == 0 {
		return nil
	}

	n, err := r.queries.InsertParticipants(ctx, r.db, converter.ParticipantsToInsertParams(participants))
	if err != nil {
		return classifyWriteErr("failed to create booking participants", err)
	}
	if n != int64(len(participants)) {
		return infra.WrapRepoErr("failed to create booking participants",
			errs.Newf("copied %d of %d rows", n, len(participants)))
	}

	return nil
}
