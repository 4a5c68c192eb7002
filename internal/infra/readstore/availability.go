package readstore

import (
	"context"

	"experience-booking/internal/domain/availability"
	"experience-booking/internal/infra"
	"experience-booking/internal/infra/pgquery"
	"experience-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AvailabilityReadQueries interface {
	SumBookedSeats(ctx context.Context, db pgquery.DBTX, arg pgquery.SumBookedSeatsParams) (int64, error)
	SumBookedSeatsBySlots(ctx context.Context, db pgquery.DBTX, arg pgquery.SumBookedSeatsBySlotsParams) ([]pgquery.SumBookedSeatsBySlotsRow, error)
}

type AvailabilityReadStore struct {
	queries AvailabilityReadQueries
}

func NewAvailabilityReadStore(queries AvailabilityReadQueries) *AvailabilityReadStore {
	return &AvailabilityReadStore{
		queries: queries,
	}
}

func (r *AvailabilityReadStore) BookedSeats(ctx context.Context, db pgquery.DBTX, slotID uuid.UUID, window availability.DayWindow) (int, error) {
	booked, err := r.queries.SumBookedSeats(ctx, db, pgquery.SumBookedSeatsParams{
		TimeSlotID: slotID,
		DayStart:   pgconv.TimeToPgtype(window.Start),
		DayEnd:     pgconv.TimeToPgtype(window.End),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sum booked seats", err)
	}
	return int(booked), nil
}

// BookedSeatsBySlots omits slots without bookings from the result.
func (r *AvailabilityReadStore) BookedSeatsBySlots(ctx context.Context, db pgquery.DBTX, slotIDs []uuid.UUID, window availability.DayWindow) (map[uuid.UUID]int, error) {
	out := make(map[uuid.UUID]int, len(slotIDs))
	if len(slotIDs) == 0 {
		return out, nil
	}

	rows, err := r.queries.SumBookedSeatsBySlots(ctx, db, pgquery.SumBookedSeatsBySlotsParams{
		TimeSlotIds: pgconv.UUIDsToPgtype(slotIDs),
		DayStart:    pgconv.TimeToPgtype(window.Start),
		DayEnd:      pgconv.TimeToPgtype(window.End),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to sum booked seats by slot", err)
	}

	for _, row := range rows {
		out[row.TimeSlotID] = int(row.Booked)
	}
	return out, nil
}
