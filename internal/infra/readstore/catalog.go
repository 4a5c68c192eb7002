package readstore

import (
	"context"

	"experience-booking/internal/infra"
	"experience-booking/internal/infra/pgquery"
	"experience-booking/internal/pkg/errs"
	"experience-booking/internal/pkg/pgconv"
	"experience-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CatalogReadQueries interface {
	FindExperienceByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Experience, error)
	FindActivityByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Activity, error)
	FindTimeSlotByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.TimeSlot, error)
	ListTimeSlotsByActivity(ctx context.Context, db pgquery.DBTX, activityID uuid.UUID) ([]pgquery.TimeSlot, error)
}

type CatalogReadStore struct {
	queries CatalogReadQueries
}

func NewCatalogReadStore(queries CatalogReadQueries) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
	}
}

func (r *CatalogReadStore) ExperienceByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (*shared.ExperienceSnapshot, error) {
	row, err := r.queries.FindExperienceByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("experience not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find experience by ID", err)
	}

	return &shared.ExperienceSnapshot{
		ID:          row.ID,
		Title:       row.Title,
		Locations:   row.Locations,
		VendorName:  row.VendorName,
		VendorEmail: pgconv.StringFromPgtype(row.VendorEmail),
	}, nil
}

func (r *CatalogReadStore) ActivityByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (*shared.ActivitySnapshot, error) {
	row, err := r.queries.FindActivityByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("activity not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find activity by ID", err)
	}

	return toActivitySnapshot(row)
}

func (r *CatalogReadStore) TimeSlotByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (*shared.TimeSlotSnapshot, error) {
	row, err := r.queries.FindTimeSlotByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("time slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find time slot by ID", err)
	}

	return toTimeSlotSnapshot(row), nil
}

func (r *CatalogReadStore) TimeSlotsByActivity(ctx context.Context, db pgquery.DBTX, activityID uuid.UUID) ([]*shared.TimeSlotSnapshot, error) {
	rows, err := r.queries.ListTimeSlotsByActivity(ctx, db, activityID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list time slots", err)
	}

	out := make([]*shared.TimeSlotSnapshot, len(rows))
	for i, row := range rows {
		out[i] = toTimeSlotSnapshot(row)
	}
	return out, nil
}

func toActivitySnapshot(row pgquery.Activity) (*shared.ActivitySnapshot, error) {
	base, err := pgconv.DecimalFromNumeric(row.BasePrice)
	if err != nil {
		return nil, errs.Wrapf(err, "activity %s base price", row.ID)
	}
	b2b, err := pgconv.DecimalFromNumeric(row.B2bPrice)
	if err != nil {
		return nil, errs.Wrapf(err, "activity %s b2b price", row.ID)
	}
	discount, err := pgconv.DecimalPtrFromNumeric(row.DiscountValue)
	if err != nil {
		return nil, errs.Wrapf(err, "activity %s discount value", row.ID)
	}

	return &shared.ActivitySnapshot{
		ID:            row.ID,
		ExperienceID:  row.ExperienceID,
		Name:          row.Name,
		BasePrice:     base,
		Currency:      row.Currency,
		DiscountType:  pgconv.StringPtrFromPgtype(row.DiscountType),
		DiscountValue: discount,
		B2BPrice:      b2b,
	}, nil
}

func toTimeSlotSnapshot(row pgquery.TimeSlot) *shared.TimeSlotSnapshot {
	return &shared.TimeSlotSnapshot{
		ID:         row.ID,
		ActivityID: row.ActivityID,
		StartTime:  pgconv.TimeOfDayFromPgtype(row.StartTime),
		EndTime:    pgconv.TimeOfDayFromPgtype(row.EndTime),
		Capacity:   int(row.Capacity),
	}
}
