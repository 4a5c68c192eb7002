package repository

import (
	"context"
	"log/slog"

	"experience-booking/internal/infra"
	"experience-booking/internal/infra/pgquery"

	"github.com/google/uuid"
)

type ProfileWriteQueries interface {
	FillProfilePhone(ctx context.Context, db pgquery.DBTX, arg pgquery.FillProfilePhoneParams) (int64, error)
}

type ProfileRepository struct {
	queries ProfileWriteQueries
	db      pgquery.DBTX
}

func NewProfileRepository(queries ProfileWriteQueries, db pgquery.DBTX) *ProfileRepository {
	return &ProfileRepository{
		queries: queries,
		db:      db,
	}
}

// UpdatePhone never overwrites a phone already on the profile.
func (r *ProfileRepository) UpdatePhone(ctx context.Context, userID uuid.UUID, phone string) error {
	n, err := r.queries.FillProfilePhone(ctx, r.db, pgquery.FillProfilePhoneParams{ID: userID, Phone: phone})
	if err != nil {
		return infra.WrapRepoErr("failed to update profile phone", err)
	}
	if n == 0 {
		slog.Debug("profile phone left unchanged", "user_id", userID.String())
	}
	return nil
}
