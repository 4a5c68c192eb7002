package readstore

import (
	"context"

	"experience-booking/internal/infra"
	"experience-booking/internal/infra/pgquery"
	"experience-booking/internal/pkg/pgconv"
	"experience-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ProfileReadQueries interface {
	FindProfileByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Profile, error)
}

type ProfileReadStore struct {
	queries ProfileReadQueries
}

func NewProfileReadStore(queries ProfileReadQueries) *ProfileReadStore {
	return &ProfileReadStore{
		queries: queries,
	}
}

func (r *ProfileReadStore) FindByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (*shared.ProfileSnapshot, error) {
	row, err := r.queries.FindProfileByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("profile not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find profile by ID", err)
	}

	return &shared.ProfileSnapshot{
		ID:        row.ID,
		Email:     row.Email,
		FullName:  row.FullName,
		Phone:     pgconv.StringPtrFromPgtype(row.Phone),
		Role:      row.Role,
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
