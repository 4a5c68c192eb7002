package components

import (
	"experience-booking/internal/infra/pgquery"
	"experience-booking/internal/infra/session"
	"experience-booking/internal/infra/uow"
	"experience-booking/internal/pkg/config"
	"experience-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Repositories and read stores are created per transaction inside the
// unit of work, so only the UoW itself is provided here.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewQueries,
		uow.NewPostgresUoW,
		fx.Annotate(
			NewWizardStore,
			fx.As(new(shared.WizardStore)),
		),
	),
)

func NewQueries(_ *pgxpool.Pool) *pgquery.Queries {
	return pgquery.New()
}

func NewWizardStore(rdb *redis.Client, cfg config.Config) *session.WizardStore {
	return session.NewWizardStore(rdb, cfg.Redis)
}
