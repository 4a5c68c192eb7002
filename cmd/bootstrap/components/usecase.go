package components

import (
	"experience-booking/internal/domain/pricing"
	"experience-booking/internal/pkg/clock"
	"experience-booking/internal/usecase"
	"experience-booking/internal/usecase/commands"
	"experience-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		pricing.NewDefaultResolver,
		fx.As(new(pricing.Resolver)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingFinalizer,
		commands.NewCheckoutUseCase,
		commands.NewWizardUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCouponValidator,
		queries.NewQuoteQueries,
		queries.NewAvailabilityQueries,
		queries.NewBookingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
