package components

import (
	"time"

	"deskbook/internal/pkg/clock"
	"deskbook/internal/pkg/config"
	"deskbook/internal/usecase"
	"deskbook/internal/usecase/commands"
	"deskbook/internal/usecase/queries"

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
	NewOfficeLocation,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewSeatQueries,
		queries.NewUserQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewOfficeLocation(cfg config.Config) (*time.Location, error) {
	return time.LoadLocation(cfg.Booking.TimeZone)
}
