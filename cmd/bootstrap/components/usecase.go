package components

import (
	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/pkg/clock"
	"hotel-backoffice/internal/pkg/config"
	"hotel-backoffice/internal/usecase/commands"
	"hotel-backoffice/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	NewClock,
	NewPolicy,
	fx.Annotate(
		NewPriceCalculator,
		fx.As(new(reservation.PriceCalculator)),
	),
	reservation.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
		commands.NewBillingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		func(store queries.RoomReadStore, cfg config.Config) queries.RoomQueries {
			return queries.NewRoomQueries(store, cfg.Hotel.SearchMaxPageSize)
		},
		func(store queries.ReservationReadStore, cfg config.Config) queries.ReservationQueries {
			return queries.NewReservationQueries(store, cfg.Hotel.SearchMaxPageSize)
		},
		queries.NewBillQueries,
	),
)

// NewClock reports time in the hotel's zone so "today" is the hotel's day.
func NewClock(cfg config.Config) (clock.Clock, error) {
	loc, err := cfg.Hotel.Location()
	if err != nil {
		return nil, err
	}
	return clock.NewZonedClock(clock.NewRealClock(), loc), nil
}

func NewPolicy(cfg config.Config) (reservation.Policy, error) {
	loc, err := cfg.Hotel.Location()
	if err != nil {
		return reservation.Policy{}, err
	}
	return reservation.Policy{
		Location:           loc,
		ModificationCutoff: cfg.Hotel.ModificationCutoff,
		FullRefundAfter:    cfg.Hotel.FullRefundAfter,
		HalfRefundAfter:    cfg.Hotel.HalfRefundAfter,
	}, nil
}

func NewPriceCalculator(cfg config.Config) (*reservation.DefaultPriceCalculator, error) {
	rate, err := cfg.Hotel.TaxRatePercent()
	if err != nil {
		return nil, err
	}
	return reservation.NewDefaultPriceCalculator(rate), nil
}
