package components

import (
	"hotel-backoffice/internal/handler"
	"hotel-backoffice/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRoomHandler,
		api.NewReservationHandler,
		api.NewBillHandler,
		func(rooms *api.RoomHandler, reservations *api.ReservationHandler, bills *api.BillHandler) handler.Handlers {
			return handler.Handlers{Rooms: rooms, Reservations: reservations, Bills: bills}
		},
	),
	fx.Invoke(handler.NewRouter),
)
