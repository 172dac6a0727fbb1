package components

import (
	"hotel-backoffice/internal/infra/db"
	"hotel-backoffice/internal/infra/memstore"
	"hotel-backoffice/internal/infra/readstore"
	"hotel-backoffice/internal/infra/uow"
	"hotel-backoffice/internal/pkg/clock"
	"hotel-backoffice/internal/pkg/config"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/usecase/queries"
	"hotel-backoffice/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewStores,
	),
)

// Stores is the write side and the read side of one storage driver.
type Stores struct {
	fx.Out

	UoW          shared.UnitOfWork
	Rooms        queries.RoomReadStore
	Reservations queries.ReservationReadStore
	Bills        queries.BillReadStore
}

func NewStores(cfg config.Config, pool *pgxpool.Pool, clk clock.Clock) (Stores, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		if pool == nil {
			return Stores{}, errs.New("postgres driver selected without a connection pool")
		}
		var dbtx db.DBTX = pool
		return Stores{
			UoW:          uow.NewPostgresUoW(pool),
			Rooms:        readstore.NewRoomReadStore(dbtx),
			Reservations: readstore.NewReservationReadStore(dbtx),
			Bills:        readstore.NewBillReadStore(dbtx),
		}, nil
	case config.StorageDriverMemory:
		store := memstore.New()
		if err := memstore.SeedDemoRooms(store, clk.Now()); err != nil {
			return Stores{}, errs.Wrap(err, "failed to seed demo rooms")
		}
		return Stores{
			UoW:          memstore.NewUoW(store),
			Rooms:        memstore.NewRoomReadStore(store),
			Reservations: memstore.NewReservationReadStore(store),
			Bills:        memstore.NewBillReadStore(store),
		}, nil
	default:
		return Stores{}, errs.Newf("unknown STORAGE_DRIVER %q", cfg.Storage.Driver)
	}
}
