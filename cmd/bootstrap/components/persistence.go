package components

import (
	infradb "hotelhub/internal/infra/db"
	"hotelhub/internal/infra/readstore"
	"hotelhub/internal/infra/repository"
	"hotelhub/internal/infra/uow"
	"hotelhub/internal/pkg/config"
	"hotelhub/internal/usecase"
	"hotelhub/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		NewUnitOfWork,
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(usecase.BookingViews)),
		),
		fx.Annotate(
			readstore.NewRoomTypeReadStore,
			fx.As(new(usecase.RoomTypeViews)),
		),
		fx.Annotate(
			readstore.NewHotelReadStore,
			fx.As(new(usecase.HotelViews)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) infradb.DBTX {
	return pool
}

func NewUnitOfWork(pool *pgxpool.Pool, cfg config.Config) shared.UnitOfWork {
	return uow.NewPostgresUoW(pool, cfg.DB)
}
