package repository

import (
	"context"

	"hotel-backoffice/internal/domain/room"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/db"
	"hotel-backoffice/internal/infra/repository/converter"
	"hotel-backoffice/internal/pkg/pgconv"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// RoomRepository reads the room catalog; the booking engine never writes rooms.
type RoomRepository struct {
	db db.DBTX
}

func NewRoomRepository(dbtx db.DBTX) *RoomRepository {
	return &RoomRepository{db: dbtx}
}

func (r *RoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	sql, args, err := db.PSQL.Select(converter.RoomColumns...).
		From("rooms").
		Where(squirrel.Eq{"id": pgconv.UUIDToPgtype(id)}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build room select", err, infra.KindDBFailure)
	}

	var row converter.RoomRow
	if err := r.db.QueryRow(ctx, sql, args...).Scan(row.ScanTargets()...); err != nil {
		return nil, infra.WrapRepoErr("failed to find room", err)
	}

	rm, err := converter.RoomFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert room", err, infra.KindDBFailure)
	}
	return rm, nil
}
