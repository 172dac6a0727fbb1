package repository

import (
	"context"

	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/db"
	"hotel-backoffice/internal/infra/repository/converter"
	"hotel-backoffice/internal/pkg/pgconv"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	sql, args, err := db.PSQL.Insert("reservations").
		Columns(converter.ReservationColumns...).
		Values(converter.ReservationValues(res)...).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build reservation insert", err, infra.KindDBFailure)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	sql, args, err := db.PSQL.Update("reservations").
		SetMap(converter.ReservationUpdates(res)).
		Where(squirrel.Eq{"id": pgconv.UUIDToPgtype(res.ID())}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build reservation update", err, infra.KindDBFailure)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("reservation not found")
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	sql, args, err := db.PSQL.Select(converter.ReservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": pgconv.UUIDToPgtype(id)}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build reservation select", err, infra.KindDBFailure)
	}

	var row converter.ReservationRow
	if err := r.db.QueryRow(ctx, sql, args...).Scan(row.ScanTargets()...); err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}

	res, err := converter.ReservationFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert reservation", err, infra.KindDBFailure)
	}
	return res, nil
}

func (r *ReservationRepository) LiveOccupancies(ctx context.Context, roomID uuid.UUID, period reservation.StayPeriod) ([]reservation.Occupancy, error) {
	sql, args, err := db.PSQL.Select("id", "room_id", "check_in_date", "check_out_date", "status").
		From("reservations").
		Where(squirrel.Eq{"room_id": pgconv.UUIDToPgtype(roomID)}).
		Where(squirrel.Eq{"status": converter.LiveStatuses()}).
		Where(squirrel.Lt{"check_in_date": pgconv.DateToPgtype(period.CheckOut())}).
		Where(squirrel.Gt{"check_out_date": pgconv.DateToPgtype(period.CheckIn())}).
		OrderBy("check_in_date").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build occupancy query", err, infra.KindDBFailure)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query occupancies", err)
	}
	defer rows.Close()

	var out []reservation.Occupancy
	for rows.Next() {
		var row converter.OccupancyRow
		if err := rows.Scan(row.ScanTargets()...); err != nil {
			return nil, infra.WrapRepoErr("failed to scan occupancy", err, infra.KindDBFailure)
		}
		occ, err := converter.OccupancyFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert occupancy", err, infra.KindDBFailure)
		}
		out = append(out, occ)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate occupancies", err)
	}
	return out, nil
}
