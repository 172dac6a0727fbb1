package readstore

import (
	"context"

	"hotel-backoffice/internal/domain/billing"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/db"
	"hotel-backoffice/internal/infra/repository/converter"
	"hotel-backoffice/internal/pkg/pgconv"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type BillReadStore struct {
	db db.DBTX
}

func NewBillReadStore(dbtx db.DBTX) *BillReadStore {
	return &BillReadStore{db: dbtx}
}

func (s *BillReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BillView, error) {
	return s.findOne(ctx, squirrel.Eq{"id": pgconv.UUIDToPgtype(id)})
}

func (s *BillReadStore) FindByReservationID(ctx context.Context, reservationID uuid.UUID) (*queries.BillView, error) {
	return s.findOne(ctx, squirrel.Eq{"reservation_id": pgconv.UUIDToPgtype(reservationID)})
}

func (s *BillReadStore) findOne(ctx context.Context, where squirrel.Eq) (*queries.BillView, error) {
	sql, args, err := db.PSQL.Select(converter.BillColumns...).From("bills").Where(where).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build bill view query", err, infra.KindDBFailure)
	}

	var row converter.BillRow
	if err := s.db.QueryRow(ctx, sql, args...).Scan(row.ScanTargets()...); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("bill not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find bill", err)
	}

	sql, args, err = db.PSQL.Select(converter.BillItemColumns...).
		From("bill_items").
		Where(squirrel.Eq{"bill_id": row.ID}).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build bill item query", err, infra.KindDBFailure)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query bill items", err)
	}
	defer rows.Close()

	var items []billing.Item
	for rows.Next() {
		var ir converter.BillItemRow
		if err := rows.Scan(ir.ScanTargets()...); err != nil {
			return nil, infra.WrapRepoErr("failed to scan bill item", err, infra.KindDBFailure)
		}
		it, err := converter.BillItemFromRow(ir)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert bill item", err, infra.KindDBFailure)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bill items", err)
	}

	b, err := converter.BillFromRow(row, items)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert bill", err, infra.KindDBFailure)
	}
	return queries.NewBillView(b.Snapshot()), nil
}
