package repository

import (
	"context"

	"hotel-backoffice/internal/domain/billing"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/db"
	"hotel-backoffice/internal/infra/repository/converter"
	"hotel-backoffice/internal/pkg/pgconv"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BillRepository struct {
	db db.DBTX
}

func NewBillRepository(dbtx db.DBTX) *BillRepository {
	return &BillRepository{db: dbtx}
}

func (r *BillRepository) Create(ctx context.Context, b *billing.Bill) error {
	sql, args, err := db.PSQL.Insert("bills").
		Columns(converter.BillColumns...).
		Values(converter.BillValues(b)...).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build bill insert", err, infra.KindDBFailure)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return infra.WrapRepoErr("failed to create bill", err)
	}
	return r.insertItems(ctx, b)
}

// Update rewrites the bill header and replaces its item lines.
func (r *BillRepository) Update(ctx context.Context, b *billing.Bill) error {
	billID := pgconv.UUIDToPgtype(b.ID())

	sql, args, err := db.PSQL.Update("bills").
		SetMap(converter.BillUpdates(b)).
		Where(squirrel.Eq{"id": billID}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build bill update", err, infra.KindDBFailure)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update bill", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("bill not found")
	}

	sql, args, err = db.PSQL.Delete("bill_items").Where(squirrel.Eq{"bill_id": billID}).ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build bill item delete", err, infra.KindDBFailure)
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return infra.WrapRepoErr("failed to clear bill items", err)
	}
	return r.insertItems(ctx, b)
}

func (r *BillRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Bill, error) {
	return r.findOne(ctx, squirrel.Eq{"id": pgconv.UUIDToPgtype(id)})
}

func (r *BillRepository) FindByReservationID(ctx context.Context, reservationID uuid.UUID) (*billing.Bill, error) {
	return r.findOne(ctx, squirrel.Eq{"reservation_id": pgconv.UUIDToPgtype(reservationID)})
}

func (r *BillRepository) findOne(ctx context.Context, where squirrel.Eq) (*billing.Bill, error) {
	sql, args, err := db.PSQL.Select(converter.BillColumns...).
		From("bills").
		Where(where).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build bill select", err, infra.KindDBFailure)
	}

	var row converter.BillRow
	if err := r.db.QueryRow(ctx, sql, args...).Scan(row.ScanTargets()...); err != nil {
		return nil, infra.WrapRepoErr("failed to find bill", err)
	}

	items, err := r.items(ctx, row.ID)
	if err != nil {
		return nil, err
	}

	b, err := converter.BillFromRow(row, items)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert bill", err, infra.KindDBFailure)
	}
	return b, nil
}

func (r *BillRepository) items(ctx context.Context, billID pgtype.UUID) ([]billing.Item, error) {
	sql, args, err := db.PSQL.Select(converter.BillItemColumns...).
		From("bill_items").
		Where(squirrel.Eq{"bill_id": billID}).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build bill item select", err, infra.KindDBFailure)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query bill items", err)
	}
	defer rows.Close()

	var items []billing.Item
	for rows.Next() {
		var row converter.BillItemRow
		if err := rows.Scan(row.ScanTargets()...); err != nil {
			return nil, infra.WrapRepoErr("failed to scan bill item", err, infra.KindDBFailure)
		}
		item, err := converter.BillItemFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert bill item", err, infra.KindDBFailure)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bill items", err)
	}
	return items, nil
}

func (r *BillRepository) insertItems(ctx context.Context, b *billing.Bill) error {
	items := b.Items()
	if len(items) == 0 {
		return nil
	}

	billID := pgconv.UUIDToPgtype(b.ID())
	insert := db.PSQL.Insert("bill_items").Columns(converter.BillItemColumns...)
	for i, it := range items {
		insert = insert.Values(converter.BillItemValues(billID, i, it)...)
	}

	sql, args, err := insert.ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build bill item insert", err, infra.KindDBFailure)
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return infra.WrapRepoErr("failed to insert bill items", err)
	}
	return nil
}
