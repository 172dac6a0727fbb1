package repository

import (
	"context"

	"hotel-backoffice/internal/domain/customer"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/db"
	"hotel-backoffice/internal/infra/repository/converter"
	"hotel-backoffice/internal/pkg/pgconv"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type CustomerRepository struct {
	db db.DBTX
}

func NewCustomerRepository(dbtx db.DBTX) *CustomerRepository {
	return &CustomerRepository{db: dbtx}
}

func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	sql, args, err := db.PSQL.Insert("customers").
		Columns(converter.CustomerColumns...).
		Values(converter.CustomerValues(c)...).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build customer insert", err, infra.KindDBFailure)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return infra.WrapRepoErr("failed to create customer", err)
	}
	return nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	return r.findOne(ctx, squirrel.Eq{"id": pgconv.UUIDToPgtype(id)})
}

func (r *CustomerRepository) FindByUserID(ctx context.Context, userID string) (*customer.Customer, error) {
	return r.findOne(ctx, squirrel.Eq{"user_id": userID})
}

func (r *CustomerRepository) findOne(ctx context.Context, where squirrel.Eq) (*customer.Customer, error) {
	sql, args, err := db.PSQL.Select(converter.CustomerColumns...).
		From("customers").
		Where(where).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build customer select", err, infra.KindDBFailure)
	}

	var row converter.CustomerRow
	if err := r.db.QueryRow(ctx, sql, args...).Scan(row.ScanTargets()...); err != nil {
		return nil, infra.WrapRepoErr("failed to find customer", err)
	}
	return converter.CustomerFromRow(row), nil
}
