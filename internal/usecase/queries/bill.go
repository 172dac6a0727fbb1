package queries

import (
	"context"

	"hotel-backoffice/internal/domain/billing"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

type BillQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BillView, error)
	GetByReservationID(ctx context.Context, reservationID uuid.UUID) (*BillView, error)
}

type BillReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BillView, error)
	FindByReservationID(ctx context.Context, reservationID uuid.UUID) (*BillView, error)
}

type billQueriesImpl struct {
	store BillReadStore
}

func NewBillQueries(store BillReadStore) BillQueries {
	return &billQueriesImpl{store: store}
}

func (q *billQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BillView, error) {
	return q.find(q.store.FindByID(ctx, id))
}

func (q *billQueriesImpl) GetByReservationID(ctx context.Context, reservationID uuid.UUID) (*BillView, error) {
	return q.find(q.store.FindByReservationID(ctx, reservationID))
}

func (q *billQueriesImpl) find(view *BillView, err error) (*BillView, error) {
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, billing.ErrBillNotFound
		}
		return nil, errs.Internal(err, "failed to load bill")
	}
	return view, nil
}
