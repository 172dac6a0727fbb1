package queries

import (
	"context"

	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByUser(ctx context.Context, userID string) ([]*ReservationView, error)
	Search(ctx context.Context, filter ReservationFilter) (*Page[*ReservationView], error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	// FindByUserID returns the user's reservations, newest check-in first.
	FindByUserID(ctx context.Context, userID string) ([]*ReservationView, error)
	// Search returns one page ordered by check-in desc then id, plus the total match count.
	Search(ctx context.Context, filter ReservationFilter) ([]*ReservationView, int, error)
}

type reservationQueriesImpl struct {
	store       ReservationReadStore
	maxPageSize int
}

func NewReservationQueries(store ReservationReadStore, maxPageSize int) ReservationQueries {
	return &reservationQueriesImpl{store: store, maxPageSize: maxPageSize}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, reservation.ErrReservationNotFound
		}
		return nil, errs.Internal(err, "failed to load reservation")
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID string) ([]*ReservationView, error) {
	rows, err := q.store.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errs.Internal(err, "failed to list reservations")
	}
	return rows, nil
}

func (q *reservationQueriesImpl) Search(ctx context.Context, filter ReservationFilter) (*Page[*ReservationView], error) {
	filter, err := filter.Normalize(q.maxPageSize)
	if err != nil {
		return nil, err
	}

	rows, total, err := q.store.Search(ctx, filter)
	if err != nil {
		return nil, errs.Internal(err, "failed to search reservations")
	}
	return &Page[*ReservationView]{Items: rows, Page: filter.Page, Size: filter.Size, Total: total}, nil
}
