package queries

import (
	"context"

	"hotel-backoffice/internal/domain/room"
	"hotel-backoffice/internal/pkg/errs"
)

type RoomQueries interface {
	SearchAvailable(ctx context.Context, params room.SearchParams) (*Page[*RoomView], error)
}

type RoomReadStore interface {
	// Search applies every predicate of c and returns the requested page and the total match count.
	Search(ctx context.Context, c room.SearchCriteria) ([]*RoomView, int, error)
}

type roomQueriesImpl struct {
	store       RoomReadStore
	maxPageSize int
}

func NewRoomQueries(store RoomReadStore, maxPageSize int) RoomQueries {
	return &roomQueriesImpl{store: store, maxPageSize: maxPageSize}
}

func (q *roomQueriesImpl) SearchAvailable(ctx context.Context, params room.SearchParams) (*Page[*RoomView], error) {
	criteria, err := room.NewSearchCriteria(params, q.maxPageSize)
	if err != nil {
		return nil, err
	}

	rooms, total, err := q.store.Search(ctx, criteria)
	if err != nil {
		return nil, errs.Internal(err, "failed to search rooms")
	}

	return &Page[*RoomView]{Items: rooms, Page: criteria.Page, Size: criteria.Size, Total: total}, nil
}
