package readstore

import (
	"context"
	"fmt"
	"strings"

	"hotel-backoffice/internal/domain/room"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/db"
	"hotel-backoffice/internal/infra/repository/converter"
	"hotel-backoffice/internal/pkg/pgconv"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/Masterminds/squirrel"
)

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(dbtx db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: dbtx}
}

func (s *RoomReadStore) Search(ctx context.Context, c room.SearchCriteria) ([]*queries.RoomView, int, error) {
	where := squirrel.And{}
	for _, p := range c.Predicates() {
		where = append(where, roomCondition(p))
	}

	countSQL, countArgs, err := db.PSQL.Select("COUNT(*)").From("rooms r").Where(where).ToSql()
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to build room count", err, infra.KindDBFailure)
	}
	var total int
	if err := s.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count rooms", err)
	}

	sql, args, err := db.PSQL.Select(prefixed("r", converter.RoomColumns)...).
		From("rooms r").
		Where(where).
		OrderBy(roomOrderBy(c.SortBy, c.SortOrder)...).
		Limit(uint64(c.Size)).      // #nosec G115 -- size is validated positive
		Offset(uint64(c.Offset())). // #nosec G115 -- offset is validated non-negative
		ToSql()
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to build room search", err, infra.KindDBFailure)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to search rooms", err)
	}
	defer rows.Close()

	views := make([]*queries.RoomView, 0, c.Size)
	for rows.Next() {
		var row converter.RoomRow
		if err := rows.Scan(row.ScanTargets()...); err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan room", err, infra.KindDBFailure)
		}
		rm, err := converter.RoomFromRow(row)
		if err != nil {
			return nil, 0, infra.WrapRepoErr("failed to convert room", err, infra.KindDBFailure)
		}
		views = append(views, queries.NewRoomView(rm))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to iterate rooms", err)
	}
	return views, total, nil
}

func roomCondition(p room.Predicate) squirrel.Sqlizer {
	switch p.Kind {
	case room.PredicateAvailableFlag:
		return squirrel.Eq{"r.is_available": true}
	case room.PredicateCapacity:
		return squirrel.GtOrEq{"r.max_occupancy": p.Occupancy}
	case room.PredicateType:
		return squirrel.Eq{"r.room_type": string(p.Type)}
	case room.PredicateMinPrice:
		return squirrel.GtOrEq{"r.nightly_rate": pgconv.DecimalToNumeric(p.Price)}
	case room.PredicateMaxPrice:
		return squirrel.LtOrEq{"r.nightly_rate": pgconv.DecimalToNumeric(p.Price)}
	case room.PredicateFreeFor:
		return squirrel.Expr(
			"NOT EXISTS (SELECT 1 FROM reservations x WHERE x.room_id = r.id"+
				" AND x.status = ANY(?) AND x.check_in_date < ? AND x.check_out_date > ?)",
			converter.LiveStatuses(),
			pgconv.DateToPgtype(p.Period.CheckOut()),
			pgconv.DateToPgtype(p.Period.CheckIn()),
		)
	default:
		return squirrel.Expr("FALSE")
	}
}

// roomOrderBy mirrors room.SortRooms: the chosen key, then ascending id.
func roomOrderBy(key room.SortKey, order room.SortOrder) []string {
	dir := "ASC"
	if order == room.SortDesc {
		dir = "DESC"
	}

	var expr string
	switch key {
	case room.SortByType:
		var b strings.Builder
		b.WriteString("CASE r.room_type")
		for i, t := range room.TypesBySize() {
			fmt.Fprintf(&b, " WHEN '%s' THEN %d", t, i)
		}
		fmt.Fprintf(&b, " ELSE %d END", len(room.TypesBySize()))
		expr = b.String()
	case room.SortByNumber:
		expr = `r.room_number COLLATE "C"`
	default:
		expr = "r.nightly_rate"
	}
	return []string{expr + " " + dir, "r.id ASC"}
}

func prefixed(alias string, cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = alias + "." + c
	}
	return out
}
