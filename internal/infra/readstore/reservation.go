package readstore

import (
	"context"
	"strings"
	"time"

	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/db"
	"hotel-backoffice/internal/pkg/pgconv"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

var reservationViewColumns = []string{
	"r.id", "r.customer_id", "c.full_name", "c.email",
	"r.room_id", "rm.room_number", "rm.room_type",
	"r.check_in_date", "r.check_out_date",
	"r.number_of_adults", "r.number_of_children", "r.number_of_nights",
	"r.base_amount", "r.tax_amount", "r.discount_amount", "r.total_amount",
	"r.status", "r.payment_status", "r.payment_method", "r.transaction_id", "r.special_requests",
	"r.cancellation_reason", "r.cancellation_date", "r.refund_amount",
	"r.created_at", "r.updated_at",
}

var reservationViewOrder = []string{"r.check_in_date DESC", "r.id ASC"}

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	sql, args, err := reservationViews().Where(squirrel.Eq{"r.id": pgconv.UUIDToPgtype(id)}).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build reservation view query", err, infra.KindDBFailure)
	}

	var row reservationViewRow
	if err := s.db.QueryRow(ctx, sql, args...).Scan(row.scanTargets()...); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return row.toView()
}

func (s *ReservationReadStore) FindByUserID(ctx context.Context, userID string) ([]*queries.ReservationView, error) {
	sql, args, err := reservationViews().
		Where(squirrel.Eq{"c.user_id": userID}).
		OrderBy(reservationViewOrder...).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build user reservations query", err, infra.KindDBFailure)
	}
	return s.list(ctx, sql, args)
}

func (s *ReservationReadStore) Search(ctx context.Context, f queries.ReservationFilter) ([]*queries.ReservationView, int, error) {
	where := squirrel.And{}
	for _, p := range f.Predicates() {
		where = append(where, reservationCondition(p))
	}

	count := db.PSQL.Select("COUNT(*)").
		From("reservations r").
		Join("customers c ON c.id = r.customer_id").
		Join("rooms rm ON rm.id = r.room_id")
	page := reservationViews()
	if len(where) > 0 {
		count, page = count.Where(where), page.Where(where)
	}

	countSQL, countArgs, err := count.ToSql()
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to build reservation count", err, infra.KindDBFailure)
	}
	var total int
	if err := s.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count reservations", err)
	}

	sql, args, err := page.
		OrderBy(reservationViewOrder...).
		Limit(uint64(f.Size)).      // #nosec G115 -- size is normalized positive
		Offset(uint64(f.Offset())). // #nosec G115 -- page is validated non-negative
		ToSql()
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to build reservation search", err, infra.KindDBFailure)
	}

	views, err := s.list(ctx, sql, args)
	if err != nil {
		return nil, 0, err
	}
	return views, total, nil
}

func (s *ReservationReadStore) list(ctx context.Context, sql string, args []any) ([]*queries.ReservationView, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query reservations", err)
	}
	defer rows.Close()

	views := []*queries.ReservationView{}
	for rows.Next() {
		var row reservationViewRow
		if err := rows.Scan(row.scanTargets()...); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err, infra.KindDBFailure)
		}
		v, err := row.toView()
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return views, nil
}

func reservationViews() squirrel.SelectBuilder {
	return db.PSQL.Select(reservationViewColumns...).
		From("reservations r").
		Join("customers c ON c.id = r.customer_id").
		Join("rooms rm ON rm.id = r.room_id")
}

func reservationCondition(p queries.ReservationPredicate) squirrel.Sqlizer {
	switch p.Kind {
	case queries.ReservationByStatus:
		return squirrel.Eq{"r.status": string(p.Status)}
	case queries.ReservationCheckInFrom:
		return squirrel.GtOrEq{"r.check_in_date": pgconv.DateToPgtype(p.Date)}
	case queries.ReservationCheckInTo:
		return squirrel.LtOrEq{"r.check_in_date": pgconv.DateToPgtype(p.Date)}
	case queries.ReservationByRoomNumber:
		return squirrel.Eq{"rm.room_number": p.Text}
	case queries.ReservationByText:
		pattern := "%" + escapeLike(p.Text) + "%"
		return squirrel.Or{
			squirrel.ILike{"c.full_name": pattern},
			squirrel.ILike{"c.email": pattern},
			squirrel.ILike{"rm.room_number": pattern},
		}
	default:
		return squirrel.Expr("FALSE")
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

type reservationViewRow struct {
	ID              pgtype.UUID
	CustomerID      pgtype.UUID
	CustomerName    string
	CustomerEmail   string
	RoomID          pgtype.UUID
	RoomNumber      string
	RoomType        string
	CheckIn         pgtype.Date
	CheckOut        pgtype.Date
	Adults          int32
	Children        int32
	Nights          int32
	BaseAmount      pgtype.Numeric
	TaxAmount       pgtype.Numeric
	DiscountAmount  pgtype.Numeric
	TotalAmount     pgtype.Numeric
	Status          string
	PaymentStatus   string
	PaymentMethod   pgtype.Text
	TransactionID   pgtype.Text
	SpecialRequests string
	CancelReason    pgtype.Text
	CancelledAt     pgtype.Timestamptz
	RefundAmount    pgtype.Numeric
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (r *reservationViewRow) scanTargets() []any {
	return []any{
		&r.ID, &r.CustomerID, &r.CustomerName, &r.CustomerEmail,
		&r.RoomID, &r.RoomNumber, &r.RoomType,
		&r.CheckIn, &r.CheckOut,
		&r.Adults, &r.Children, &r.Nights,
		&r.BaseAmount, &r.TaxAmount, &r.DiscountAmount, &r.TotalAmount,
		&r.Status, &r.PaymentStatus, &r.PaymentMethod, &r.TransactionID, &r.SpecialRequests,
		&r.CancelReason, &r.CancelledAt, &r.RefundAmount,
		&r.CreatedAt, &r.UpdatedAt,
	}
}

func (r *reservationViewRow) toView() (*queries.ReservationView, error) {
	v := &queries.ReservationView{
		ID:                 pgconv.UUIDFromPgtype(r.ID),
		CustomerID:         pgconv.UUIDFromPgtype(r.CustomerID),
		CustomerName:       r.CustomerName,
		CustomerEmail:      r.CustomerEmail,
		RoomID:             pgconv.UUIDFromPgtype(r.RoomID),
		RoomNumber:         r.RoomNumber,
		RoomType:           r.RoomType,
		CheckInDate:        pgconv.DateFromPgtype(r.CheckIn),
		CheckOutDate:       pgconv.DateFromPgtype(r.CheckOut),
		Adults:             int(r.Adults),
		Children:           int(r.Children),
		Nights:             int(r.Nights),
		Status:             r.Status,
		PaymentStatus:      r.PaymentStatus,
		PaymentMethod:      pgconv.StringPtrFromPgtype(r.PaymentMethod),
		TransactionID:      pgconv.StringPtrFromPgtype(r.TransactionID),
		SpecialRequests:    r.SpecialRequests,
		CancellationReason: pgconv.StringPtrFromPgtype(r.CancelReason),
		CancellationDate:   pgconv.TimePtrFromPgtype(r.CancelledAt),
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}

	var err error
	for _, f := range []struct {
		dst *decimal.Decimal
		src pgtype.Numeric
	}{
		{&v.BaseAmount, r.BaseAmount},
		{&v.TaxAmount, r.TaxAmount},
		{&v.DiscountAmount, r.DiscountAmount},
		{&v.TotalAmount, r.TotalAmount},
	} {
		if *f.dst, err = pgconv.NumericToDecimal(f.src); err != nil {
			return nil, infra.WrapRepoErr("failed to convert reservation amount", err, infra.KindDBFailure)
		}
	}
	if v.RefundAmount, err = pgconv.NumericPtrToDecimal(r.RefundAmount); err != nil {
		return nil, infra.WrapRepoErr("failed to convert refund amount", err, infra.KindDBFailure)
	}
	return v, nil
}
