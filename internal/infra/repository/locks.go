package repository

import (
	"bytes"
	"context"
	"encoding/binary"
	"slices"

	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/db"

	"github.com/google/uuid"
)

// RoomLocks serializes bookings per room with transaction-scoped advisory locks.
type RoomLocks struct {
	db db.DBTX
}

func NewRoomLocks(dbtx db.DBTX) *RoomLocks {
	return &RoomLocks{db: dbtx}
}

// LockRooms acquires the locks in ascending id order so two writers touching
// the same pair of rooms cannot deadlock.
func (l *RoomLocks) LockRooms(ctx context.Context, roomIDs ...uuid.UUID) error {
	ids := slices.Clone(roomIDs)
	slices.SortFunc(ids, func(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) })
	ids = slices.Compact(ids)

	for _, id := range ids {
		if _, err := l.db.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", RoomLockKey(id)); err != nil {
			return infra.WrapRepoErr("failed to lock room", err)
		}
	}
	return nil
}

// RoomLockKey folds a room id into the bigint advisory lock keyspace.
func RoomLockKey(id uuid.UUID) int64 {
	hi := binary.BigEndian.Uint64(id[:8])
	lo := binary.BigEndian.Uint64(id[8:])
	return int64(hi ^ lo) // #nosec G115 -- bit pattern reuse, not arithmetic
}
