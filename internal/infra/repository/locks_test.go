//go:build unit

package repository

import (
	"context"
	"testing"

	"hotel-backoffice/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRoomLocks_LockRooms(t *testing.T) {
	low := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	high := uuid.MustParse("ffffffff-0000-0000-0000-000000000001")

	t.Run("sorted and deduplicated", func(t *testing.T) {
		dbtx := new(MockDBTX)
		var keys []int64
		dbtx.On("Exec", mock.Anything, "SELECT pg_advisory_xact_lock($1)", mock.Anything).
			Run(func(args mock.Arguments) {
				keys = append(keys, args.Get(2).([]any)[0].(int64))
			}).
			Return(pgconn.NewCommandTag("SELECT 1"), nil)

		err := NewRoomLocks(dbtx).LockRooms(context.Background(), high, low, high)

		assert.NoError(t, err)
		assert.Equal(t, []int64{RoomLockKey(low), RoomLockKey(high)}, keys)
	})

	t.Run("lock failure", func(t *testing.T) {
		dbtx := new(MockDBTX)
		dbtx.On("Exec", mock.Anything, mock.Anything, mock.Anything).Return(pgconn.CommandTag{}, assert.AnError)

		err := NewRoomLocks(dbtx).LockRooms(context.Background(), low)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestRoomLockKey(t *testing.T) {
	id := uuid.New()
	assert.Equal(t, RoomLockKey(id), RoomLockKey(id))
	assert.NotEqual(t, RoomLockKey(id), RoomLockKey(uuid.New()))
}
