package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"slotswapper/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestSwapStore_RunInTransaction_Commit(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE slots`).
		WithArgs("slot-1", "SWAP_PENDING", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	store := NewSwapStore(db)
	err = store.RunInTransaction(ctx, func(tx domain.SwapTx) error {
		return tx.SetSlotState(ctx, "slot-1", domain.SlotStatusSwapPending, "user-1")
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSwapStore_RunInTransaction_RollbackOnError(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	store := NewSwapStore(db)
	sentinel := errors.New("engine says no")
	err = store.RunInTransaction(ctx, func(tx domain.SwapTx) error {
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSwapStore_RunInTransaction_ConflictMapping(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		code pq.ErrorCode
	}{
		{name: "serialization failure", code: "40001"},
		{name: "lock not available", code: "55P03"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			mock.ExpectBegin()
			mock.ExpectQuery(`SELECT id, title, start_time, end_time, status, owner_id, created_at, updated_at\s+FROM slots`).
				WithArgs("slot-1").
				WillReturnError(&pq.Error{Code: tt.code})
			mock.ExpectRollback()

			store := NewSwapStore(db)
			err = store.RunInTransaction(ctx, func(tx domain.SwapTx) error {
				_, err := tx.GetSlotForUpdate(ctx, "slot-1")
				return err
			})
			require.ErrorIs(t, err, domain.ErrConflict)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSwapStore_RunInTransaction_ConflictOnCommit(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(&pq.Error{Code: "40001"})

	store := NewSwapStore(db)
	err = store.RunInTransaction(ctx, func(tx domain.SwapTx) error {
		return nil
	})
	require.ErrorIs(t, err, domain.ErrConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSwapTx_GetSlotForUpdate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`FOR UPDATE NOWAIT`).
			WithArgs("slot-1").
			WillReturnRows(sqlmock.NewRows(slotCols).
				AddRow("slot-1", "Team sync", now, now.Add(time.Hour), "SWAPPABLE", "user-1", now, now))
		mock.ExpectCommit()

		store := NewSwapStore(db)
		err = store.RunInTransaction(ctx, func(tx domain.SwapTx) error {
			slot, err := tx.GetSlotForUpdate(ctx, "slot-1")
			if err != nil {
				return err
			}
			require.Equal(t, domain.SlotStatusSwappable, slot.Status)
			return nil
		})
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`FOR UPDATE NOWAIT`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		store := NewSwapStore(db)
		err = store.RunInTransaction(ctx, func(tx domain.SwapTx) error {
			_, err := tx.GetSlotForUpdate(ctx, "missing")
			return err
		})
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSwapTx_SetSlotState_NotFound(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE slots`).
		WithArgs("missing", "BUSY", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	store := NewSwapStore(db)
	err = store.RunInTransaction(ctx, func(tx domain.SwapTx) error {
		return tx.SetSlotState(ctx, "missing", domain.SlotStatusBusy, "user-1")
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSwapTx_CreateRequest(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO swap_requests`).
		WithArgs("slot-a", "slot-b", "user-a", "user-b", "PENDING", now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("req-uuid-1"))
	mock.ExpectCommit()

	req := domain.NewSwapRequest("slot-a", "slot-b", "user-a", "user-b", now)
	store := NewSwapStore(db)
	err = store.RunInTransaction(ctx, func(tx domain.SwapTx) error {
		return tx.CreateRequest(ctx, req)
	})
	require.NoError(t, err)
	require.Equal(t, "req-uuid-1", req.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSwapTx_GetRequestForUpdate_And_SetStatus(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM swap_requests\s+WHERE id = \$1\s+FOR UPDATE NOWAIT`).
		WithArgs("req-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "requester_slot_id", "requested_slot_id", "requester_id", "requestee_id", "status", "created_at",
		}).AddRow("req-1", "slot-a", "slot-b", "user-a", "user-b", "PENDING", now))
	mock.ExpectExec(`UPDATE swap_requests`).
		WithArgs("req-1", "ACCEPTED").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	store := NewSwapStore(db)
	err = store.RunInTransaction(ctx, func(tx domain.SwapTx) error {
		req, err := tx.GetRequestForUpdate(ctx, "req-1")
		if err != nil {
			return err
		}
		require.Equal(t, domain.SwapStatusPending, req.Status)
		return tx.SetRequestStatus(ctx, req.ID, domain.SwapStatusAccepted)
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
