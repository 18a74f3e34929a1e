package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"slotswapper/internal/domain"
)

// Postgres SQLSTATE codes signalling a lost race with a concurrent transaction.
const (
	pqSerializationFailure = "40001"
	pqLockNotAvailable     = "55P03"
)

type swapStore struct {
	DB *sql.DB
}

// NewSwapStore returns a SwapStore backed by serializable Postgres
// transactions. Row reads inside a transaction use FOR UPDATE NOWAIT, so of
// two transactions touching the same slot or request rows exactly one
// commits; the other fails with domain.ErrConflict and is not retried here.
func NewSwapStore(db *sql.DB) domain.SwapStore {
	return &swapStore{
		DB: db,
	}
}

func (s *swapStore) RunInTransaction(ctx context.Context, fn func(tx domain.SwapTx) error) error {
	tx, err := s.DB.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("begin swap transaction: %w", err)
	}
	if err := fn(&swapTx{tx: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return errors.Join(mapConflict(err), fmt.Errorf("rollback swap transaction: %w", rbErr))
		}
		return mapConflict(err)
	}
	if err := tx.Commit(); err != nil {
		return mapConflict(fmt.Errorf("commit swap transaction: %w", err))
	}
	return nil
}

// mapConflict translates Postgres serialization and lock failures into the
// engine's Conflict error; everything else passes through.
func mapConflict(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pqSerializationFailure, pqLockNotAvailable:
			return domain.ErrConflict
		}
	}
	return err
}

type swapTx struct {
	tx *sql.Tx
}

func (t *swapTx) GetSlotForUpdate(ctx context.Context, slotID string) (*domain.Slot, error) {
	query := `
		SELECT id, title, start_time, end_time, status, owner_id, created_at, updated_at
		FROM slots
		WHERE id = $1
		FOR UPDATE NOWAIT
	`
	s := &domain.Slot{}
	err := t.tx.QueryRowContext(ctx, query, slotID).Scan(
		&s.ID, &s.Title, &s.StartTime, &s.EndTime, &s.Status, &s.OwnerID, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (t *swapTx) SetSlotState(ctx context.Context, slotID string, status domain.SlotStatus, ownerID string) error {
	query := `
		UPDATE slots
		SET status = $2, owner_id = $3, updated_at = NOW()
		WHERE id = $1
	`
	result, err := t.tx.ExecContext(ctx, query, slotID, string(status), ownerID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (t *swapTx) CreateRequest(ctx context.Context, req *domain.SwapRequest) error {
	query := `
		INSERT INTO swap_requests (requester_slot_id, requested_slot_id, requester_id, requestee_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return t.tx.QueryRowContext(ctx, query,
		req.RequesterSlotID, req.RequestedSlotID, req.RequesterID, req.RequesteeID, string(req.Status), req.CreatedAt,
	).Scan(&req.ID)
}

func (t *swapTx) GetRequestForUpdate(ctx context.Context, requestID string) (*domain.SwapRequest, error) {
	query := `
		SELECT id, requester_slot_id, requested_slot_id, requester_id, requestee_id, status, created_at
		FROM swap_requests
		WHERE id = $1
		FOR UPDATE NOWAIT
	`
	req := &domain.SwapRequest{}
	err := t.tx.QueryRowContext(ctx, query, requestID).Scan(
		&req.ID, &req.RequesterSlotID, &req.RequestedSlotID,
		&req.RequesterID, &req.RequesteeID, &req.Status, &req.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return req, nil
}

func (t *swapTx) SetRequestStatus(ctx context.Context, requestID string, status domain.SwapRequestStatus) error {
	query := `
		UPDATE swap_requests
		SET status = $2
		WHERE id = $1
	`
	result, err := t.tx.ExecContext(ctx, query, requestID, string(status))
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
