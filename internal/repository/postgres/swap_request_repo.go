package postgres

import (
	"context"
	"database/sql"
	"errors"

	"slotswapper/internal/domain"
)

type swapRequestRepository struct {
	DB *sql.DB
}

func NewSwapRequestRepository(db *sql.DB) domain.SwapRequestRepository {
	return &swapRequestRepository{
		DB: db,
	}
}

func (r *swapRequestRepository) GetByID(ctx context.Context, id string) (*domain.SwapRequest, error) {
	query := `
		SELECT id, requester_slot_id, requested_slot_id, requester_id, requestee_id, status, created_at
		FROM swap_requests
		WHERE id = $1
	`
	req := &domain.SwapRequest{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
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

// populatedQuery selects a request with both slot snapshots and the
// counterpart user. The counterpart join column differs between incoming
// (requester) and outgoing (requestee) listings.
const populatedQuery = `
	SELECT r.id, r.requester_slot_id, r.requested_slot_id, r.requester_id, r.requestee_id, r.status, r.created_at,
	       os.id, os.title, os.start_time, os.end_time, os.status, os.owner_id, os.created_at, os.updated_at,
	       ts.id, ts.title, ts.start_time, ts.end_time, ts.status, ts.owner_id, ts.created_at, ts.updated_at,
	       u.id, u.name, u.avatar_url
	FROM swap_requests r
	JOIN slots os ON os.id = r.requester_slot_id
	JOIN slots ts ON ts.id = r.requested_slot_id
`

func (r *swapRequestRepository) ListIncoming(ctx context.Context, userID string) ([]*domain.PopulatedSwapRequest, error) {
	// Incoming means the requested slot is currently owned by the user, not
	// that the stored requestee snapshot matches.
	query := populatedQuery + `
		JOIN users u ON u.id = r.requester_id
		WHERE ts.owner_id = $1 AND r.status = 'PENDING'
		ORDER BY r.created_at DESC
	`
	return r.listPopulated(ctx, query, userID)
}

func (r *swapRequestRepository) ListOutgoing(ctx context.Context, userID string) ([]*domain.PopulatedSwapRequest, error) {
	query := populatedQuery + `
		JOIN users u ON u.id = r.requestee_id
		WHERE r.requester_id = $1
		ORDER BY r.created_at DESC
	`
	return r.listPopulated(ctx, query, userID)
}

func (r *swapRequestRepository) listPopulated(ctx context.Context, query, userID string) ([]*domain.PopulatedSwapRequest, error) {
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*domain.PopulatedSwapRequest, 0)
	for rows.Next() {
		req := &domain.SwapRequest{}
		offered := &domain.Slot{}
		requested := &domain.Slot{}
		counterpart := &domain.UserProfile{}
		if err := rows.Scan(
			&req.ID, &req.RequesterSlotID, &req.RequestedSlotID, &req.RequesterID, &req.RequesteeID, &req.Status, &req.CreatedAt,
			&offered.ID, &offered.Title, &offered.StartTime, &offered.EndTime, &offered.Status, &offered.OwnerID, &offered.CreatedAt, &offered.UpdatedAt,
			&requested.ID, &requested.Title, &requested.StartTime, &requested.EndTime, &requested.Status, &requested.OwnerID, &requested.CreatedAt, &requested.UpdatedAt,
			&counterpart.ID, &counterpart.Name, &counterpart.AvatarURL,
		); err != nil {
			return nil, err
		}
		out = append(out, &domain.PopulatedSwapRequest{
			Request:       req,
			RequesterSlot: offered,
			RequestedSlot: requested,
			Counterpart:   counterpart,
		})
	}
	return out, rows.Err()
}
