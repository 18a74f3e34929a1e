package postgres

import (
	"context"
	"database/sql"
	"errors"

	"slotswapper/internal/domain"
)

type slotRepository struct {
	DB *sql.DB
}

func NewSlotRepository(db *sql.DB) domain.SlotRepository {
	return &slotRepository{
		DB: db,
	}
}

func (r *slotRepository) Create(ctx context.Context, s *domain.Slot) error {
	query := `
		INSERT INTO slots (title, start_time, end_time, status, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		s.Title, s.StartTime, s.EndTime, string(s.Status), s.OwnerID, s.CreatedAt, s.UpdatedAt,
	).Scan(&s.ID)
}

func (r *slotRepository) GetByID(ctx context.Context, id string) (*domain.Slot, error) {
	query := `
		SELECT id, title, start_time, end_time, status, owner_id, created_at, updated_at
		FROM slots
		WHERE id = $1
	`
	s := &domain.Slot{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
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

func (r *slotRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]*domain.Slot, error) {
	query := `
		SELECT id, title, start_time, end_time, status, owner_id, created_at, updated_at
		FROM slots
		WHERE owner_id = $1
		ORDER BY start_time ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	slots := make([]*domain.Slot, 0)
	for rows.Next() {
		s := &domain.Slot{}
		if err := rows.Scan(&s.ID, &s.Title, &s.StartTime, &s.EndTime, &s.Status, &s.OwnerID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	return slots, rows.Err()
}

func (r *slotRepository) ListSwappableExcludingOwner(ctx context.Context, ownerID string, params domain.PaginationParams) ([]*domain.MarketSlot, int, error) {
	countQuery := `
		SELECT COUNT(*)
		FROM slots
		WHERE status = 'SWAPPABLE' AND owner_id <> $1
	`
	var total int
	if err := r.DB.QueryRowContext(ctx, countQuery, ownerID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT s.id, s.title, s.start_time, s.end_time, s.status, s.owner_id, s.created_at, s.updated_at,
		       u.id, u.name, u.avatar_url
		FROM slots s
		JOIN users u ON u.id = s.owner_id
		WHERE s.status = 'SWAPPABLE' AND s.owner_id <> $1
		ORDER BY s.start_time ASC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.DB.QueryContext(ctx, query, ownerID, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	listings := make([]*domain.MarketSlot, 0)
	for rows.Next() {
		s := &domain.Slot{}
		owner := &domain.UserProfile{}
		if err := rows.Scan(
			&s.ID, &s.Title, &s.StartTime, &s.EndTime, &s.Status, &s.OwnerID, &s.CreatedAt, &s.UpdatedAt,
			&owner.ID, &owner.Name, &owner.AvatarURL,
		); err != nil {
			return nil, 0, err
		}
		listings = append(listings, &domain.MarketSlot{Slot: s, Owner: owner})
	}
	return listings, total, rows.Err()
}
