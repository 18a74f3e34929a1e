package domain

import (
	"context"
	"time"
)

// SlotStatus is the lifecycle state of a slot.
type SlotStatus string

const (
	// SlotStatusBusy is the initial state; the slot is not offered for swapping.
	SlotStatusBusy SlotStatus = "BUSY"
	// SlotStatusSwappable means the owner offers the slot on the marketplace.
	SlotStatusSwappable SlotStatus = "SWAPPABLE"
	// SlotStatusSwapPending means a pending swap request locks the slot.
	// Only the swap engine assigns and clears this status.
	SlotStatusSwapPending SlotStatus = "SWAP_PENDING"
)

// MaxSlotTitleLength bounds slot titles.
const MaxSlotTitleLength = 100

// Slot is a bookable time interval owned by a user.
// swagger:model Slot
type Slot struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	StartTime time.Time  `json:"start_time"`
	EndTime   time.Time  `json:"end_time"`
	Status    SlotStatus `json:"status"`
	OwnerID   string     `json:"owner_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewSlot returns a new BUSY Slot. ID is typically set by the repository on create.
func NewSlot(title string, startTime, endTime time.Time, ownerID string, createdAt, updatedAt time.Time) *Slot {
	return &Slot{
		Title:     title,
		StartTime: startTime,
		EndTime:   endTime,
		Status:    SlotStatusBusy,
		OwnerID:   ownerID,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// MarketSlot is a marketplace listing: a swappable slot joined with its
// owner's public profile.
// swagger:model MarketSlot
type MarketSlot struct {
	Slot  *Slot        `json:"slot"`
	Owner *UserProfile `json:"owner"`
}

// DaySlots groups a user's slots by calendar day (UTC, YYYY-MM-DD) for
// display. The grouping is derived on read, never stored.
// swagger:model DaySlots
type DaySlots struct {
	Day   string  `json:"day"`
	Slots []*Slot `json:"slots"`
}

// SlotRepository defines the interface for slot storage outside the swap
// transaction boundary (creation and read-only projections).
type SlotRepository interface {
	Create(ctx context.Context, slot *Slot) error
	GetByID(ctx context.Context, id string) (*Slot, error)
	ListByOwnerID(ctx context.Context, ownerID string) ([]*Slot, error)
	// ListSwappableExcludingOwner returns SWAPPABLE slots not owned by ownerID,
	// joined with owner profiles, ordered by start time ascending, plus the
	// total count for pagination.
	ListSwappableExcludingOwner(ctx context.Context, ownerID string, params PaginationParams) ([]*MarketSlot, int, error)
}

// SlotService defines owner-initiated slot operations.
type SlotService interface {
	CreateSlot(ctx context.Context, ownerID, title string, startTime, endTime time.Time) (*Slot, error)
	// SetSlotStatus toggles BUSY and SWAPPABLE. SWAP_PENDING can neither be set
	// nor left through this operation.
	SetSlotStatus(ctx context.Context, slotID, ownerID string, status SlotStatus) (*Slot, error)
}

// MarketService defines the read-only projections over slots and swap requests.
type MarketService interface {
	ListMarketplace(ctx context.Context, viewerID string, params PaginationParams) ([]*MarketSlot, int, error)
	ListMySlots(ctx context.Context, userID string) ([]DaySlots, error)
	ListRequests(ctx context.Context, userID string) (incoming, outgoing []*PopulatedSwapRequest, err error)
}
