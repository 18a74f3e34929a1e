package domain

import (
	"context"
	"time"
)

// SwapRequestStatus is the lifecycle state of a swap request.
type SwapRequestStatus string

const (
	SwapStatusPending  SwapRequestStatus = "PENDING"
	SwapStatusAccepted SwapRequestStatus = "ACCEPTED"
	SwapStatusRejected SwapRequestStatus = "REJECTED"
)

// SwapRequest is a proposal to exchange ownership of two slots. Requester and
// requestee are snapshots of the slot owners at creation time; the engine
// re-derives the requestee from current ownership when the request is resolved.
// ACCEPTED and REJECTED are terminal.
// swagger:model SwapRequest
type SwapRequest struct {
	ID              string            `json:"id"`
	RequesterSlotID string            `json:"requester_slot_id"`
	RequestedSlotID string            `json:"requested_slot_id"`
	RequesterID     string            `json:"requester_id"`
	RequesteeID     string            `json:"requestee_id"`
	Status          SwapRequestStatus `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
}

// NewSwapRequest returns a new PENDING SwapRequest. ID is typically set by the
// repository on create.
func NewSwapRequest(requesterSlotID, requestedSlotID, requesterID, requesteeID string, createdAt time.Time) *SwapRequest {
	return &SwapRequest{
		RequesterSlotID: requesterSlotID,
		RequestedSlotID: requestedSlotID,
		RequesterID:     requesterID,
		RequesteeID:     requesteeID,
		Status:          SwapStatusPending,
		CreatedAt:       createdAt,
	}
}

// PopulatedSwapRequest bundles a request with the slot snapshots and the
// counterpart user needed for display: the requester for incoming requests,
// the requestee for outgoing ones.
// swagger:model PopulatedSwapRequest
type PopulatedSwapRequest struct {
	Request       *SwapRequest `json:"request"`
	RequesterSlot *Slot        `json:"requester_slot"`
	RequestedSlot *Slot        `json:"requested_slot"`
	Counterpart   *UserProfile `json:"counterpart"`
}

// SwapRequestRepository defines read access to swap requests outside the
// transaction boundary.
type SwapRequestRepository interface {
	GetByID(ctx context.Context, id string) (*SwapRequest, error)
	// ListIncoming returns PENDING requests whose requested slot is currently
	// owned by userID, newest first.
	ListIncoming(ctx context.Context, userID string) ([]*PopulatedSwapRequest, error)
	// ListOutgoing returns requests proposed by userID in any status, newest first.
	ListOutgoing(ctx context.Context, userID string) ([]*PopulatedSwapRequest, error)
}

// SwapTx is the set of operations available inside one swap-store transaction.
// Slot and request reads take row locks, so rows read through a SwapTx cannot
// be observed or mutated by another transaction until commit.
type SwapTx interface {
	GetSlotForUpdate(ctx context.Context, slotID string) (*Slot, error)
	// SetSlotState writes a slot's status and owner in one statement.
	SetSlotState(ctx context.Context, slotID string, status SlotStatus, ownerID string) error
	CreateRequest(ctx context.Context, req *SwapRequest) error
	GetRequestForUpdate(ctx context.Context, requestID string) (*SwapRequest, error)
	SetRequestStatus(ctx context.Context, requestID string, status SwapRequestStatus) error
}

// SwapStore runs a function inside one atomic transaction against the slot
// and swap-request tables. If fn returns an error all writes are rolled back.
// Lost races with concurrent transactions surface as ErrConflict.
type SwapStore interface {
	RunInTransaction(ctx context.Context, fn func(tx SwapTx) error) error
}

// SwapService is the swap engine: the state machine over slot statuses and
// the swap request lifecycle.
type SwapService interface {
	ProposeSwap(ctx context.Context, requesterID, offeredSlotID, requestedSlotID string) (*SwapRequest, error)
	RespondToSwap(ctx context.Context, requestID, responderID string, accept bool) (*SwapRequest, error)
}
