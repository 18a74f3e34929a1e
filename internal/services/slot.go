package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"slotswapper/internal/domain"
)

type slotService struct {
	slotRepo       domain.SlotRepository
	store          domain.SwapStore
	contextTimeout time.Duration
}

// NewSlotService creates a SlotService. Status toggles go through the swap
// store so they cannot race a concurrent proposal on the same slot.
func NewSlotService(slotRepo domain.SlotRepository, store domain.SwapStore, timeout time.Duration) domain.SlotService {
	return &slotService{
		slotRepo:       slotRepo,
		store:          store,
		contextTimeout: timeout,
	}
}

func (s *slotService) CreateSlot(ctx context.Context, ownerID, title string, startTime, endTime time.Time) (*domain.Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	title = strings.TrimSpace(title)
	if title == "" || len(title) > domain.MaxSlotTitleLength {
		return nil, domain.ErrInvalidInput
	}
	if !endTime.After(startTime) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	slot := domain.NewSlot(title, startTime, endTime, ownerID, now, now)
	if err := s.slotRepo.Create(ctx, slot); err != nil {
		return nil, fmt.Errorf("create slot: %w", err)
	}
	return slot, nil
}

func (s *slotService) SetSlotStatus(ctx context.Context, slotID, ownerID string, status domain.SlotStatus) (*domain.Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	// SWAP_PENDING is engine-assigned; owners may only toggle BUSY and SWAPPABLE.
	if status != domain.SlotStatusBusy && status != domain.SlotStatusSwappable {
		return nil, domain.ErrInvalidTransition
	}

	var updated *domain.Slot
	err := s.store.RunInTransaction(ctx, func(tx domain.SwapTx) error {
		slot, err := tx.GetSlotForUpdate(ctx, slotID)
		if err != nil {
			return err
		}
		if slot.OwnerID != ownerID {
			return domain.ErrForbidden
		}
		if slot.Status == domain.SlotStatusSwapPending {
			return domain.ErrInvalidTransition
		}
		if err := tx.SetSlotState(ctx, slot.ID, status, slot.OwnerID); err != nil {
			return err
		}
		slot.Status = status
		updated = slot
		return nil
	})
	if err != nil {
		if engineErr(err) {
			return nil, err
		}
		return nil, fmt.Errorf("set slot status: %w", err)
	}
	return updated, nil
}
