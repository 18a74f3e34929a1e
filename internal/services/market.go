package services

import (
	"context"
	"fmt"
	"time"

	"slotswapper/internal/domain"
)

type marketService struct {
	slotRepo       domain.SlotRepository
	swapRepo       domain.SwapRequestRepository
	contextTimeout time.Duration
}

// NewMarketService creates the read-only projections over the slot and swap
// request stores. Nothing here mutates state.
func NewMarketService(slotRepo domain.SlotRepository, swapRepo domain.SwapRequestRepository, timeout time.Duration) domain.MarketService {
	return &marketService{
		slotRepo:       slotRepo,
		swapRepo:       swapRepo,
		contextTimeout: timeout,
	}
}

func (s *marketService) ListMarketplace(ctx context.Context, viewerID string, params domain.PaginationParams) ([]*domain.MarketSlot, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	slots, total, err := s.slotRepo.ListSwappableExcludingOwner(ctx, viewerID, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list marketplace: %w", err)
	}
	if slots == nil {
		slots = []*domain.MarketSlot{}
	}
	return slots, total, nil
}

func (s *marketService) ListMySlots(ctx context.Context, userID string) ([]domain.DaySlots, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	slots, err := s.slotRepo.ListByOwnerID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list my slots: %w", err)
	}
	return groupByDay(slots), nil
}

// groupByDay folds slots, already ordered by start time, into per-day groups
// keyed by the UTC calendar day.
func groupByDay(slots []*domain.Slot) []domain.DaySlots {
	out := []domain.DaySlots{}
	for _, slot := range slots {
		day := slot.StartTime.UTC().Format("2006-01-02")
		if len(out) == 0 || out[len(out)-1].Day != day {
			out = append(out, domain.DaySlots{Day: day})
		}
		out[len(out)-1].Slots = append(out[len(out)-1].Slots, slot)
	}
	return out
}

func (s *marketService) ListRequests(ctx context.Context, userID string) (incoming, outgoing []*domain.PopulatedSwapRequest, err error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	incoming, err = s.swapRepo.ListIncoming(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("list incoming requests: %w", err)
	}
	outgoing, err = s.swapRepo.ListOutgoing(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("list outgoing requests: %w", err)
	}
	if incoming == nil {
		incoming = []*domain.PopulatedSwapRequest{}
	}
	if outgoing == nil {
		outgoing = []*domain.PopulatedSwapRequest{}
	}
	return incoming, outgoing, nil
}
