package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"slotswapper/internal/domain"
)

type swapService struct {
	store          domain.SwapStore
	userRepo       domain.UserRepository
	slotRepo       domain.SlotRepository
	emailService   domain.EmailService
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewSwapService creates the swap engine. Every multi-record mutation runs as
// one transaction against the store; notification emails are sent after
// commit and never affect the outcome.
func NewSwapService(store domain.SwapStore,
	userRepo domain.UserRepository,
	slotRepo domain.SlotRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
	timeout time.Duration,
) domain.SwapService {
	return &swapService{
		store:          store,
		userRepo:       userRepo,
		slotRepo:       slotRepo,
		emailService:   emailService,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// engineErr reports whether err is one of the engine's sentinel errors, which
// are returned to callers unwrapped.
func engineErr(err error) bool {
	for _, sentinel := range []error{
		domain.ErrNotFound,
		domain.ErrNotOwned,
		domain.ErrForbidden,
		domain.ErrNotSwappable,
		domain.ErrSelfSwap,
		domain.ErrNotPending,
		domain.ErrInvalidTransition,
		domain.ErrConflict,
		domain.ErrIntegrity,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

func (s *swapService) ProposeSwap(ctx context.Context, requesterID, offeredSlotID, requestedSlotID string) (*domain.SwapRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if offeredSlotID == requestedSlotID {
		return nil, domain.ErrSelfSwap
	}

	var req *domain.SwapRequest
	err := s.store.RunInTransaction(ctx, func(tx domain.SwapTx) error {
		offered, err := tx.GetSlotForUpdate(ctx, offeredSlotID)
		if err != nil {
			return err
		}
		requested, err := tx.GetSlotForUpdate(ctx, requestedSlotID)
		if err != nil {
			return err
		}
		if offered.OwnerID != requesterID {
			return domain.ErrNotOwned
		}
		if requested.OwnerID == requesterID {
			return domain.ErrSelfSwap
		}
		if offered.Status != domain.SlotStatusSwappable || requested.Status != domain.SlotStatusSwappable {
			return domain.ErrNotSwappable
		}

		req = domain.NewSwapRequest(offered.ID, requested.ID, offered.OwnerID, requested.OwnerID, time.Now())
		if err := tx.CreateRequest(ctx, req); err != nil {
			return err
		}
		if err := tx.SetSlotState(ctx, offered.ID, domain.SlotStatusSwapPending, offered.OwnerID); err != nil {
			return err
		}
		return tx.SetSlotState(ctx, requested.ID, domain.SlotStatusSwapPending, requested.OwnerID)
	})
	if err != nil {
		if engineErr(err) {
			return nil, err
		}
		return nil, fmt.Errorf("propose swap: %w", err)
	}

	s.notifyProposed(ctx, req)
	return req, nil
}

func (s *swapService) RespondToSwap(ctx context.Context, requestID, responderID string, accept bool) (*domain.SwapRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var resolved *domain.SwapRequest
	err := s.store.RunInTransaction(ctx, func(tx domain.SwapTx) error {
		req, err := tx.GetRequestForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if req.Status != domain.SwapStatusPending {
			return domain.ErrNotPending
		}

		requesterSlot, err := tx.GetSlotForUpdate(ctx, req.RequesterSlotID)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrIntegrity
		} else if err != nil {
			return err
		}
		requestedSlot, err := tx.GetSlotForUpdate(ctx, req.RequestedSlotID)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrIntegrity
		} else if err != nil {
			return err
		}

		// The requestee is re-derived from current ownership of the requested
		// slot, not trusted from the snapshot captured at proposal time.
		if requestedSlot.OwnerID != responderID {
			return domain.ErrForbidden
		}

		if accept {
			if err := tx.SetSlotState(ctx, requesterSlot.ID, domain.SlotStatusBusy, requestedSlot.OwnerID); err != nil {
				return err
			}
			if err := tx.SetSlotState(ctx, requestedSlot.ID, domain.SlotStatusBusy, requesterSlot.OwnerID); err != nil {
				return err
			}
			if err := tx.SetRequestStatus(ctx, req.ID, domain.SwapStatusAccepted); err != nil {
				return err
			}
			req.Status = domain.SwapStatusAccepted
		} else {
			if err := tx.SetSlotState(ctx, requesterSlot.ID, domain.SlotStatusSwappable, requesterSlot.OwnerID); err != nil {
				return err
			}
			if err := tx.SetSlotState(ctx, requestedSlot.ID, domain.SlotStatusSwappable, requestedSlot.OwnerID); err != nil {
				return err
			}
			if err := tx.SetRequestStatus(ctx, req.ID, domain.SwapStatusRejected); err != nil {
				return err
			}
			req.Status = domain.SwapStatusRejected
		}
		resolved = req
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrIntegrity) {
			s.logger.ErrorContext(ctx, "swap request integrity violation",
				"request_id", requestID, "err", err)
			return nil, domain.ErrIntegrity
		}
		if engineErr(err) {
			return nil, err
		}
		return nil, fmt.Errorf("respond to swap: %w", err)
	}

	s.notifyResolved(ctx, resolved, accept)
	return resolved, nil
}

// notifyProposed emails the requestee about the new proposal. Best-effort.
func (s *swapService) notifyProposed(ctx context.Context, req *domain.SwapRequest) {
	requestee, err := s.userRepo.GetByID(ctx, req.RequesteeID)
	if err != nil {
		s.logger.WarnContext(ctx, "skip swap proposed email", "request_id", req.ID, "err", err)
		return
	}
	requester, err := s.userRepo.GetByID(ctx, req.RequesterID)
	if err != nil {
		s.logger.WarnContext(ctx, "skip swap proposed email", "request_id", req.ID, "err", err)
		return
	}
	offered, err := s.slotRepo.GetByID(ctx, req.RequesterSlotID)
	if err != nil {
		s.logger.WarnContext(ctx, "skip swap proposed email", "request_id", req.ID, "err", err)
		return
	}
	requested, err := s.slotRepo.GetByID(ctx, req.RequestedSlotID)
	if err != nil {
		s.logger.WarnContext(ctx, "skip swap proposed email", "request_id", req.ID, "err", err)
		return
	}
	data := &domain.SwapProposedEmailData{
		Email:              requestee.Email,
		RequesteeName:      requestee.Name,
		RequesterName:      requester.Name,
		OfferedSlotTitle:   offered.Title,
		RequestedSlotTitle: requested.Title,
	}
	if err := s.emailService.SendSwapProposed(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "send swap proposed email", "request_id", req.ID, "err", err)
	}
}

// notifyResolved emails the requester about the outcome. Best-effort.
func (s *swapService) notifyResolved(ctx context.Context, req *domain.SwapRequest, accepted bool) {
	requester, err := s.userRepo.GetByID(ctx, req.RequesterID)
	if err != nil {
		s.logger.WarnContext(ctx, "skip swap resolved email", "request_id", req.ID, "err", err)
		return
	}
	requestee, err := s.userRepo.GetByID(ctx, req.RequesteeID)
	if err != nil {
		s.logger.WarnContext(ctx, "skip swap resolved email", "request_id", req.ID, "err", err)
		return
	}
	requested, err := s.slotRepo.GetByID(ctx, req.RequestedSlotID)
	if err != nil {
		s.logger.WarnContext(ctx, "skip swap resolved email", "request_id", req.ID, "err", err)
		return
	}
	data := &domain.SwapResolvedEmailData{
		Email:              requester.Email,
		RequesterName:      requester.Name,
		RequesteeName:      requestee.Name,
		RequestedSlotTitle: requested.Title,
		Accepted:           accepted,
	}
	if err := s.emailService.SendSwapResolved(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "send swap resolved email", "request_id", req.ID, "err", err)
	}
}
