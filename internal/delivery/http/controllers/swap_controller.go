package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"slotswapper/internal/delivery/http/helpers"
	"slotswapper/internal/delivery/http/middleware"
	"slotswapper/internal/domain"
)

// ProposeSwapRequest is the request body for POST /swap-requests.
type ProposeSwapRequest struct {
	OfferedSlotID   string `json:"offered_slot_id"`
	RequestedSlotID string `json:"requested_slot_id"`
}

// Validate implements helpers.Validator.
func (r *ProposeSwapRequest) Validate() error {
	if r.OfferedSlotID == "" {
		return errors.New("offered_slot_id is required")
	}
	if r.RequestedSlotID == "" {
		return errors.New("requested_slot_id is required")
	}
	return nil
}

// RespondToSwapRequest is the request body for POST /swap-requests/{requestID}/response.
type RespondToSwapRequest struct {
	Accept *bool `json:"accept"`
}

// Validate implements helpers.Validator. Accept is a pointer so a missing
// field is distinguishable from an explicit false.
func (r *RespondToSwapRequest) Validate() error {
	if r.Accept == nil {
		return errors.New("accept is required")
	}
	return nil
}

// SwapRequestSuccessResponse is the success envelope for propose and respond.
type SwapRequestSuccessResponse struct {
	Data  *domain.SwapRequest `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// MyRequestsResponse is the data payload for GET /swap-requests/mine.
type MyRequestsResponse struct {
	Incoming []*domain.PopulatedSwapRequest `json:"incoming"`
	Outgoing []*domain.PopulatedSwapRequest `json:"outgoing"`
}

// MyRequestsSuccessResponse is the success envelope for GET /swap-requests/mine.
type MyRequestsSuccessResponse struct {
	Data  MyRequestsResponse `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

type SwapController struct {
	Logger *slog.Logger
	Swaps  domain.SwapService
	Market domain.MarketService
}

func NewSwapController(logger *slog.Logger, swaps domain.SwapService, market domain.MarketService) *SwapController {
	return &SwapController{
		Logger: logger,
		Swaps:  swaps,
		Market: market,
	}
}

// ProposeSwap godoc
// @Summary Propose a slot swap
// @Description Offers one of the caller's SWAPPABLE slots for another user's SWAPPABLE slot. On success both slots move to SWAP_PENDING and a PENDING request is created, atomically.
// @Tags swaps
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param proposal body ProposeSwapRequest true "Offered and requested slot IDs"
// @Success 201 {object} controllers.SwapRequestSuccessResponse "data contains the created request"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /swap-requests [post]
func (c *SwapController) ProposeSwap(w http.ResponseWriter, r *http.Request) {
	var req ProposeSwapRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	swap, err := c.Swaps.ProposeSwap(r.Context(), userID, req.OfferedSlotID, req.RequestedSlotID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSelfSwap):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "cannot swap with yourself")
		case errors.Is(err, domain.ErrNotOwned):
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "offered slot is not yours")
		case errors.Is(err, domain.ErrNotSwappable):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "both slots must be swappable")
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "slot not found")
		case errors.Is(err, domain.ErrConflict):
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "a competing swap touched these slots, try again")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not propose swap")
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, swap)
}

// RespondToSwap godoc
// @Summary Accept or reject a swap request
// @Description Resolves a PENDING request. Only the current owner of the requested slot may respond. Accepting exchanges slot ownership and sets both slots BUSY; rejecting returns both slots to SWAPPABLE. Resolution is atomic and terminal.
// @Tags swaps
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param requestID path string true "Swap request ID (UUID)"
// @Param response body RespondToSwapRequest true "accept true or false"
// @Success 200 {object} controllers.SwapRequestSuccessResponse "data contains the resolved request"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /swap-requests/{requestID}/response [post]
func (c *SwapController) RespondToSwap(w http.ResponseWriter, r *http.Request) {
	requestID := r.PathValue("requestID")
	if requestID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing requestID")
		return
	}
	var req RespondToSwapRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	swap, err := c.Swaps.RespondToSwap(r.Context(), requestID, userID, *req.Accept)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotPending):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "request is already resolved")
		case errors.Is(err, domain.ErrForbidden):
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "only the requested slot's owner may respond")
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "swap request not found")
		case errors.Is(err, domain.ErrConflict):
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "a competing operation touched this request, try again")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not resolve swap")
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, swap)
}

// ListMyRequests godoc
// @Summary List the authenticated user's swap requests
// @Description Returns pending incoming requests (targeting slots the caller currently owns) and all outgoing requests, each populated with both slots and the counterpart's profile.
// @Tags swaps
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.MyRequestsSuccessResponse "data contains incoming and outgoing"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /swap-requests/mine [get]
func (c *SwapController) ListMyRequests(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	incoming, outgoing, err := c.Market.ListRequests(r.Context(), userID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not list swap requests")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MyRequestsResponse{Incoming: incoming, Outgoing: outgoing})
}
