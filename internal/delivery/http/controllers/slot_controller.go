package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"slotswapper/internal/delivery/http/helpers"
	"slotswapper/internal/delivery/http/middleware"
	"slotswapper/internal/domain"
)

// CreateSlotRequest is the request body for POST /events. Times are RFC 3339.
type CreateSlotRequest struct {
	Title     string    `json:"title"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// Validate implements helpers.Validator. Full validation (title length, time
// ordering) happens in the slot service.
func (r *CreateSlotRequest) Validate() error {
	if r.Title == "" {
		return errors.New("title is required")
	}
	if r.StartTime.IsZero() {
		return errors.New("start_time is required")
	}
	if r.EndTime.IsZero() {
		return errors.New("end_time is required")
	}
	return nil
}

// UpdateSlotStatusRequest is the request body for PUT /events/{eventID}/status.
type UpdateSlotStatusRequest struct {
	Status domain.SlotStatus `json:"status"`
}

// Validate implements helpers.Validator.
func (r *UpdateSlotStatusRequest) Validate() error {
	if r.Status == "" {
		return errors.New("status is required")
	}
	return nil
}

// SlotSuccessResponse is the success envelope for slot create and status updates.
type SlotSuccessResponse struct {
	Data  *domain.Slot      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// MySlotsSuccessResponse is the success envelope for GET /events/mine. Slots
// are grouped by calendar day.
type MySlotsSuccessResponse struct {
	Data  []domain.DaySlots `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// MarketplaceResponse is the data payload for GET /events/marketplace.
type MarketplaceResponse struct {
	Slots      []*domain.MarketSlot   `json:"slots"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// MarketplaceSuccessResponse is the success envelope for GET /events/marketplace.
type MarketplaceSuccessResponse struct {
	Data  MarketplaceResponse `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

type SlotController struct {
	Logger *slog.Logger
	Slots  domain.SlotService
	Market domain.MarketService
}

func NewSlotController(logger *slog.Logger, slots domain.SlotService, market domain.MarketService) *SlotController {
	return &SlotController{
		Logger: logger,
		Slots:  slots,
		Market: market,
	}
}

// CreateSlot godoc
// @Summary Create a calendar slot
// @Description Creates a slot owned by the authenticated user. New slots start as BUSY. end_time must be after start_time.
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slot body CreateSlotRequest true "Title and time range"
// @Success 201 {object} controllers.SlotSuccessResponse "data contains the created slot"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *SlotController) CreateSlot(w http.ResponseWriter, r *http.Request) {
	var req CreateSlotRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	slot, err := c.Slots.CreateSlot(r.Context(), userID, req.Title, req.StartTime, req.EndTime)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not create slot")
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, slot)
}

// UpdateSlotStatus godoc
// @Summary Toggle a slot between BUSY and SWAPPABLE
// @Description Sets the status of a slot owned by the authenticated user. Slots locked in SWAP_PENDING cannot be changed, and SWAP_PENDING cannot be set directly.
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Slot ID (UUID)"
// @Param status body UpdateSlotStatusRequest true "Target status, BUSY or SWAPPABLE"
// @Success 200 {object} controllers.SlotSuccessResponse "data contains the updated slot"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/status [put]
func (c *SlotController) UpdateSlotStatus(w http.ResponseWriter, r *http.Request) {
	slotID := r.PathValue("eventID")
	if slotID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req UpdateSlotStatusRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	slot, err := c.Slots.SetSlotStatus(r.Context(), slotID, userID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidTransition):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		case errors.Is(err, domain.ErrForbidden):
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "slot is not yours")
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "slot not found")
		case errors.Is(err, domain.ErrConflict):
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "slot is being modified concurrently, try again")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not update slot")
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, slot)
}

// ListMySlots godoc
// @Summary List the authenticated user's slots
// @Description Returns all slots owned by the authenticated user, grouped by calendar day (UTC) and ordered by start time.
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.MySlotsSuccessResponse "data contains day groups"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/mine [get]
func (c *SlotController) ListMySlots(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	days, err := c.Market.ListMySlots(r.Context(), userID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not list slots")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, days)
}

// ListMarketplace godoc
// @Summary Browse swappable slots
// @Description Returns SWAPPABLE slots owned by other users, with owner profiles, ordered by start time. Paginated via page and page_size query parameters.
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number, starting at 1"
// @Param page_size query int false "Items per page, max 100"
// @Success 200 {object} controllers.MarketplaceSuccessResponse "data contains slots and pagination"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/marketplace [get]
func (c *SlotController) ListMarketplace(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	params := helpers.ParsePagination(r)
	slots, total, err := c.Market.ListMarketplace(r.Context(), userID, params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not list marketplace")
		return
	}
	if slots == nil {
		slots = []*domain.MarketSlot{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MarketplaceResponse{
		Slots:      slots,
		Pagination: helpers.NewPaginationMeta(params, total),
	})
}
