package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"slotswapper/internal/delivery/http/helpers"
	"slotswapper/internal/delivery/http/middleware"
	"slotswapper/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSlotService implements domain.SlotService for handler tests.
type fakeSlotService struct {
	createSlot *domain.Slot
	createErr  error
	setSlot    *domain.Slot
	setErr     error
	lastStatus domain.SlotStatus
}

func (f *fakeSlotService) CreateSlot(ctx context.Context, ownerID, title string, startTime, endTime time.Time) (*domain.Slot, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createSlot, nil
}

func (f *fakeSlotService) SetSlotStatus(ctx context.Context, slotID, ownerID string, status domain.SlotStatus) (*domain.Slot, error) {
	f.lastStatus = status
	if f.setErr != nil {
		return nil, f.setErr
	}
	return f.setSlot, nil
}

func TestSlotController_CreateSlot(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	created := &domain.Slot{
		ID:        "slot-1",
		Title:     "Team sync",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Status:    domain.SlotStatusBusy,
		OwnerID:   "user-1",
	}

	tests := []struct {
		name          string
		contextUserID string
		body          string
		createErr     error
		wantStatus    int
		wantBodyCode  string
	}{
		{
			name:          "success",
			contextUserID: "user-1",
			body:          `{"title":"Team sync","start_time":"2026-03-02T09:00:00Z","end_time":"2026-03-02T10:00:00Z"}`,
			wantStatus:    http.StatusCreated,
		},
		{
			name:          "missing title",
			contextUserID: "user-1",
			body:          `{"start_time":"2026-03-02T09:00:00Z","end_time":"2026-03-02T10:00:00Z"}`,
			wantStatus:    http.StatusBadRequest,
			wantBodyCode:  helpers.ErrCodeBadRequest,
		},
		{
			name:          "missing times",
			contextUserID: "user-1",
			body:          `{"title":"Team sync"}`,
			wantStatus:    http.StatusBadRequest,
			wantBodyCode:  helpers.ErrCodeBadRequest,
		},
		{
			name:          "no user in context",
			contextUserID: "",
			body:          `{"title":"Team sync","start_time":"2026-03-02T09:00:00Z","end_time":"2026-03-02T10:00:00Z"}`,
			wantStatus:    http.StatusUnauthorized,
			wantBodyCode:  helpers.ErrCodeUnauthorized,
		},
		{
			name:          "service rejects input",
			contextUserID: "user-1",
			body:          `{"title":"Team sync","start_time":"2026-03-02T10:00:00Z","end_time":"2026-03-02T09:00:00Z"}`,
			createErr:     domain.ErrInvalidInput,
			wantStatus:    http.StatusBadRequest,
			wantBodyCode:  helpers.ErrCodeBadRequest,
		},
		{
			name:          "service error",
			contextUserID: "user-1",
			body:          `{"title":"Team sync","start_time":"2026-03-02T09:00:00Z","end_time":"2026-03-02T10:00:00Z"}`,
			createErr:     assert.AnError,
			wantStatus:    http.StatusInternalServerError,
			wantBodyCode:  helpers.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeSlotService{createSlot: created, createErr: tt.createErr}
			ctrl := NewSlotController(discardLogger(), fake, &fakeMarketService{})

			req := httptest.NewRequest(http.MethodPost, "http://test/events", bytes.NewBufferString(tt.body))
			if tt.contextUserID != "" {
				req = req.WithContext(middleware.SetUserID(req.Context(), tt.contextUserID))
			}
			rr := httptest.NewRecorder()

			ctrl.CreateSlot(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantStatus == http.StatusCreated {
				require.Nil(t, envelope.Error)
				dataBytes, err := json.Marshal(envelope.Data)
				require.NoError(t, err)
				var got domain.Slot
				require.NoError(t, json.Unmarshal(dataBytes, &got))
				assert.Equal(t, "slot-1", got.ID)
				assert.Equal(t, domain.SlotStatusBusy, got.Status)
				return
			}
			require.NotNil(t, envelope.Error)
			assert.Equal(t, tt.wantBodyCode, envelope.Error.Code)
		})
	}
}

func TestSlotController_UpdateSlotStatus(t *testing.T) {
	swappable := &domain.Slot{ID: "slot-1", Status: domain.SlotStatusSwappable, OwnerID: "user-1"}

	tests := []struct {
		name          string
		slotID        string
		contextUserID string
		body          string
		setErr        error
		wantStatus    int
		wantBodyCode  string
	}{
		{
			name:          "success",
			slotID:        "slot-1",
			contextUserID: "user-1",
			body:          `{"status":"SWAPPABLE"}`,
			wantStatus:    http.StatusOK,
		},
		{
			name:          "missing status",
			slotID:        "slot-1",
			contextUserID: "user-1",
			body:          `{}`,
			wantStatus:    http.StatusBadRequest,
			wantBodyCode:  helpers.ErrCodeBadRequest,
		},
		{
			name:          "invalid transition",
			slotID:        "slot-1",
			contextUserID: "user-1",
			body:          `{"status":"SWAP_PENDING"}`,
			setErr:        domain.ErrInvalidTransition,
			wantStatus:    http.StatusBadRequest,
			wantBodyCode:  helpers.ErrCodeBadRequest,
		},
		{
			name:          "not the owner",
			slotID:        "slot-1",
			contextUserID: "user-2",
			body:          `{"status":"SWAPPABLE"}`,
			setErr:        domain.ErrForbidden,
			wantStatus:    http.StatusForbidden,
			wantBodyCode:  helpers.ErrCodeForbidden,
		},
		{
			name:          "slot not found",
			slotID:        "slot-missing",
			contextUserID: "user-1",
			body:          `{"status":"SWAPPABLE"}`,
			setErr:        domain.ErrNotFound,
			wantStatus:    http.StatusNotFound,
			wantBodyCode:  helpers.ErrCodeNotFound,
		},
		{
			name:          "lost race returns conflict",
			slotID:        "slot-1",
			contextUserID: "user-1",
			body:          `{"status":"BUSY"}`,
			setErr:        domain.ErrConflict,
			wantStatus:    http.StatusConflict,
			wantBodyCode:  helpers.ErrCodeConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeSlotService{setSlot: swappable, setErr: tt.setErr}
			ctrl := NewSlotController(discardLogger(), fake, &fakeMarketService{})

			req := httptest.NewRequest(http.MethodPut, "http://test/events/"+tt.slotID+"/status", bytes.NewBufferString(tt.body))
			req.SetPathValue("eventID", tt.slotID)
			if tt.contextUserID != "" {
				req = req.WithContext(middleware.SetUserID(req.Context(), tt.contextUserID))
			}
			rr := httptest.NewRecorder()

			ctrl.UpdateSlotStatus(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBodyCode != "" {
				var envelope helpers.APIResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantBodyCode, envelope.Error.Code)
			}
		})
	}
}

func TestSlotController_ListMySlots(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		market := &fakeMarketService{
			daySlots: []domain.DaySlots{
				{Day: "2026-03-02", Slots: []*domain.Slot{{ID: "slot-1"}}},
			},
		}
		ctrl := NewSlotController(discardLogger(), &fakeSlotService{}, market)

		req := httptest.NewRequest(http.MethodGet, "http://test/events/mine", nil)
		req = req.WithContext(middleware.SetUserID(req.Context(), "user-1"))
		rr := httptest.NewRecorder()

		ctrl.ListMySlots(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var envelope struct {
			Data  []domain.DaySlots `json:"data"`
			Error *helpers.APIError `json:"error"`
		}
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
		require.Nil(t, envelope.Error)
		require.Len(t, envelope.Data, 1)
		assert.Equal(t, "2026-03-02", envelope.Data[0].Day)
	})

	t.Run("no user in context", func(t *testing.T) {
		ctrl := NewSlotController(discardLogger(), &fakeSlotService{}, &fakeMarketService{})
		req := httptest.NewRequest(http.MethodGet, "http://test/events/mine", nil)
		rr := httptest.NewRecorder()

		ctrl.ListMySlots(rr, req)
		require.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestSlotController_ListMarketplace(t *testing.T) {
	t.Run("success with pagination meta", func(t *testing.T) {
		market := &fakeMarketService{
			marketSlots: []*domain.MarketSlot{
				{Slot: &domain.Slot{ID: "slot-2", Status: domain.SlotStatusSwappable}, Owner: &domain.UserProfile{ID: "user-2", Name: "Bob"}},
			},
			marketTotal: 41,
		}
		ctrl := NewSlotController(discardLogger(), &fakeSlotService{}, market)

		req := httptest.NewRequest(http.MethodGet, "http://test/events/marketplace?page=2&page_size=20", nil)
		req = req.WithContext(middleware.SetUserID(req.Context(), "user-1"))
		rr := httptest.NewRecorder()

		ctrl.ListMarketplace(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var envelope struct {
			Data  MarketplaceResponse `json:"data"`
			Error *helpers.APIError   `json:"error"`
		}
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
		require.Nil(t, envelope.Error)
		require.Len(t, envelope.Data.Slots, 1)
		assert.Equal(t, "Bob", envelope.Data.Slots[0].Owner.Name)
		assert.Equal(t, 2, envelope.Data.Pagination.Page)
		assert.Equal(t, 41, envelope.Data.Pagination.TotalItems)
		assert.Equal(t, 3, envelope.Data.Pagination.TotalPages)
	})

	t.Run("service error", func(t *testing.T) {
		ctrl := NewSlotController(discardLogger(), &fakeSlotService{}, &fakeMarketService{marketErr: assert.AnError})
		req := httptest.NewRequest(http.MethodGet, "http://test/events/marketplace", nil)
		req = req.WithContext(middleware.SetUserID(req.Context(), "user-1"))
		rr := httptest.NewRecorder()

		ctrl.ListMarketplace(rr, req)
		require.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
