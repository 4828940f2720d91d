package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAdminService is a mock implementation of service.AdminService.
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) Summary(ctx context.Context) (*model.DashboardSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DashboardSummary), args.Error(1)
}

func (m *MockAdminService) Stores(ctx context.Context, filter model.StoreFilter) ([]model.StoreListing, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StoreListing), args.Error(1)
}

func (m *MockAdminService) UpdateStoreStatus(ctx context.Context, storeID int64, status model.StoreStatus) error {
	args := m.Called(ctx, storeID, status)
	return args.Error(0)
}

func TestAdminHandler_Summary(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockAdminService)
		h := NewAdminHandler(mockService, logger)

		mockService.On("Summary", mock.Anything).Return(&model.DashboardSummary{
			TotalStores:    3,
			TotalCustomers: 120,
			TotalProducts:  45,
			TotalSales:     decimal.RequireFromString("1234.56"),
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/summary", nil)
		rec := httptest.NewRecorder()

		h.Summary(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got model.DashboardSummary
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, int64(3), got.TotalStores)
		assert.Equal(t, int64(120), got.TotalCustomers)
		assert.True(t, got.TotalSales.Equal(decimal.RequireFromString("1234.56")))
	})

	t.Run("Service error", func(t *testing.T) {
		mockService := new(MockAdminService)
		h := NewAdminHandler(mockService, logger)

		mockService.On("Summary", mock.Anything).Return(nil, errors.New("database error"))

		req := httptest.NewRequest(http.MethodGet, "/api/admin/summary", nil)
		rec := httptest.NewRecorder()

		h.Summary(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestAdminHandler_Stores(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		target         string
		expectedFilter model.StoreFilter
	}{
		{
			name:           "Defaults to newest first",
			target:         "/api/admin/stores",
			expectedFilter: model.StoreFilter{SortDesc: true},
		},
		{
			name:           "Ascending sort",
			target:         "/api/admin/stores?sort=asc",
			expectedFilter: model.StoreFilter{SortDesc: false},
		},
		{
			name:   "Search and status",
			target: "/api/admin/stores?search=mart&status=enabled",
			expectedFilter: model.StoreFilter{
				Search:   "mart",
				Status:   model.StoreStatusEnabled,
				SortDesc: true,
			},
		},
		{
			name:           "Unknown status is ignored",
			target:         "/api/admin/stores?status=frozen",
			expectedFilter: model.StoreFilter{SortDesc: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockAdminService)
			h := NewAdminHandler(mockService, logger)

			mockService.On("Stores", mock.Anything, tt.expectedFilter).
				Return([]model.StoreListing{}, nil)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()

			h.Stores(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			mockService.AssertExpectations(t)
		})
	}

	t.Run("Empty result is an empty array", func(t *testing.T) {
		mockService := new(MockAdminService)
		h := NewAdminHandler(mockService, logger)

		mockService.On("Stores", mock.Anything, mock.AnythingOfType("model.StoreFilter")).
			Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/stores", nil)
		rec := httptest.NewRecorder()

		h.Stores(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})
}

func TestAdminHandler_UpdateStoreStatus(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockAdminService)
		h := NewAdminHandler(mockService, logger)

		mockService.On("UpdateStoreStatus", mock.Anything, int64(7), model.StoreStatusDisabled).Return(nil)

		body := bytes.NewBufferString(`{"status": "disabled"}`)
		req := httptest.NewRequest(http.MethodPut, "/api/admin/stores/7/status", body)
		rec := httptest.NewRecorder()

		h.UpdateStoreStatus(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Store disabled successfully")

		mockService.AssertExpectations(t)
	})

	t.Run("Invalid status", func(t *testing.T) {
		mockService := new(MockAdminService)
		h := NewAdminHandler(mockService, logger)

		mockService.On("UpdateStoreStatus", mock.Anything, int64(7), model.StoreStatus("frozen")).
			Return(model.ErrInvalidStoreStatus)

		body := bytes.NewBufferString(`{"status": "frozen"}`)
		req := httptest.NewRequest(http.MethodPut, "/api/admin/stores/7/status", body)
		rec := httptest.NewRecorder()

		h.UpdateStoreStatus(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp model.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, model.ErrCodeInvalidStoreStatus, resp.Error)
	})

	t.Run("Invalid store ID", func(t *testing.T) {
		mockService := new(MockAdminService)
		h := NewAdminHandler(mockService, logger)

		body := bytes.NewBufferString(`{"status": "enabled"}`)
		req := httptest.NewRequest(http.MethodPut, "/api/admin/stores/abc/status", body)
		rec := httptest.NewRecorder()

		h.UpdateStoreStatus(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "UpdateStoreStatus")
	})

	t.Run("Wrong method", func(t *testing.T) {
		mockService := new(MockAdminService)
		h := NewAdminHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/stores/7/status", nil)
		rec := httptest.NewRecorder()

		h.UpdateStoreStatus(rec, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		mockService.AssertNotCalled(t, "UpdateStoreStatus")
	})
}
