package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ezysalad/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderService is a mock implementation of service.OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.OrderResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderResponse), args.Error(1)
}

func (m *MockOrderService) Lookup(ctx context.Context, orderNumber, phone string) (*model.OrderLookupResponse, error) {
	args := m.Called(ctx, orderNumber, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderLookupResponse), args.Error(1)
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.Order, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func orderRequestBody() string {
	return `{
		"items": [
			{"id": "sandwich-1", "name": "클럽 샌드위치", "category": "sandwiches", "price": 7000, "quantity": 2}
		],
		"deliveryInfo": {
			"name": "김민지",
			"phone": "010-1234-5678",
			"address": "서울시 강남구",
			"detailAddress": "101호",
			"zipCode": "06000",
			"deliveryDate": "2026-09-15",
			"deliveryTime": "11:00-12:00"
		},
		"totalAmount": 17000,
		"deliveryFee": 3000
	}`
}

func TestOrderHandler_Create(t *testing.T) {
	logger := zerolog.Nop()

	orderID := uuid.New()
	response := &model.OrderResponse{
		ID:           orderID,
		OrderNumber:  "20260828-AB12CD",
		Status:       model.OrderStatusPending,
		TotalAmount:  17000,
		DeliveryFee:  3000,
		DeliveryDate: "2026-09-15",
		DeliveryTime: "11:00-12:00",
	}

	tests := []struct {
		name           string
		body           string
		mockReturn     *model.OrderResponse
		mockError      error
		expectedStatus int
		expectedCode   string
		expectService  bool
	}{
		{
			name:           "Success",
			body:           orderRequestBody(),
			mockReturn:     response,
			expectedStatus: http.StatusCreated,
			expectService:  true,
		},
		{
			name:           "Invalid JSON",
			body:           `{invalid`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidJSON,
			expectService:  false,
		},
		{
			name:           "Empty cart",
			body:           orderRequestBody(),
			mockError:      model.ErrEmptyCart,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeEmptyCart,
			expectService:  true,
		},
		{
			name:           "Lead time violation",
			body:           orderRequestBody(),
			mockError:      model.ErrLeadTime,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeLeadTimeViolation,
			expectService:  true,
		},
		{
			name:           "Unexpected error",
			body:           orderRequestBody(),
			mockError:      errors.New("database down"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   model.ErrCodeInternalError,
			expectService:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderService)
			if tt.expectService {
				mockService.On("CreateOrder", mock.Anything, mock.AnythingOfType("*model.OrderRequest")).
					Return(tt.mockReturn, tt.mockError)
			}

			h := NewOrderHandler(mockService, logger)

			req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			h.Create(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusCreated {
				var body struct {
					Success bool                 `json:"success"`
					Order   *model.OrderResponse `json:"order"`
				}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.True(t, body.Success)
				assert.Equal(t, "20260828-AB12CD", body.Order.OrderNumber)
				assert.Equal(t, int64(17000), body.Order.TotalAmount)
			} else if tt.expectedCode != "" {
				var errResp model.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
				assert.Equal(t, tt.expectedCode, errResp.Error)
			}

			mockService.AssertExpectations(t)
		})
	}
}

func TestOrderHandler_Lookup(t *testing.T) {
	logger := zerolog.Nop()

	order := &model.Order{
		ID:            uuid.New(),
		OrderNumber:   "20260828-AB12CD",
		CustomerName:  "김민지",
		CustomerPhone: "010-1234-5678",
		Status:        model.OrderStatusPaid,
		TotalAmount:   17000,
	}
	items := []model.OrderItem{
		{MenuID: "sandwich-1", MenuName: "클럽 샌드위치", Price: 7000, Quantity: 2},
	}

	tests := []struct {
		name           string
		query          string
		mockReturn     *model.OrderLookupResponse
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			query:          "?orderNumber=20260828-AB12CD&phone=010-1234-5678",
			mockReturn:     &model.OrderLookupResponse{Order: order, Items: items},
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Missing order number",
			query:          "?phone=010-1234-5678",
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
		{
			name:           "Missing phone",
			query:          "?orderNumber=20260828-AB12CD",
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
		{
			name:           "Not found",
			query:          "?orderNumber=20260828-AB12CD&phone=010-9999-9999",
			mockError:      model.ErrOrderNotFound,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderService)
			if tt.expectService {
				mockService.On("Lookup", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
					Return(tt.mockReturn, tt.mockError)
			}

			h := NewOrderHandler(mockService, logger)

			req := httptest.NewRequest(http.MethodGet, "/api/orders"+tt.query, nil)
			rec := httptest.NewRecorder()

			h.Lookup(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusOK {
				var body struct {
					Success bool              `json:"success"`
					Order   *model.Order      `json:"order"`
					Items   []model.OrderItem `json:"items"`
				}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.True(t, body.Success)
				assert.Equal(t, "20260828-AB12CD", body.Order.OrderNumber)
				assert.Len(t, body.Items, 1)
			}

			mockService.AssertExpectations(t)
		})
	}
}

func TestOrderHandler_AdminUpdateStatus(t *testing.T) {
	logger := zerolog.Nop()

	orderID := uuid.New()
	updated := &model.Order{
		ID:          orderID,
		OrderNumber: "20260828-AB12CD",
		Status:      model.OrderStatusCancelled,
	}

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockOrderService)
		mockService.On("UpdateStatus", mock.Anything, orderID, model.OrderStatusCancelled).Return(updated, nil)

		h := NewOrderHandler(mockService, logger)

		body := bytes.NewBufferString(`{"status":"cancelled"}`)
		req := httptest.NewRequest(http.MethodPatch, "/api/admin/orders/"+orderID.String(), body)
		rec := httptest.NewRecorder()

		h.AdminUpdateStatus(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Invalid order ID", func(t *testing.T) {
		mockService := new(MockOrderService)
		h := NewOrderHandler(mockService, logger)

		body := bytes.NewBufferString(`{"status":"cancelled"}`)
		req := httptest.NewRequest(http.MethodPatch, "/api/admin/orders/not-a-uuid", body)
		rec := httptest.NewRecorder()

		h.AdminUpdateStatus(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Order not found", func(t *testing.T) {
		mockService := new(MockOrderService)
		mockService.On("UpdateStatus", mock.Anything, orderID, "cancelled").Return(nil, model.ErrOrderNotFound)

		h := NewOrderHandler(mockService, logger)

		body := bytes.NewBufferString(`{"status":"cancelled"}`)
		req := httptest.NewRequest(http.MethodPatch, "/api/admin/orders/"+orderID.String(), body)
		rec := httptest.NewRecorder()

		h.AdminUpdateStatus(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
