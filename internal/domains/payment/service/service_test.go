package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/otel/mocks"
	bookingMocks "lodge/internal/domains/booking/mocks"
	bookingDto "lodge/internal/domains/booking/model/dto"
	paymentMocks "lodge/internal/domains/payment/mocks"
	"lodge/internal/domains/payment/model"
	"lodge/internal/domains/payment/model/dto"
	"lodge/internal/domains/payment/service"
	cacheMocks "lodge/shared/cache/mocks"
	"lodge/shared/constant"
	"lodge/shared/failure"
)

func newPaymentService(ctrl *gomock.Controller) (service.Payment, *paymentMocks.MockPayment, *bookingMocks.MockBooking, *cacheMocks.MockRedisCache) {
	mockRepo := paymentMocks.NewMockPayment(ctrl)
	mockBookings := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockBookings, cfg, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockBookings, mockCache
}

func TestPaymentService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockBookings, mockCache := newPaymentService(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	tests := []struct {
		name      string
		req       dto.CreatePaymentRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation defaults to completed",
			req: dto.CreatePaymentRequest{
				BookingID: "booking-id-1",
				Amount:    1500,
				Method:    constant.PaymentMethodCash,
			},
			setupMock: func() {
				mockBookings.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, payment model.Payment) error {
						assert.Equal(t, constant.PaymentStatusCompleted, payment.Status)
						assert.Equal(t, 1500.0, payment.Amount)

						return nil
					})
			},
		},
		{
			name: "booking not found",
			req: dto.CreatePaymentRequest{
				BookingID: "missing-booking",
				Amount:    500,
				Method:    constant.PaymentMethodCard,
			},
			setupMock: func() {
				mockBookings.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			req: dto.CreatePaymentRequest{
				BookingID: "booking-id-1",
				Amount:    500,
				Method:    constant.PaymentMethodCash,
			},
			setupMock: func() {
				mockBookings.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestPaymentService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, mockCache := newPaymentService(ctrl)

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	tests := []struct {
		name      string
		req       dto.UpdatePaymentRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful update",
			req:  dto.UpdatePaymentRequest{Status: constant.PaymentStatusCompleted},
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:      "empty request",
			req:       dto.UpdatePaymentRequest{},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "payment not found",
			req:  dto.UpdatePaymentRequest{Status: constant.PaymentStatusFailed},
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Update(ctx, tt.req, "payment-id-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPaymentService_GetInvoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newPaymentService(ctrl)

	snapshot, err := json.Marshal(bookingDto.Invoice{
		InvoiceNumber: "INV-booking1-1700000000",
		BookingID:     "booking-id-1",
		Nights:        2,
		NightlyRate:   1500,
		RoomCharges:   3000,
		TotalAmount:   3160,
	})
	assert.NoError(t, err)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
		check     func(t *testing.T, res bookingDto.Invoice)
	}{
		{
			name: "returns the stored snapshot without recomputing",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Payment{
						ID:        "payment-id-1",
						BookingID: "booking-id-1",
						Amount:    3160,
						Notes:     string(snapshot),
					}, nil)
			},
			check: func(t *testing.T, res bookingDto.Invoice) {
				assert.Equal(t, "INV-booking1-1700000000", res.InvoiceNumber)
				assert.Equal(t, 2, res.Nights)
				assert.Equal(t, 3160.0, res.TotalAmount)
			},
		},
		{
			name: "payment not found",
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Payment{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "payment without notes has no invoice",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Payment{ID: "payment-id-1"}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "free-form notes are not an invoice",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Payment{ID: "payment-id-1", Notes: "cash received at front desk"}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetInvoice(context.Background(), "payment-id-1")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)

			if tt.check != nil {
				tt.check(t, res)
			}
		})
	}
}
