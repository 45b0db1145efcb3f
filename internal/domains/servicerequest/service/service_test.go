package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/otel/mocks"
	srMocks "lodge/internal/domains/servicerequest/mocks"
	"lodge/internal/domains/servicerequest/model"
	"lodge/internal/domains/servicerequest/model/dto"
	"lodge/internal/domains/servicerequest/service"
	eventMocks "lodge/internal/events/mocks"
	cacheMocks "lodge/shared/cache/mocks"
	"lodge/shared/constant"
)

func newServiceRequestService(ctrl *gomock.Controller) (service.ServiceRequest, *srMocks.MockServiceRequest, *cacheMocks.MockRedisCache, *eventMocks.MockPublisher) {
	mockRepo := srMocks.NewMockServiceRequest(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockPublisher := eventMocks.NewMockPublisher(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockPublisher, mocks.NewOtel())

	return svc, mockRepo, mockCache, mockPublisher
}

func TestServiceRequestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache, mockPublisher := newServiceRequestService(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	tests := []struct {
		name      string
		ctx       context.Context
		req       dto.CreateServiceRequestRequest
		setupMock func()
		wantErr   bool
		check     func(t *testing.T, res dto.ServiceRequestResponse)
	}{
		{
			name: "items derive the total and ignore the submitted amount",
			ctx:  context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-user"),
			req: dto.CreateServiceRequestRequest{
				RoomID:    "room-id-1",
				BookingID: "booking-id-1",
				Type:      constant.ServiceRequestTypeFood,
				Items: []dto.ItemRequest{
					{Name: "Paneer Tikka", Quantity: 2, Price: 120},
					{Name: "Lassi", Quantity: 1, Price: 60},
				},
				TotalAmount: 9999,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, request model.ServiceRequest) error {
						assert.Equal(t, 300.0, request.TotalAmount)
						assert.Equal(t, constant.ServiceRequestStatusPending, request.Status)
						assert.Equal(t, "staff-user", request.CreatedBy)

						return nil
					})

				mockPublisher.EXPECT().PublishServiceRequest(gomock.Any(), gomock.Any())
			},
			check: func(t *testing.T, res dto.ServiceRequestResponse) {
				assert.Equal(t, 300.0, res.TotalAmount)
				assert.Len(t, res.Items, 2)
				assert.Equal(t, 240.0, res.Items[0].Amount)
			},
		},
		{
			name: "portal requests default the author",
			ctx:  context.Background(),
			req: dto.CreateServiceRequestRequest{
				RoomID:      "room-id-1",
				BookingID:   "booking-id-1",
				Type:        constant.ServiceRequestTypeRoomService,
				Description: "Extra towels",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, request model.ServiceRequest) error {
						assert.Equal(t, constant.SystemGuestPortal, request.CreatedBy)

						return nil
					})

				mockPublisher.EXPECT().PublishServiceRequest(gomock.Any(), gomock.Any())
			},
		},
		{
			name: "repository error",
			ctx:  context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-user"),
			req: dto.CreateServiceRequestRequest{
				RoomID: "room-id-1",
				Type:   constant.ServiceRequestTypeFood,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(tt.ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)

			if tt.check != nil {
				tt.check(t, res)
			}
		})
	}
}

func TestServiceRequestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache, mockPublisher := newServiceRequestService(ctrl)

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	bookingID := "booking-id-1"
	existing := model.ServiceRequest{
		ID:        "sr-1",
		RoomID:    "room-id-1",
		BookingID: &bookingID,
		Type:      constant.ServiceRequestTypeFood,
		Status:    constant.ServiceRequestStatusPending,
	}

	tests := []struct {
		name      string
		req       dto.UpdateServiceRequestRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "status change publishes an event",
			req:  dto.UpdateServiceRequestRequest{Status: constant.ServiceRequestStatusCompleted},
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
				mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

				mockPublisher.EXPECT().PublishServiceRequest(gomock.Any(), gomock.Any())
			},
		},
		{
			name: "non-status change stays silent",
			req:  dto.UpdateServiceRequestRequest{Description: "updated description"},
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
				mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:      "empty request",
			req:       dto.UpdateServiceRequestRequest{},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "request not found",
			req:  dto.UpdateServiceRequestRequest{Status: constant.ServiceRequestStatusCompleted},
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.ServiceRequest{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-user")
			err := svc.Update(ctx, tt.req, "sr-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestServiceRequestService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache, _ := newServiceRequestService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "cache hit",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "cache miss, found in db",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.ServiceRequest{ID: "sr-1", RoomID: "room-id-1"}, nil)
				mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
		},
		{
			name: "not found",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.ServiceRequest{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.Get(context.Background(), "sr-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestServiceRequestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache, _ := newServiceRequestService(ctrl)

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful deletion",
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "not found",
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), "sr-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
