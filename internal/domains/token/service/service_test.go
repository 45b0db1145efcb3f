package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/otel/mocks"
	tokenMocks "lodge/internal/domains/token/mocks"
	"lodge/internal/domains/token/model"
	"lodge/internal/domains/token/service"
	"lodge/shared/constant"
	"lodge/shared/failure"
	"lodge/shared/timezone"
)

func newTokenService(ctrl *gomock.Controller) (service.RoomToken, *tokenMocks.MockRoomToken) {
	mockRepo := tokenMocks.NewMockRoomToken(ctrl)

	cfg := &config.Config{}
	cfg.App.BaseURL = "https://lodge.example.com"

	return service.New(mockRepo, cfg, mocks.NewOtel()), mockRepo
}

func TestTokenService_IssueTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTokenService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		check     func(t *testing.T, res model.RoomToken)
	}{
		{
			name: "issues a fresh token when none exists",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.RoomToken{}, nil)

				mockRepo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			check: func(t *testing.T, res model.RoomToken) {
				assert.Equal(t, "booking-id-1", res.BookingID)
				assert.Equal(t, "room-id-1", res.RoomID)
				assert.True(t, res.IsActive)
				assert.NotEmpty(t, res.Token)
			},
		},
		{
			name: "reactivates an existing token for the booking",
			setupMock: func() {
				expired := timezone.Now()

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.RoomToken{
						ID:        "token-id-1",
						BookingID: "booking-id-1",
						RoomID:    "room-id-1",
						Token:     "existing-token",
						IsActive:  false,
						ExpiresAt: &expired,
					}, nil)

				mockRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			check: func(t *testing.T, res model.RoomToken) {
				assert.Equal(t, "existing-token", res.Token)
				assert.True(t, res.IsActive)
				assert.Nil(t, res.ExpiresAt)
			},
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.RoomToken{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.IssueTx(ctx, nil, "booking-id-1", "room-id-1")

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

func TestTokenService_DeactivateTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTokenService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "deactivates the booking token",
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "no token is not an error",
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.DeactivateTx(ctx, nil, "booking-id-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTokenService_GetActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTokenService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "active token resolves",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.RoomToken{
						ID:        "token-id-1",
						BookingID: "booking-id-1",
						RoomID:    "room-id-1",
						Token:     "opaque-token",
						IsActive:  true,
					}, nil)
			},
		},
		{
			name: "unknown token is unauthorized",
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomToken{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "inactive token is unauthorized",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.RoomToken{ID: "token-id-1", IsActive: false}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetActive(context.Background(), "opaque-token")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "booking-id-1", res.BookingID)
		})
	}
}

func TestTokenService_QRCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTokenService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "renders a PNG for the active token",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.RoomToken{
						ID:       "token-id-1",
						Token:    "opaque-token",
						IsActive: true,
					}, nil)
			},
		},
		{
			name: "no active token",
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomToken{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			png, err := svc.QRCode(context.Background(), "booking-id-1")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, png)
			// PNG magic bytes.
			assert.Equal(t, byte(0x89), png[0])
		})
	}
}
