package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/infras/otel/mocks"
	s3Mocks "lodge/infras/s3/mocks"
	bookingMocks "lodge/internal/domains/booking/mocks"
	bookingModel "lodge/internal/domains/booking/model"
	bookingDto "lodge/internal/domains/booking/model/dto"
	paymentMocks "lodge/internal/domains/payment/mocks"
	paymentModel "lodge/internal/domains/payment/model"
	"lodge/internal/domains/report/service"
	roomMocks "lodge/internal/domains/room/mocks"
	roomModel "lodge/internal/domains/room/model"
	"lodge/shared/failure"
	"lodge/shared/timezone"
)

type reportMockSet struct {
	bookings *bookingMocks.MockBooking
	rooms    *roomMocks.MockRoom
	payments *paymentMocks.MockPayment
	storage  *s3Mocks.MockS3
}

func newReportService(ctrl *gomock.Controller) (service.Report, reportMockSet) {
	m := reportMockSet{
		bookings: bookingMocks.NewMockBooking(ctrl),
		rooms:    roomMocks.NewMockRoom(ctrl),
		payments: paymentMocks.NewMockPayment(ctrl),
		storage:  s3Mocks.NewMockS3(ctrl),
	}

	svc := service.New(m.bookings, m.rooms, m.payments, m.storage, mocks.NewOtel())

	return svc, m
}

func TestReportService_OccupancyReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newReportService(ctrl)

	tests := []struct {
		name      string
		from      string
		to        string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "generates and uploads the workbook",
			from: "2026-08-01",
			to:   "2026-08-07",
			setupMock: func() {
				m.rooms.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]roomModel.Room{
						{ID: "room-id-1", RoomNumber: "101", Type: "standard"},
						{ID: "room-id-2", RoomNumber: "102", Type: "deluxe"},
					}, nil)
				m.bookings.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]bookingModel.Booking{
						{
							ID:           "booking-id-1",
							RoomID:       "room-id-1",
							CheckInDate:  mustParseDate(t, "2026-08-02"),
							CheckOutDate: mustParseDate(t, "2026-08-04"),
						},
					}, nil)
				m.storage.EXPECT().
					UploadFileBytes(gomock.Any(), gomock.Any(), "reports", gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _, fileName, _ string, data []byte) (string, error) {
						assert.True(t, strings.HasPrefix(fileName, "occupancy_"))
						assert.NotEmpty(t, data)

						return "https://storage.example.com/reports/" + fileName, nil
					})
			},
		},
		{
			name:      "invalid date format",
			from:      "01-08-2026",
			to:        "2026-08-07",
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "from after to",
			from:      "2026-08-10",
			to:        "2026-08-01",
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.OccupancyReport(context.Background(), tt.from, tt.to)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, res.URL)
			assert.Equal(t, "2026-08-01", res.From)
			assert.Equal(t, "2026-08-07", res.To)
		})
	}
}

func TestReportService_RevenueReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newReportService(ctrl)

	m.payments.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]paymentModel.Payment{
			{ID: "payment-id-1", BookingID: "booking-id-1", Amount: 3160, Method: "other"},
			{ID: "payment-id-2", BookingID: "booking-id-2", Amount: 500, Method: "cash"},
		}, nil)
	m.storage.EXPECT().
		UploadFileBytes(gomock.Any(), gomock.Any(), "reports", gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, fileName, _ string, data []byte) (string, error) {
			assert.True(t, strings.HasPrefix(fileName, "revenue_"))
			assert.NotEmpty(t, data)

			return "https://storage.example.com/reports/" + fileName, nil
		})

	res, err := svc.RevenueReport(context.Background(), "2026-08-01", "2026-08-07")

	assert.NoError(t, err)
	assert.NotEmpty(t, res.URL)
	assert.NotEmpty(t, res.FileName)
}

func TestReportService_InvoiceWorkbook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newReportService(ctrl)

	snapshot, err := json.Marshal(bookingDto.Invoice{
		InvoiceNumber: "INV-booking1-1700000000",
		BookingID:     "booking-id-1",
		GuestName:     "Asha Rao",
		RoomNumber:    "101",
		RoomType:      "standard",
		CheckInDate:   "2026-08-01",
		CheckOutDate:  "2026-08-03",
		Nights:        2,
		NightlyRate:   1500,
		RoomCharges:   3000,
		ServiceLines: []bookingDto.InvoiceLine{
			{Description: "Tea", Quantity: 2, UnitPrice: 30, Amount: 60},
		},
		TotalServiceCharges: 60,
		TotalAmount:         3060,
	})
	assert.NoError(t, err)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "renders the stored snapshot",
			setupMock: func() {
				m.payments.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]paymentModel.Payment{
						{ID: "payment-id-1", BookingID: "booking-id-1", Notes: string(snapshot)},
					}, nil)
				m.storage.EXPECT().
					UploadFileBytes(gomock.Any(), gomock.Any(), "reports", gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _, fileName, _ string, data []byte) (string, error) {
						assert.Contains(t, fileName, "INV-booking1-1700000000")
						assert.NotEmpty(t, data)

						return "https://storage.example.com/reports/" + fileName, nil
					})
			},
		},
		{
			name: "no payments recorded",
			setupMock: func() {
				m.payments.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]paymentModel.Payment{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "free-form notes are not an invoice",
			setupMock: func() {
				m.payments.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]paymentModel.Payment{
						{ID: "payment-id-1", BookingID: "booking-id-1", Notes: "cash received at front desk"},
					}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.InvoiceWorkbook(context.Background(), "booking-id-1")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, res.URL)
			assert.Equal(t, "2026-08-01", res.From)
			assert.Equal(t, "2026-08-03", res.To)
		})
	}
}

func mustParseDate(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := timezone.Parse("2006-01-02", value)
	assert.NoError(t, err)

	return parsed
}
