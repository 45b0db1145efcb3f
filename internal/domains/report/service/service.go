package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"lodge/infras/otel"
	"lodge/infras/s3"
	bookingModel "lodge/internal/domains/booking/model"
	bookingDto "lodge/internal/domains/booking/model/dto"
	bookingRepo "lodge/internal/domains/booking/repository"
	paymentModel "lodge/internal/domains/payment/model"
	paymentRepo "lodge/internal/domains/payment/repository"
	"lodge/internal/domains/report/model/dto"
	roomModel "lodge/internal/domains/room/model"
	roomRepo "lodge/internal/domains/room/repository"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/timezone"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

const (
	reportDirectory   = "reports"
	defaultPeriodDays = 30

	occupancySheet = "Occupancy"
	revenueSheet   = "Revenue"
	invoiceSheet   = "Invoice"
)

type Report interface {
	OccupancyReport(ctx context.Context, from, to string) (dto.ReportResponse, error)
	RevenueReport(ctx context.Context, from, to string) (dto.ReportResponse, error)
	InvoiceWorkbook(ctx context.Context, bookingID string) (dto.ReportResponse, error)
}

type serviceImpl struct {
	bookings bookingRepo.Booking
	rooms    roomRepo.Room
	payments paymentRepo.Payment
	storage  s3.S3
	otel     otel.Otel
}

func New(bookings bookingRepo.Booking, rooms roomRepo.Room, payments paymentRepo.Payment, storage s3.S3, otel otel.Otel) Report {
	return &serviceImpl{
		bookings: bookings,
		rooms:    rooms,
		payments: payments,
		storage:  storage,
		otel:     otel,
	}
}

// OccupancyReport renders a room-by-date grid marking every day a room was
// held by a confirmed, checked-in or checked-out booking, with a per-day
// occupancy rate at the bottom.
func (s *serviceImpl) OccupancyReport(ctx context.Context, from, to string) (res dto.ReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".OccupancyReport")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, end, err := resolvePeriod(from, to)
	if err != nil {
		return res, err
	}

	rooms, err := s.rooms.GetAll(ctx, gDto.QueryParams{SortBy: roomModel.FieldRoomNumber, SortDir: "ASC"}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	bookings, err := s.bookings.GetAll(ctx, gDto.QueryParams{}, occupancyFilter(start, end))
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(occupancySheet)
	if err != nil {
		return res, fmt.Errorf("failed to create sheet: %w", err)
	}

	f.SetActiveSheet(index)

	_ = f.SetCellValue(occupancySheet, "A1", fmt.Sprintf("Occupancy %s to %s",
		start.Format(constant.DateOnlyFormat), end.Format(constant.DateOnlyFormat)))
	_ = f.SetCellValue(occupancySheet, "A2", "Room")

	dateColumns := writeDateHeaders(f, occupancySheet, start, end)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	lastCol, _ := excelize.ColumnNumberToName(len(dateColumns) + 1)
	_ = f.MergeCell(occupancySheet, "A1", lastCol+"1")
	_ = f.SetCellStyle(occupancySheet, "A1", "A1", headerStyle)
	_ = f.SetColWidth(occupancySheet, "A", "A", 18)

	occupiedPerDay := make(map[string]int)

	for i, room := range rooms {
		row := i + 3

		cell, _ := excelize.CoordinatesToCellName(1, row)
		_ = f.SetCellValue(occupancySheet, cell, fmt.Sprintf("%s (%s)", room.RoomNumber, room.Type))

		for day, col := range dateColumns {
			if !roomOccupiedOn(bookings, room.ID, day) {
				continue
			}

			occupiedPerDay[day]++

			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(occupancySheet, cell, "X")
		}
	}

	rateRow := len(rooms) + 3

	cell, _ := excelize.CoordinatesToCellName(1, rateRow)
	_ = f.SetCellValue(occupancySheet, cell, "Occupancy rate")

	for day, col := range dateColumns {
		rate := 0.0
		if len(rooms) > 0 {
			rate = float64(occupiedPerDay[day]) / float64(len(rooms))
		}

		cell, _ := excelize.CoordinatesToCellName(col, rateRow)
		_ = f.SetCellValue(occupancySheet, cell, fmt.Sprintf("%.0f%%", rate*100))
	}

	_ = f.DeleteSheet("Sheet1")

	return s.upload(ctx, f, periodFileName("occupancy", start, end),
		start.Format(constant.DateOnlyFormat), end.Format(constant.DateOnlyFormat))
}

// RevenueReport lists settled payments in the period with a grand total.
func (s *serviceImpl) RevenueReport(ctx context.Context, from, to string) (res dto.ReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RevenueReport")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, end, err := resolvePeriod(from, to)
	if err != nil {
		return res, err
	}

	payments, err := s.payments.GetAll(ctx, gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: "ASC"}, revenueFilter(start, end))
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(revenueSheet)
	if err != nil {
		return res, fmt.Errorf("failed to create sheet: %w", err)
	}

	f.SetActiveSheet(index)

	_ = f.SetCellValue(revenueSheet, "A1", fmt.Sprintf("Revenue %s to %s",
		start.Format(constant.DateOnlyFormat), end.Format(constant.DateOnlyFormat)))
	_ = f.MergeCell(revenueSheet, "A1", "E1")

	headers := []string{"Payment ID", "Booking ID", "Method", "Date", "Amount"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		_ = f.SetCellValue(revenueSheet, cell, header)
	}

	total := 0.0

	for i, payment := range payments {
		row := i + 3
		total += payment.Amount

		values := []any{
			payment.ID,
			payment.BookingID,
			payment.Method,
			payment.CreatedAt.Format(constant.DateOnlyFormat),
			payment.Amount,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(revenueSheet, cell, value)
		}
	}

	totalRow := len(payments) + 3
	cell, _ := excelize.CoordinatesToCellName(4, totalRow)
	_ = f.SetCellValue(revenueSheet, cell, "Total")
	cell, _ = excelize.CoordinatesToCellName(5, totalRow)
	_ = f.SetCellValue(revenueSheet, cell, total)

	_ = f.SetColWidth(revenueSheet, "A", "B", 38)
	_ = f.DeleteSheet("Sheet1")

	return s.upload(ctx, f, periodFileName("revenue", start, end),
		start.Format(constant.DateOnlyFormat), end.Format(constant.DateOnlyFormat))
}

// InvoiceWorkbook renders the invoice snapshot stored with a booking's
// checkout payment as a workbook. The snapshot is read back as-is, never
// recomputed from service requests.
func (s *serviceImpl) InvoiceWorkbook(ctx context.Context, bookingID string) (res dto.ReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".InvoiceWorkbook")
	defer scope.End()
	defer scope.TraceIfError(err)

	payments, err := s.payments.GetAll(ctx,
		gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirDesc},
		shared.FilterByID(bookingID, paymentModel.FieldBookingID, paymentModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	invoice, found := findInvoice(payments)
	if !found {
		return res, failure.NotFound("no invoice recorded for this booking") // nolint:wrapcheck
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(invoiceSheet)
	if err != nil {
		return res, fmt.Errorf("failed to create sheet: %w", err)
	}

	f.SetActiveSheet(index)

	_ = f.SetCellValue(invoiceSheet, "A1", fmt.Sprintf("Invoice %s", invoice.InvoiceNumber))
	_ = f.MergeCell(invoiceSheet, "A1", "D1")

	details := [][2]any{
		{"Guest", invoice.GuestName},
		{"Phone", invoice.GuestPhone},
		{"Room", fmt.Sprintf("%s (%s)", invoice.RoomNumber, invoice.RoomType)},
		{"Check-in", invoice.CheckInDate},
		{"Check-out", invoice.CheckOutDate},
		{"Nights", invoice.Nights},
		{"Nightly rate", invoice.NightlyRate},
		{"Room charges", invoice.RoomCharges},
	}
	for i, detail := range details {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		_ = f.SetCellValue(invoiceSheet, cell, detail[0])
		cell, _ = excelize.CoordinatesToCellName(2, i+2)
		_ = f.SetCellValue(invoiceSheet, cell, detail[1])
	}

	lineHeaderRow := len(details) + 3
	headers := []string{"Description", "Quantity", "Unit price", "Amount"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, lineHeaderRow)
		_ = f.SetCellValue(invoiceSheet, cell, header)
	}

	for i, line := range invoice.ServiceLines {
		row := lineHeaderRow + i + 1

		values := []any{line.Description, line.Quantity, line.UnitPrice, line.Amount}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(invoiceSheet, cell, value)
		}
	}

	totalRow := lineHeaderRow + len(invoice.ServiceLines) + 1
	cell, _ := excelize.CoordinatesToCellName(3, totalRow)
	_ = f.SetCellValue(invoiceSheet, cell, "Service charges")
	cell, _ = excelize.CoordinatesToCellName(4, totalRow)
	_ = f.SetCellValue(invoiceSheet, cell, invoice.TotalServiceCharges)

	cell, _ = excelize.CoordinatesToCellName(3, totalRow+1)
	_ = f.SetCellValue(invoiceSheet, cell, "Total")
	cell, _ = excelize.CoordinatesToCellName(4, totalRow+1)
	_ = f.SetCellValue(invoiceSheet, cell, invoice.TotalAmount)

	_ = f.SetColWidth(invoiceSheet, "A", "A", 32)
	_ = f.DeleteSheet("Sheet1")

	fileName := fmt.Sprintf("invoice_%s_%d.xlsx", invoice.InvoiceNumber, timezone.Now().Unix())

	return s.upload(ctx, f, fileName, invoice.CheckInDate, invoice.CheckOutDate)
}

func (s *serviceImpl) upload(ctx context.Context, f *excelize.File, fileName, from, to string) (res dto.ReportResponse, err error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		log.Error().Err(err).Msg("failed to write workbook")

		return res, fmt.Errorf("failed to write workbook: %w", err)
	}

	url, err := s.storage.UploadFileBytes(ctx, constant.Empty, reportDirectory, fileName, constant.ContentTypeXLSX, buf.Bytes())
	if err != nil {
		log.Error().Err(err).Msg("failed to upload report")

		return res, fmt.Errorf("failed to upload report: %w", err)
	}

	res.FileName = fileName
	res.URL = url
	res.From = from
	res.To = to
	res.GeneratedAt = timezone.Now().Format(constant.DateFormat)

	return res, nil
}

func periodFileName(kind string, start, end time.Time) string {
	return fmt.Sprintf("%s_%s_to_%s_%d.xlsx",
		kind, start.Format(constant.DateOnlyFormat), end.Format(constant.DateOnlyFormat), timezone.Now().Unix())
}

// findInvoice scans a booking's payments, newest first, for a notes field
// holding a serialized invoice.
func findInvoice(payments []paymentModel.Payment) (invoice bookingDto.Invoice, found bool) {
	for _, payment := range payments {
		if payment.Notes == constant.Empty {
			continue
		}

		if err := json.Unmarshal([]byte(payment.Notes), &invoice); err != nil {
			continue
		}

		if invoice.InvoiceNumber != constant.Empty {
			return invoice, true
		}
	}

	return invoice, false
}

// resolvePeriod defaults to the trailing thirty days when bounds are omitted.
func resolvePeriod(from, to string) (start, end time.Time, err error) {
	end = timezone.Now().Truncate(24 * time.Hour)

	if to != constant.Empty {
		end, err = timezone.Parse(constant.DateOnlyFormat, to)
		if err != nil {
			return start, end, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
		}
	}

	start = end.AddDate(0, 0, -defaultPeriodDays)

	if from != constant.Empty {
		start, err = timezone.Parse(constant.DateOnlyFormat, from)
		if err != nil {
			return start, end, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
		}
	}

	if start.After(end) {
		return start, end, failure.BadRequestFromString("from date must not be after to date") // nolint:wrapcheck
	}

	return start, end, nil
}

func writeDateHeaders(f *excelize.File, sheet string, start, end time.Time) map[string]int {
	col := 2
	columns := make(map[string]int)

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		cell, _ := excelize.CoordinatesToCellName(col, 2)
		_ = f.SetCellValue(sheet, cell, day.Format("01-02"))

		columns[day.Format(constant.DateOnlyFormat)] = col
		col++
	}

	return columns
}

func roomOccupiedOn(bookings []bookingModel.Booking, roomID, day string) bool {
	for _, booking := range bookings {
		if booking.RoomID != roomID {
			continue
		}

		checkIn := booking.CheckInDate.Format(constant.DateOnlyFormat)
		checkOut := booking.CheckOutDate.Format(constant.DateOnlyFormat)

		if checkIn <= day && day < checkOut {
			return true
		}
	}

	return false
}

func occupancyFilter(start, end time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    bookingModel.FieldBookingStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    []string{constant.BookingStatusConfirmed, constant.BookingStatusCheckedIn, constant.BookingStatusCheckedOut},
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				ArgName:  "period_start",
				Field:    bookingModel.FieldCheckInDate,
				Operator: gDto.FilterOperatorLessEq,
				Value:    end,
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				ArgName:  "period_end",
				Field:    bookingModel.FieldCheckOutDate,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    start,
				Table:    bookingModel.TableName,
			},
		},
	}
}

func revenueFilter(start, end time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    paymentModel.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    []string{constant.PaymentStatusCompleted, constant.PaymentStatusPaid},
				Table:    paymentModel.TableName,
			},
			gDto.Filter{
				ArgName:  "period_start",
				Field:    constant.FieldCreatedAt,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    start,
				Table:    paymentModel.TableName,
			},
			gDto.Filter{
				ArgName:  "period_end",
				Field:    constant.FieldCreatedAt,
				Operator: gDto.FilterOperatorLess,
				Value:    end.AddDate(0, 0, 1),
				Table:    paymentModel.TableName,
			},
		},
	}
}
