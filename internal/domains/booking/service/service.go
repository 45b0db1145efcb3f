package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/model/dto"
	"lodge/internal/domains/booking/repository"
	guestModel "lodge/internal/domains/guest/model"
	guestRepo "lodge/internal/domains/guest/repository"
	paymentModel "lodge/internal/domains/payment/model"
	paymentRepo "lodge/internal/domains/payment/repository"
	roomModel "lodge/internal/domains/room/model"
	roomRepo "lodge/internal/domains/room/repository"
	srModel "lodge/internal/domains/servicerequest/model"
	srRepo "lodge/internal/domains/servicerequest/repository"
	tokenService "lodge/internal/domains/token/service"
	"lodge/internal/events"
	"lodge/internal/metrics"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	// Room and payment caches go stale whenever a booking transition flips
	// room status or writes a payment row.
	cacheRoomPrefix    = "room:"
	cachePaymentPrefix = "payment:"

	hoursPerNight = 24
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetByRoom(ctx context.Context, roomID string, req gDto.QueryParams) (dto.GetBookingsResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	Checkout(ctx context.Context, id string) (dto.CheckoutResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Booking
	roomRepo  roomRepo.Room
	guestRepo guestRepo.Guest
	secondary guestRepo.SecondaryGuest
	payments  paymentRepo.Payment
	requests  srRepo.ServiceRequest
	tokens    tokenService.RoomToken
	publisher events.Publisher
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	repo repository.Booking,
	rooms roomRepo.Room,
	guests guestRepo.Guest,
	secondary guestRepo.SecondaryGuest,
	payments paymentRepo.Payment,
	requests srRepo.ServiceRequest,
	tokens tokenService.RoomToken,
	publisher events.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:      repo,
		roomRepo:  rooms,
		guestRepo: guests,
		secondary: secondary,
		payments:  payments,
		requests:  requests,
		tokens:    tokens,
		publisher: publisher,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	checkIn, checkOut, err := req.ParseDates()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking dates")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return res, failure.BadRequestFromString("check-out date must be after check-in date") // nolint:wrapcheck
	}

	guest, err := s.guestRepo.Get(ctx, shared.FilterByID(req.GuestID, guestModel.FieldID, guestModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest")

		return res, fmt.Errorf("failed to get guest: %w", err)
	}

	if guest.ID == constant.Empty {
		return res, failure.NotFound("guest not found") // nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	if room.Status != constant.RoomStatusAvailable {
		return res, failure.Conflict("room not available") // nolint:wrapcheck
	}

	overlapping, err := s.repo.Exist(ctx, overlapFilter(req.RoomID, checkIn, checkOut))
	if err != nil {
		log.Error().Err(err).Msg("failed to check overlapping bookings")

		return res, fmt.Errorf("failed to check overlapping bookings: %w", err)
	}

	if overlapping {
		return res, failure.Conflict("room already booked for the requested dates") // nolint:wrapcheck
	}

	booking := req.ToModel(user, checkIn, checkOut, room.PricePerNight)

	secondaries := make([]guestModel.SecondaryGuest, len(req.SecondaryGuests))
	for i, sg := range req.SecondaryGuests {
		secondaries[i] = sg.ToModel(req.GuestID, user)
	}

	err = s.repo.Transact(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.InsertTx(ctx, tx, booking); err != nil {
			return err //nolint:wrapcheck
		}

		if len(secondaries) > 0 {
			if err := s.secondary.InsertBulkTx(ctx, tx, secondaries); err != nil {
				return err //nolint:wrapcheck
			}
		}

		return s.roomRepo.UpdateTx(ctx, tx, map[string]any{
			roomModel.FieldStatus:    constant.RoomStatusOccupied,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	metrics.IncBookingCreated()

	s.publisher.PublishBooking(ctx, events.BookingEvent{
		Type:      events.TypeBookingCreated,
		BookingID: booking.ID,
		RoomID:    booking.RoomID,
		GuestID:   booking.GuestID,
		Status:    booking.BookingStatus,
	})

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheRoomPrefix)
	}()

	booking.GuestName = guest.Name
	booking.GuestPhone = guest.Phone
	booking.RoomNumber = room.RoomNumber
	booking.RoomType = room.Type

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetByRoom(ctx context.Context, roomID string, req gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(roomID, model.FieldRoomID, model.TableName)

	return s.GetAll(ctx, req, filter)
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateBookingRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	// Billing runs only through the checkout endpoint; a checked-out status
	// set through the generic merge would skip invoice computation entirely.
	if req.BookingStatus == constant.BookingStatusCheckedOut {
		return failure.BadRequestFromString("cannot set booking to checked_out directly, use the checkout endpoint") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	// A settled stay is immutable except for its payment status.
	if booking.BookingStatus == constant.BookingStatusCheckedOut {
		extras := req
		extras.PaymentStatus = constant.Empty

		if req.PaymentStatus == constant.Empty || extras != (dto.UpdateBookingRequest{}) {
			return failure.Conflict("booking already checked out, only payment status can be updated") // nolint:wrapcheck
		}
	}

	updatedFields := shared.TransformFields(req, user)

	if err = mergeDateFields(updatedFields, req); err != nil {
		return failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	switch req.BookingStatus {
	case constant.BookingStatusCheckedIn:
		err = s.checkIn(ctx, booking, updatedFields, filter)
	case constant.BookingStatusCancelled:
		err = s.cancel(ctx, booking, updatedFields, filter, user)
	default:
		if req.BookingStatus != constant.Empty {
			updatedFields[model.FieldBookingStatus] = req.BookingStatus
		}

		err = s.repo.Update(ctx, updatedFields, filter)
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheRoomPrefix)
	}()

	return nil
}

// checkIn transitions the booking to checked_in, issues (or reactivates) its
// room token, and asserts room occupancy, all in one transaction.
func (s *serviceImpl) checkIn(ctx context.Context, booking model.Booking, updatedFields map[string]any, filter gDto.FilterGroup) error {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields[model.FieldBookingStatus] = constant.BookingStatusCheckedIn
	if booking.CheckInTime == constant.Empty {
		updatedFields[model.FieldCheckInTime] = timezone.Now().Format(constant.TimeOnlyFormat)
	}

	err := s.repo.Transact(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.UpdateTx(ctx, tx, updatedFields, filter); err != nil {
			return err //nolint:wrapcheck
		}

		if _, err := s.tokens.IssueTx(ctx, tx, booking.ID, booking.RoomID); err != nil {
			return err //nolint:wrapcheck
		}

		return s.roomRepo.UpdateTx(ctx, tx, map[string]any{
			roomModel.FieldStatus:    constant.RoomStatusOccupied,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}, shared.FilterByID(booking.RoomID, roomModel.FieldID, roomModel.TableName))
	})
	if err != nil {
		return err //nolint:wrapcheck
	}

	s.publisher.PublishBooking(ctx, events.BookingEvent{
		Type:      events.TypeBookingCheckedIn,
		BookingID: booking.ID,
		RoomID:    booking.RoomID,
		GuestID:   booking.GuestID,
		Status:    constant.BookingStatusCheckedIn,
	})

	return nil
}

// cancel transitions the booking to cancelled, frees the room and deactivates
// the room token in one transaction.
func (s *serviceImpl) cancel(ctx context.Context, booking model.Booking, updatedFields map[string]any, filter gDto.FilterGroup, user string) error {
	updatedFields[model.FieldBookingStatus] = constant.BookingStatusCancelled

	err := s.repo.Transact(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.UpdateTx(ctx, tx, updatedFields, filter); err != nil {
			return err //nolint:wrapcheck
		}

		if err := s.tokens.DeactivateTx(ctx, tx, booking.ID); err != nil {
			return err //nolint:wrapcheck
		}

		return s.roomRepo.UpdateTx(ctx, tx, map[string]any{
			roomModel.FieldStatus:    constant.RoomStatusAvailable,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}, shared.FilterByID(booking.RoomID, roomModel.FieldID, roomModel.TableName))
	})
	if err != nil {
		return err //nolint:wrapcheck
	}

	s.publisher.PublishBooking(ctx, events.BookingEvent{
		Type:      events.TypeBookingCancelled,
		BookingID: booking.ID,
		RoomID:    booking.RoomID,
		GuestID:   booking.GuestID,
		Status:    constant.BookingStatusCancelled,
	})

	return nil
}

func (s *serviceImpl) Checkout(ctx context.Context, id string) (res dto.CheckoutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Checkout")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.BookingStatus == constant.BookingStatusCheckedOut {
		return res, failure.Conflict("booking already checked out") // nolint:wrapcheck
	}

	if booking.BookingStatus == constant.BookingStatusCancelled {
		return res, failure.Conflict("booking is cancelled") // nolint:wrapcheck
	}

	now := timezone.Now()
	nights := calculateNights(booking.CheckInDate, now)
	roomCharges := float64(nights) * booking.NightlyRate

	completed, err := s.requests.GetAll(ctx, gDto.QueryParams{}, completedRequestsFilter(booking.ID, booking.RoomID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get completed service requests")

		return res, fmt.Errorf("failed to get completed service requests: %w", err)
	}

	lines, serviceCharges := buildServiceLines(completed)
	total := roomCharges + serviceCharges

	invoice := dto.Invoice{
		InvoiceNumber:       invoiceNumber(booking.ID, now),
		BookingID:           booking.ID,
		GuestName:           booking.GuestName,
		GuestPhone:          booking.GuestPhone,
		RoomNumber:          booking.RoomNumber,
		RoomType:            booking.RoomType,
		CheckInDate:         booking.CheckInDate.Format(constant.DateOnlyFormat),
		CheckOutDate:        now.Format(constant.DateOnlyFormat),
		Nights:              nights,
		NightlyRate:         booking.NightlyRate,
		RoomCharges:         roomCharges,
		ServiceLines:        lines,
		TotalServiceCharges: serviceCharges,
		TotalAmount:         total,
		IssuedAt:            now.Format(constant.DateFormat),
	}

	snapshot, err := json.Marshal(invoice)
	if err != nil {
		log.Error().Err(err).Msg("failed to serialize invoice snapshot")

		return res, fmt.Errorf("failed to serialize invoice snapshot: %w", err)
	}

	payment := paymentModel.Payment{
		ID:        uuid.NewString(),
		BookingID: booking.ID,
		Amount:    total,
		Method:    constant.PaymentMethodOther,
		Status:    constant.PaymentStatusPending,
		Notes:     string(snapshot),
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	err = s.repo.Transact(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.UpdateTx(ctx, tx, map[string]any{
			model.FieldBookingStatus: constant.BookingStatusCheckedOut,
			model.FieldCheckOutDate:  now,
			model.FieldCheckOutTime:  now.Format(constant.TimeOnlyFormat),
			model.FieldPaymentStatus: constant.PaymentStatusPending,
			model.FieldTotalAmount:   total,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: user,
		}, filter); err != nil {
			return err //nolint:wrapcheck
		}

		if err := s.roomRepo.UpdateTx(ctx, tx, map[string]any{
			roomModel.FieldStatus:    constant.RoomStatusAvailable,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: user,
		}, shared.FilterByID(booking.RoomID, roomModel.FieldID, roomModel.TableName)); err != nil {
			return err //nolint:wrapcheck
		}

		if err := s.tokens.DeactivateTx(ctx, tx, booking.ID); err != nil {
			return err //nolint:wrapcheck
		}

		return s.payments.InsertTx(ctx, tx, payment)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to perform checkout")

		return res, fmt.Errorf("failed to perform checkout: %w", err)
	}

	metrics.IncCheckout()
	metrics.ObserveInvoiceTotal(total)

	s.publisher.PublishBooking(ctx, events.BookingEvent{
		Type:      events.TypeBookingCheckedOut,
		BookingID: booking.ID,
		RoomID:    booking.RoomID,
		GuestID:   booking.GuestID,
		Status:    constant.BookingStatusCheckedOut,
		Total:     total,
	})

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheRoomPrefix)
		shared.InvalidateCaches(c, s.cache, cachePaymentPrefix)
	}()

	res.Message = "Checkout completed successfully"
	res.Invoice = invoice

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	err = s.repo.Transact(ctx, func(tx *sqlx.Tx) error {
		if err := s.tokens.DeactivateTx(ctx, tx, booking.ID); err != nil {
			return err //nolint:wrapcheck
		}

		if err := s.roomRepo.UpdateTx(ctx, tx, map[string]any{
			roomModel.FieldStatus:    constant.RoomStatusAvailable,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}, shared.FilterByID(booking.RoomID, roomModel.FieldID, roomModel.TableName)); err != nil {
			return err //nolint:wrapcheck
		}

		return s.repo.DeleteTx(ctx, tx, filter)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.publisher.PublishBooking(ctx, events.BookingEvent{
		Type:      events.TypeBookingCancelled,
		BookingID: booking.ID,
		RoomID:    booking.RoomID,
		GuestID:   booking.GuestID,
		Status:    constant.BookingStatusCancelled,
	})

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheRoomPrefix)
	}()

	return nil
}

// calculateNights bills ceil((now - checkIn) / 24h) nights with a floor of
// one, so a same-day stay is still one night.
func calculateNights(checkIn, now time.Time) int {
	nights := int(math.Ceil(now.Sub(checkIn).Hours() / hoursPerNight))
	if nights < 1 {
		nights = 1
	}

	return nights
}

// buildServiceLines expands each completed request into one line per item; a
// request without items collapses to a single line priced at its own total.
func buildServiceLines(requests []srModel.ServiceRequest) ([]dto.InvoiceLine, float64) {
	lines := []dto.InvoiceLine{}
	total := 0.0

	for _, request := range requests {
		if len(request.Items) == 0 {
			description := request.Description
			if description == constant.Empty {
				description = request.Type
			}

			lines = append(lines, dto.InvoiceLine{
				Description: description,
				Quantity:    1,
				UnitPrice:   request.TotalAmount,
				Amount:      request.TotalAmount,
			})
			total += request.TotalAmount

			continue
		}

		for _, item := range request.Items {
			amount := float64(item.Quantity) * item.Price

			lines = append(lines, dto.InvoiceLine{
				Description: item.Name,
				Quantity:    item.Quantity,
				UnitPrice:   item.Price,
				Amount:      amount,
			})
			total += amount
		}
	}

	return lines, total
}

func invoiceNumber(bookingID string, now time.Time) string {
	prefix := bookingID
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}

	return fmt.Sprintf("INV-%s-%d", prefix, now.Unix())
}

// overlapFilter matches bookings on the room still holding a claim
// (confirmed or checked_in) whose date range intersects [checkIn, checkOut).
func overlapFilter(roomID string, checkIn, checkOut time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomID,
				Operator: gDto.FilterOperatorEq,
				Value:    roomID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldBookingStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    []string{constant.BookingStatusConfirmed, constant.BookingStatusCheckedIn},
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "overlap_starts_before",
				Field:    model.FieldCheckInDate,
				Operator: gDto.FilterOperatorLess,
				Value:    checkOut,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "overlap_ends_after",
				Field:    model.FieldCheckOutDate,
				Operator: gDto.FilterOperatorGreater,
				Value:    checkIn,
				Table:    model.TableName,
			},
		},
	}
}

func completedRequestsFilter(bookingID, roomID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    srModel.FieldBookingID,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingID,
				Table:    srModel.TableName,
			},
			gDto.Filter{
				Field:    srModel.FieldRoomID,
				Operator: gDto.FilterOperatorEq,
				Value:    roomID,
				Table:    srModel.TableName,
			},
			gDto.Filter{
				Field:    srModel.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    constant.ServiceRequestStatusCompleted,
				Table:    srModel.TableName,
			},
		},
	}
}

// mergeDateFields parses optional date strings into the update map and keeps
// the ordering invariant when both bounds are present.
func mergeDateFields(updatedFields map[string]any, req dto.UpdateBookingRequest) error {
	var checkIn, checkOut time.Time

	if req.CheckInDate != constant.Empty {
		parsed, err := timezone.Parse(constant.DateOnlyFormat, req.CheckInDate)
		if err != nil {
			return err //nolint:wrapcheck
		}

		checkIn = parsed
		updatedFields[model.FieldCheckInDate] = parsed
	}

	if req.CheckOutDate != constant.Empty {
		parsed, err := timezone.Parse(constant.DateOnlyFormat, req.CheckOutDate)
		if err != nil {
			return err //nolint:wrapcheck
		}

		checkOut = parsed
		updatedFields[model.FieldCheckOutDate] = parsed
	}

	if !checkIn.IsZero() && !checkOut.IsZero() && !checkOut.After(checkIn) {
		return fmt.Errorf("check-out date must be after check-in date")
	}

	return nil
}
