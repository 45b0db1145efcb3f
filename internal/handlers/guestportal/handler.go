package guestportal

import (
	"encoding/json"
	"fmt"
	"net/http"

	"lodge/infras/otel"
	bookingService "lodge/internal/domains/booking/service"
	menuModel "lodge/internal/domains/menu/model"
	menuDto "lodge/internal/domains/menu/model/dto"
	menuService "lodge/internal/domains/menu/service"
	srDto "lodge/internal/domains/servicerequest/model/dto"
	srService "lodge/internal/domains/servicerequest/service"
	tokenService "lodge/internal/domains/token/service"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/validator"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// PortalResponse is the token-scoped view a guest gets after scanning the
// room QR code.
type PortalResponse struct {
	RoomID        string                     `json:"room_id"`
	RoomNumber    string                     `json:"room_number"`
	BookingID     string                     `json:"booking_id"`
	GuestName     string                     `json:"guest_name"`
	CheckInDate   string                     `json:"check_in_date"`
	CheckOutDate  string                     `json:"check_out_date"`
	BookingStatus string                     `json:"booking_status"`
	Menu          []menuDto.MenuItemResponse `json:"menu"`
}

type Handler struct {
	tokens   tokenService.RoomToken
	bookings bookingService.Booking
	requests srService.ServiceRequest
	menu     menuService.MenuItem
	otel     otel.Otel
}

func New(tokens tokenService.RoomToken, bookings bookingService.Booking, requests srService.ServiceRequest, menu menuService.MenuItem, otel otel.Otel) Handler {
	return Handler{
		tokens:   tokens,
		bookings: bookings,
		requests: requests,
		menu:     menu,
		otel:     otel,
	}
}

// Router mounts the portal routes. Auth is skipped for these paths; the room
// token in the URL is the credential.
func (handler *Handler) Router(router chi.Router) {
	router.Route("/guest", func(routerGroup chi.Router) {
		routerGroup.Get("/{token}", handler.GetPortal)
		routerGroup.Post("/{token}/service-requests", handler.CreateServiceRequest)
	})
}

// GetPortal resolves a room token into the guest's booking context and the
// available menu.
func (handler *Handler) GetPortal(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPortal")
	defer scope.End()

	token := chi.URLParam(r, constant.RequestParamToken)

	roomToken, err := handler.tokens.GetActive(ctx, token)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("portal access with invalid room token")

		response.WithError(w, err)

		return
	}

	booking, err := handler.bookings.Get(ctx, roomToken.BookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking for room token")

		response.WithError(w, err)

		return
	}

	availableFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    menuModel.FieldAvailable,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    menuModel.TableName,
			},
		},
	}

	menu, err := handler.menu.GetAll(ctx, gDto.QueryParams{}, availableFilter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get menu items")

		response.WithError(w, err)

		return
	}

	res := PortalResponse{
		RoomID:        roomToken.RoomID,
		RoomNumber:    booking.RoomNumber,
		BookingID:     booking.ID,
		GuestName:     booking.GuestName,
		CheckInDate:   booking.CheckInDate,
		CheckOutDate:  booking.CheckOutDate,
		BookingStatus: booking.BookingStatus,
		Menu:          menu.MenuItems,
	}

	scope.AddEvent("Guest portal resolved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// CreateServiceRequest files a request on behalf of the in-room guest. Room
// and booking always come from the token, never from the body.
func (handler *Handler) CreateServiceRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateServiceRequest")
	defer scope.End()

	token := chi.URLParam(r, constant.RequestParamToken)

	roomToken, err := handler.tokens.GetActive(ctx, token)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("portal request with invalid room token")

		response.WithError(w, err)

		return
	}

	// Decode first, then overwrite the token-scoped fields so validation sees
	// the resolved room and booking rather than whatever the body carried.
	req := srDto.CreateServiceRequestRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		err = failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err))

		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(w, err)

		return
	}

	req.RoomID = roomToken.RoomID
	req.BookingID = roomToken.BookingID

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.requests.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create portal service request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Portal service request created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}
