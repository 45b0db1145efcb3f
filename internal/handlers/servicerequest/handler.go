package servicerequest

import (
	"net/http"

	"lodge/infras/otel"
	"lodge/internal/domains/servicerequest/model"
	"lodge/internal/domains/servicerequest/model/dto"
	"lodge/internal/domains/servicerequest/service"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/validator"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.ServiceRequest
	otel    otel.Otel
}

func New(service service.ServiceRequest, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/service-requests", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateServiceRequest)
		routerGroup.Get("/", handler.GetServiceRequests)
		routerGroup.Get("/{id}", handler.GetServiceRequestByID)
		routerGroup.Patch("/{id}", handler.UpdateServiceRequest)
		routerGroup.Delete("/{id}", handler.DeleteServiceRequest)
	})
}

// CreateServiceRequest records a food or room-service request.
func (handler *Handler) CreateServiceRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateServiceRequest")
	defer scope.End()

	req := dto.CreateServiceRequestRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create service request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Service request created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetServiceRequests retrieves requests filtered by room, booking, type or status.
func (handler *Handler) GetServiceRequests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServiceRequests")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	roomID := r.URL.Query().Get(model.FieldRoomID)
	bookingID := r.URL.Query().Get(model.FieldBookingID)
	requestType := r.URL.Query().Get(model.FieldType)
	status := r.URL.Query().Get(model.FieldStatus)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if roomID != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRoomID,
			Operator: gDto.FilterOperatorEq,
			Value:    roomID,
			Table:    model.TableName,
		})
	}

	if bookingID != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldBookingID,
			Operator: gDto.FilterOperatorEq,
			Value:    bookingID,
			Table:    model.TableName,
		})
	}

	if requestType != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldType,
			Operator: gDto.FilterOperatorEq,
			Value:    requestType,
			Table:    model.TableName,
		})
	}

	if status != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	requests, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get service requests")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Service requests retrieved successfully")

	response.WithJSON(w, http.StatusOK, requests)
}

// GetServiceRequestByID retrieves a service request by its ID.
func (handler *Handler) GetServiceRequestByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServiceRequestByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	request, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get service request by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Service request retrieved successfully")

	response.WithJSON(w, http.StatusOK, request)
}

// UpdateServiceRequest updates a request's status, description or total.
func (handler *Handler) UpdateServiceRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateServiceRequest")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateServiceRequestRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update service request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Service request updated successfully")

	response.WithMessage(w, http.StatusOK, "Service request updated successfully")
}

// DeleteServiceRequest removes a service request.
func (handler *Handler) DeleteServiceRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteServiceRequest")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete service request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Service request deleted successfully")

	response.WithMessage(w, http.StatusOK, "Service request deleted successfully")
}
