package report

import (
	"net/http"

	"lodge/infras/otel"
	"lodge/internal/domains/report/service"
	"lodge/shared/constant"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	queryParamFrom = "from"
	queryParamTo   = "to"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Get("/occupancy", handler.Occupancy)
		routerGroup.Get("/revenue", handler.Revenue)
		routerGroup.Get("/invoice/{bookingId}", handler.Invoice)
	})
}

// Occupancy generates the occupancy workbook for a period and returns its URL.
func (handler *Handler) Occupancy(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Occupancy")
	defer scope.End()

	from := r.URL.Query().Get(queryParamFrom)
	to := r.URL.Query().Get(queryParamTo)

	res, err := handler.service.OccupancyReport(ctx, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to generate occupancy report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Occupancy report generated successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// Revenue generates the revenue workbook for a period and returns its URL.
func (handler *Handler) Revenue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Revenue")
	defer scope.End()

	from := r.URL.Query().Get(queryParamFrom)
	to := r.URL.Query().Get(queryParamTo)

	res, err := handler.service.RevenueReport(ctx, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to generate revenue report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Revenue report generated successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// Invoice renders a booking's stored invoice snapshot as a workbook and
// returns its URL.
func (handler *Handler) Invoice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Invoice")
	defer scope.End()

	bookingID := chi.URLParam(r, constant.RequestParamBookingID)

	res, err := handler.service.InvoiceWorkbook(ctx, bookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to generate invoice workbook")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Invoice workbook generated successfully")

	response.WithJSON(w, http.StatusOK, res)
}
