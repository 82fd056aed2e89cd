package conference

import (
	"net/http"
	"palmera/infras/otel"
	"palmera/internal/domains/conference/model"
	"palmera/internal/domains/conference/model/dto"
	"palmera/internal/domains/conference/service"
	"palmera/shared/constant"
	gDto "palmera/shared/dto"
	"palmera/shared/validator"
	"palmera/transport/http/middleware"
	"palmera/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Conference
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Conference, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/conferences", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateConferenceBooking)
		routerGroup.Get("/", handler.GetConferenceBookings)
		routerGroup.Get("/{id}", handler.GetConferenceBookingByID)
		routerGroup.Patch("/{id}/status", handler.UpdateConferenceBookingStatus)
	})
}

// CreateConferenceBooking reserves the event space.
// @Summary Create a conference booking
// @Description Reserve the event space for a date and time window; overlapping active reservations are rejected.
// @Tags Conference
// @Accept json
// @Produce json
// @Param request body dto.CreateConferenceBookingRequest true "Create Conference Booking Request"
// @Success 201 {object} response.Data[dto.CreateConferenceBookingResponse] "Reservation created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error "The event space is already reserved"
// @Failure 500 {object} response.Error
// @Router /v1/conferences [post]
func (handler *Handler) CreateConferenceBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateConferenceBooking")
	defer scope.End()

	req := dto.CreateConferenceBookingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create conference booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Conference booking created with reference " + res.Reference)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetConferenceBookings retrieves reservations with optional filtering.
// @Summary Get all conference bookings
// @Tags Conference
// @Accept json
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Data[dto.GetConferenceBookingsResponse] "List of reservations"
// @Failure 500 {object} response.Error
// @Router /v1/conferences [get]
// @Security BearerAuth
func (handler *Handler) GetConferenceBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetConferenceBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if status := r.URL.Query().Get(model.FieldStatus); status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	reservations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get conference bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, reservations)
}

// GetConferenceBookingByID retrieves a reservation by its ID.
// @Summary Get a conference booking by ID
// @Tags Conference
// @Accept json
// @Produce json
// @Param id path string true "Conference Booking ID"
// @Success 200 {object} response.Data[dto.ConferenceBookingResponse] "Reservation details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/conferences/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetConferenceBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetConferenceBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	reservation, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get conference booking by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, reservation)
}

// UpdateConferenceBookingStatus sets a reservation to the requested status.
// @Summary Update a conference booking's status
// @Tags Conference
// @Accept json
// @Produce json
// @Param id path string true "Conference Booking ID"
// @Param request body dto.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} response.Message "Status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/conferences/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateConferenceBookingStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateConferenceBookingStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update conference booking status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Conference booking status updated by user " + user)

	response.WithMessage(w, http.StatusOK, "Conference booking status updated successfully")
}
