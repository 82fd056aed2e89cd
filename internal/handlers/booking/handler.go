package booking

import (
	"net/http"
	"palmera/infras/otel"
	"palmera/internal/domains/booking/model"
	"palmera/internal/domains/booking/model/dto"
	"palmera/internal/domains/booking/service"
	"palmera/shared/constant"
	gDto "palmera/shared/dto"
	"palmera/shared/validator"
	"palmera/transport/http/middleware"
	"palmera/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Booking
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Booking, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/duplicates", handler.GetDuplicates)
		routerGroup.Post("/bulk-status", handler.BulkUpdateStatus)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Patch("/{id}/status", handler.UpdateBookingStatus)
		routerGroup.Post("/{id}/cancel", handler.CancelBooking)
	})

	router.Get("/mybookings", handler.GetMyBookings)
}

// CreateBooking handles a new room booking request.
// @Summary Create a new booking
// @Description Create a room booking; overlapping active bookings for the same guest and room type are rejected with the conflicting booking's details.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.CreateBookingResponse] "Booking created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "An overlapping booking already exists"
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created with reference " + res.Reference)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetBookings retrieves bookings with optional filtering and pagination.
// @Summary Get all bookings
// @Description Retrieve bookings with optional status, guest email, and room type filters.
// @Tags Booking
// @Accept json
// @Produce json
// @Param status query string false "Filter by status"
// @Param guest_email query string false "Filter by guest email"
// @Param room_type_id query string false "Filter by room type"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
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

	if email := r.URL.Query().Get(model.FieldGuestEmail); email != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldGuestEmail,
			Operator: gDto.FilterOperatorLike,
			Value:    email,
			Table:    model.TableName,
		})
	}

	if roomTypeID := r.URL.Query().Get(model.FieldRoomTypeID); roomTypeID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRoomTypeID,
			Operator: gDto.FilterOperatorEq,
			Value:    roomTypeID,
			Table:    model.TableName,
		})
	}

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetMyBookings retrieves the signed-in guest's own bookings.
// @Summary Get the caller's bookings
// @Description Retrieve the bookings registered under the caller's email address.
// @Tags Booking
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/mybookings [get]
// @Security BearerAuth
func (handler *Handler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyBookings")
	defer scope.End()

	email, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldGuestEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    email,
				Table:    model.TableName,
			},
		},
	}

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get own bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingByID retrieves a booking by its ID.
// @Summary Get a booking by ID
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// UpdateBookingStatus sets a booking to the requested status.
// @Summary Update a booking's status
// @Description Set a booking to pending, confirmed, cancelled, or expired. Transitions are not restricted.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} response.Message "Booking status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBookingStatus")
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
		log.Error().Err(err).Msg("failed to update booking status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking status updated by user " + user)

	response.WithMessage(w, http.StatusOK, "Booking status updated successfully")
}

// BulkUpdateStatus applies a status to several bookings at once.
// @Summary Bulk update booking statuses
// @Description Apply the status to every listed booking; failures are reported per id without aborting the batch.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.BulkStatusRequest true "Bulk Status Request"
// @Success 200 {object} response.Data[dto.BulkStatusResponse] "Per-booking results"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/bulk-status [post]
// @Security BearerAuth
func (handler *Handler) BulkUpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BulkUpdateStatus")
	defer scope.End()

	req := dto.BulkStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.BulkUpdateStatus(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to bulk update booking statuses")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CancelBooking cancels the caller's own booking.
// @Summary Cancel own booking
// @Description Cancel a booking registered under the caller's email address.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking cancelled successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.CancelOwn(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Booking cancelled successfully")
}

// GetDuplicates lists clusters of active bookings sharing guest email
// and stay dates.
// @Summary Find duplicate bookings
// @Description Group active bookings sharing guest email and exact stay dates.
// @Tags Booking
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.DuplicateClustersResponse] "Duplicate clusters"
// @Failure 500 {object} response.Error
// @Router /v1/bookings/duplicates [get]
// @Security BearerAuth
func (handler *Handler) GetDuplicates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDuplicates")
	defer scope.End()

	res, err := handler.service.FindDuplicates(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to find duplicate bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
