package roomtype

import (
	"net/http"
	"palmera/infras/otel"
	"palmera/internal/domains/roomtype/model"
	"palmera/internal/domains/roomtype/model/dto"
	"palmera/internal/domains/roomtype/service"
	"palmera/shared/constant"
	gDto "palmera/shared/dto"
	"palmera/shared/validator"
	"palmera/transport/http/middleware"
	"palmera/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.RoomType
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.RoomType, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/room-types", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoomType)
		routerGroup.Get("/", handler.GetRoomTypes)
		routerGroup.Get("/{id}", handler.GetRoomTypeByID)
		routerGroup.Patch("/{id}", handler.UpdateRoomType)
		routerGroup.Delete("/{id}", handler.DeleteRoomType)
	})
}

// CreateRoomType creates a new room type.
// @Summary Create a room type
// @Tags RoomType
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomTypeRequest true "Create Room Type Request"
// @Success 201 {object} response.Message "Room type created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-types [post]
// @Security BearerAuth
func (handler *Handler) CreateRoomType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoomType")
	defer scope.End()

	req := dto.CreateRoomTypeRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room type")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room type created by user " + user)

	response.WithMessage(w, http.StatusCreated, "Room type created successfully")
}

// GetRoomTypes retrieves room types with optional filtering.
// @Summary Get all room types
// @Tags RoomType
// @Accept json
// @Produce json
// @Param name query string false "Filter by name"
// @Success 200 {object} response.Data[dto.GetRoomTypesResponse] "List of room types"
// @Failure 500 {object} response.Error
// @Router /v1/room-types [get]
func (handler *Handler) GetRoomTypes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomTypes")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if name := r.URL.Query().Get(model.FieldName); name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	roomTypes, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room types")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, roomTypes)
}

// GetRoomTypeByID retrieves a room type by its ID.
// @Summary Get a room type by ID
// @Tags RoomType
// @Accept json
// @Produce json
// @Param id path string true "Room Type ID"
// @Success 200 {object} response.Data[dto.RoomTypeResponse] "Room type details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-types/{id} [get]
func (handler *Handler) GetRoomTypeByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomTypeByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	roomType, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room type by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, roomType)
}

// UpdateRoomType updates an existing room type.
// @Summary Update a room type by ID
// @Tags RoomType
// @Accept json
// @Produce json
// @Param id path string true "Room Type ID"
// @Param request body dto.UpdateRoomTypeRequest true "Update Room Type Request"
// @Success 200 {object} response.Message "Room type updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-types/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoomType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoomType")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateRoomTypeRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room type")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room type updated by user " + user)

	response.WithMessage(w, http.StatusOK, "Room type updated successfully")
}

// DeleteRoomType deletes a room type by its ID.
// @Summary Delete a room type by ID
// @Tags RoomType
// @Accept json
// @Produce json
// @Param id path string true "Room Type ID"
// @Success 200 {object} response.Message "Room type deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-types/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRoomType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoomType")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room type")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room type deleted by user " + user)

	response.WithMessage(w, http.StatusOK, "Room type deleted successfully")
}
