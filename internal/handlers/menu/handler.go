package menu

import (
	"net/http"
	"palmera/infras/otel"
	"palmera/internal/domains/menu/model"
	"palmera/internal/domains/menu/model/dto"
	"palmera/internal/domains/menu/service"
	"palmera/shared"
	"palmera/shared/constant"
	gDto "palmera/shared/dto"
	"palmera/shared/validator"
	"palmera/transport/http/middleware"
	"palmera/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Menu
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Menu, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/menu-items", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateMenuItem)
		routerGroup.Get("/", handler.GetMenuItems)
		routerGroup.Get("/{id}", handler.GetMenuItemByID)
		routerGroup.Patch("/{id}", handler.UpdateMenuItem)
		routerGroup.Delete("/{id}", handler.DeleteMenuItem)
	})
}

// CreateMenuItem creates a new menu item.
// @Summary Create a menu item
// @Tags Menu
// @Accept json
// @Produce json
// @Param request body dto.CreateMenuItemRequest true "Create Menu Item Request"
// @Success 201 {object} response.Message "Menu item created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/menu-items [post]
// @Security BearerAuth
func (handler *Handler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMenuItem")
	defer scope.End()

	req := dto.CreateMenuItemRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create menu item")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Menu item created successfully")
}

// GetMenuItems retrieves menu items with optional filtering.
// @Summary Get all menu items
// @Tags Menu
// @Accept json
// @Produce json
// @Param category query string false "Filter by category"
// @Param available query boolean false "Filter by availability"
// @Success 200 {object} response.Data[dto.GetMenuItemsResponse] "List of menu items"
// @Failure 500 {object} response.Error
// @Router /v1/menu-items [get]
func (handler *Handler) GetMenuItems(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMenuItems")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if category := r.URL.Query().Get(model.FieldCategory); category != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCategory,
			Operator: gDto.FilterOperatorEq,
			Value:    category,
			Table:    model.TableName,
		})
	}

	if available := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldAvailable)); available != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldAvailable,
			Operator: gDto.FilterOperatorEq,
			Value:    *available,
			Table:    model.TableName,
		})
	}

	items, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get menu items")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, items)
}

// GetMenuItemByID retrieves a menu item by its ID.
// @Summary Get a menu item by ID
// @Tags Menu
// @Accept json
// @Produce json
// @Param id path string true "Menu Item ID"
// @Success 200 {object} response.Data[dto.MenuItemResponse] "Menu item details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/menu-items/{id} [get]
func (handler *Handler) GetMenuItemByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMenuItemByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	item, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get menu item by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, item)
}

// UpdateMenuItem updates an existing menu item.
// @Summary Update a menu item by ID
// @Tags Menu
// @Accept json
// @Produce json
// @Param id path string true "Menu Item ID"
// @Param request body dto.UpdateMenuItemRequest true "Update Menu Item Request"
// @Success 200 {object} response.Message "Menu item updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/menu-items/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMenuItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateMenuItemRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update menu item")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Menu item updated successfully")
}

// DeleteMenuItem deletes a menu item by its ID.
// @Summary Delete a menu item by ID
// @Tags Menu
// @Accept json
// @Produce json
// @Param id path string true "Menu Item ID"
// @Success 200 {object} response.Message "Menu item deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/menu-items/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMenuItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete menu item")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Menu item deleted successfully")
}
