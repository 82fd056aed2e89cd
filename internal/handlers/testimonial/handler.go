package testimonial

import (
	"net/http"
	"palmera/infras/otel"
	"palmera/internal/domains/testimonial/model"
	"palmera/internal/domains/testimonial/model/dto"
	"palmera/internal/domains/testimonial/service"
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
	service    service.Testimonial
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Testimonial, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/testimonials", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTestimonial)
		routerGroup.Get("/", handler.GetTestimonials)
		routerGroup.Get("/{id}", handler.GetTestimonialByID)
		routerGroup.Patch("/{id}", handler.UpdateTestimonial)
		routerGroup.Delete("/{id}", handler.DeleteTestimonial)
	})
}

// CreateTestimonial creates a new testimonial.
// @Summary Create a testimonial
// @Tags Testimonial
// @Accept json
// @Produce json
// @Param request body dto.CreateTestimonialRequest true "Create Testimonial Request"
// @Success 201 {object} response.Message "Testimonial created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/testimonials [post]
// @Security BearerAuth
func (handler *Handler) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTestimonial")
	defer scope.End()

	req := dto.CreateTestimonialRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create testimonial")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Testimonial created successfully")
}

// GetTestimonials retrieves testimonials with optional filtering.
// @Summary Get all testimonials
// @Tags Testimonial
// @Accept json
// @Produce json
// @Param published query boolean false "Filter by published flag"
// @Success 200 {object} response.Data[dto.GetTestimonialsResponse] "List of testimonials"
// @Failure 500 {object} response.Error
// @Router /v1/testimonials [get]
func (handler *Handler) GetTestimonials(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTestimonials")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if published := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldPublished)); published != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPublished,
			Operator: gDto.FilterOperatorEq,
			Value:    *published,
			Table:    model.TableName,
		})
	}

	testimonials, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get testimonials")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, testimonials)
}

// GetTestimonialByID retrieves a testimonial by its ID.
// @Summary Get a testimonial by ID
// @Tags Testimonial
// @Accept json
// @Produce json
// @Param id path string true "Testimonial ID"
// @Success 200 {object} response.Data[dto.TestimonialResponse] "Testimonial details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/testimonials/{id} [get]
func (handler *Handler) GetTestimonialByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTestimonialByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	testimonial, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get testimonial by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, testimonial)
}

// UpdateTestimonial updates an existing testimonial.
// @Summary Update a testimonial by ID
// @Tags Testimonial
// @Accept json
// @Produce json
// @Param id path string true "Testimonial ID"
// @Param request body dto.UpdateTestimonialRequest true "Update Testimonial Request"
// @Success 200 {object} response.Message "Testimonial updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/testimonials/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTestimonial")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateTestimonialRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update testimonial")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Testimonial updated successfully")
}

// DeleteTestimonial deletes a testimonial by its ID.
// @Summary Delete a testimonial by ID
// @Tags Testimonial
// @Accept json
// @Produce json
// @Param id path string true "Testimonial ID"
// @Success 200 {object} response.Message "Testimonial deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/testimonials/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTestimonial")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete testimonial")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Testimonial deleted successfully")
}
