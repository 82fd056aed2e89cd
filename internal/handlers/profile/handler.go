package profile

import (
	"net/http"
	"palmera/infras/otel"
	"palmera/internal/domains/profile/model/dto"
	"palmera/internal/domains/profile/service"
	"palmera/shared/constant"
	gDto "palmera/shared/dto"
	"palmera/shared/validator"
	"palmera/transport/http/middleware"
	"palmera/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Profile
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Profile, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/profiles", func(routerGroup chi.Router) {
		routerGroup.Get("/me", handler.GetOwnProfile)
		routerGroup.Put("/me", handler.UpsertOwnProfile)
		routerGroup.Get("/", handler.GetProfiles)
		routerGroup.Get("/{id}", handler.GetProfileByID)
		routerGroup.Delete("/{id}", handler.DeleteProfile)
	})
}

// GetOwnProfile retrieves the signed-in user's profile.
// @Summary Get own profile
// @Tags Profile
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.ProfileResponse] "Profile details"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/profiles/me [get]
// @Security BearerAuth
func (handler *Handler) GetOwnProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOwnProfile")
	defer scope.End()

	profile, err := handler.service.GetOwn(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get own profile")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, profile)
}

// UpsertOwnProfile creates or updates the signed-in user's profile.
// @Summary Save own profile
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body dto.UpsertProfileRequest true "Upsert Profile Request"
// @Success 200 {object} response.Message "Profile saved successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/profiles/me [put]
// @Security BearerAuth
func (handler *Handler) UpsertOwnProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpsertOwnProfile")
	defer scope.End()

	req := dto.UpsertProfileRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpsertOwn(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to save profile")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Profile saved successfully")
}

// GetProfiles retrieves all profiles.
// @Summary Get all profiles
// @Tags Profile
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetProfilesResponse] "List of profiles"
// @Failure 500 {object} response.Error
// @Router /v1/profiles [get]
// @Security BearerAuth
func (handler *Handler) GetProfiles(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProfiles")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	profiles, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get profiles")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, profiles)
}

// GetProfileByID retrieves a profile by its ID.
// @Summary Get a profile by ID
// @Tags Profile
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} response.Data[dto.ProfileResponse] "Profile details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/profiles/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetProfileByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProfileByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	profile, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get profile by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, profile)
}

// DeleteProfile deletes a profile by its ID.
// @Summary Delete a profile by ID
// @Tags Profile
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} response.Message "Profile deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/profiles/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteProfile")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete profile")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Profile deleted successfully")
}
