package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"palmera/config"
	"palmera/infras/otel"
	"palmera/internal/domains/profile/model"
	"palmera/internal/domains/profile/model/dto"
	"palmera/internal/domains/profile/repository"
	"palmera/shared"
	"palmera/shared/constant"
	gDto "palmera/shared/dto"
	"palmera/shared/failure"

	"github.com/rs/zerolog/log"
)

type Profile interface {
	UpsertOwn(ctx context.Context, req dto.UpsertProfileRequest) error
	GetOwn(ctx context.Context) (dto.ProfileResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetProfilesResponse, error)
	Get(ctx context.Context, id string) (dto.ProfileResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Profile
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Profile, cfg *config.Config, otel otel.Otel) Profile {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

// UpsertOwn writes the signed-in user's profile, creating the row on
// first save.
func (s *serviceImpl) UpsertOwn(ctx context.Context, req dto.UpsertProfileRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".profile.UpsertOwn")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	email, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	if userID == constant.Empty {
		return failure.Unauthorized("missing user identity") // nolint:wrapcheck
	}

	filter := shared.FilterByID(userID, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if profile exists")

		return fmt.Errorf("failed to check if profile exists: %w", err)
	}

	if !exist {
		if err = s.repo.Insert(ctx, req.ToModel(userID, email)); err != nil {
			log.Error().Err(err).Msg("failed to create profile")

			return fmt.Errorf("failed to create profile: %w", err)
		}

		return nil
	}

	updatedFields := shared.TransformFields(req, userID)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update profile")

		return fmt.Errorf("failed to update profile: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetOwn(ctx context.Context) (res dto.ProfileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".profile.GetOwn")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == constant.Empty {
		return res, failure.Unauthorized("missing user identity") // nolint:wrapcheck
	}

	return s.Get(ctx, userID)
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetProfilesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".profile.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count profiles")

		return res, fmt.Errorf("failed to count profiles: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get profiles")

		return res, fmt.Errorf("failed to get profiles: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ProfileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".profile.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	profile, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get profile")

		return res, fmt.Errorf("failed to get profile: %w", err)
	}

	if profile.ID == constant.Empty {
		return res, failure.NotFound("profile not found") // nolint:wrapcheck
	}

	res.FromModel(profile)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".profile.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if profile exists")

		return fmt.Errorf("failed to check if profile exists: %w", err)
	}

	if !exist {
		return failure.NotFound("profile not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete profile")

		return fmt.Errorf("failed to delete profile: %w", err)
	}

	return nil
}
