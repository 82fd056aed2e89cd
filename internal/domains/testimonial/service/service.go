package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"palmera/config"
	"palmera/infras/otel"
	"palmera/internal/domains/testimonial/model"
	"palmera/internal/domains/testimonial/model/dto"
	"palmera/internal/domains/testimonial/repository"
	"palmera/shared"
	"palmera/shared/constant"
	gDto "palmera/shared/dto"
	"palmera/shared/failure"

	"github.com/rs/zerolog/log"
)

type Testimonial interface {
	Create(ctx context.Context, req dto.CreateTestimonialRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTestimonialsResponse, error)
	Get(ctx context.Context, id string) (dto.TestimonialResponse, error)
	Update(ctx context.Context, req dto.UpdateTestimonialRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Testimonial
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Testimonial, cfg *config.Config, otel otel.Otel) Testimonial {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTestimonialRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".testimonial.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create testimonial")

		return fmt.Errorf("failed to create testimonial: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTestimonialsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".testimonial.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count testimonials")

		return res, fmt.Errorf("failed to count testimonials: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get testimonials")

		return res, fmt.Errorf("failed to get testimonials: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TestimonialResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".testimonial.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	testimonial, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get testimonial")

		return res, fmt.Errorf("failed to get testimonial: %w", err)
	}

	if testimonial.ID == constant.Empty {
		return res, failure.NotFound("testimonial not found") // nolint:wrapcheck
	}

	res.FromModel(testimonial)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTestimonialRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".testimonial.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateTestimonialRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if testimonial exists")

		return fmt.Errorf("failed to check if testimonial exists: %w", err)
	}

	if !exist {
		return failure.NotFound("testimonial not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update testimonial")

		return fmt.Errorf("failed to update testimonial: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".testimonial.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if testimonial exists")

		return fmt.Errorf("failed to check if testimonial exists: %w", err)
	}

	if !exist {
		return failure.NotFound("testimonial not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete testimonial")

		return fmt.Errorf("failed to delete testimonial: %w", err)
	}

	return nil
}
