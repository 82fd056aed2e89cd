package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"palmera/config"
	"palmera/infras/otel"
	"palmera/internal/domains/menu/model"
	"palmera/internal/domains/menu/model/dto"
	"palmera/internal/domains/menu/repository"
	"palmera/shared"
	"palmera/shared/constant"
	gDto "palmera/shared/dto"
	"palmera/shared/failure"

	"github.com/rs/zerolog/log"
)

type Menu interface {
	Create(ctx context.Context, req dto.CreateMenuItemRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetMenuItemsResponse, error)
	Get(ctx context.Context, id string) (dto.MenuItemResponse, error)
	Update(ctx context.Context, req dto.UpdateMenuItemRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Menu
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Menu, cfg *config.Config, otel otel.Otel) Menu {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateMenuItemRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".menu.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create menu item")

		return fmt.Errorf("failed to create menu item: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetMenuItemsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".menu.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count menu items")

		return res, fmt.Errorf("failed to count menu items: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get menu items")

		return res, fmt.Errorf("failed to get menu items: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.MenuItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".menu.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	item, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get menu item")

		return res, fmt.Errorf("failed to get menu item: %w", err)
	}

	if item.ID == constant.Empty {
		return res, failure.NotFound("menu item not found") // nolint:wrapcheck
	}

	res.FromModel(item)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateMenuItemRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".menu.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateMenuItemRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if menu item exists")

		return fmt.Errorf("failed to check if menu item exists: %w", err)
	}

	if !exist {
		return failure.NotFound("menu item not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update menu item")

		return fmt.Errorf("failed to update menu item: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".menu.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if menu item exists")

		return fmt.Errorf("failed to check if menu item exists: %w", err)
	}

	if !exist {
		return failure.NotFound("menu item not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete menu item")

		return fmt.Errorf("failed to delete menu item: %w", err)
	}

	return nil
}
