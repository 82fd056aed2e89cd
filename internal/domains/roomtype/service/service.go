package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"palmera/config"
	"palmera/infras/otel"
	"palmera/infras/s3"
	"palmera/internal/domains/roomtype/model"
	"palmera/internal/domains/roomtype/model/dto"
	"palmera/internal/domains/roomtype/repository"
	"palmera/shared"
	"palmera/shared/base64"
	"palmera/shared/cache"
	"palmera/shared/constant"
	gDto "palmera/shared/dto"
	"palmera/shared/failure"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoomType    = "roomtype:get"
	cacheGetAllRoomType = "roomtype:gets"
	cacheCountRoomType  = "roomtype:count"
)

var contentTypeExtensions = map[string]string{
	"image/png":  "png",
	"image/jpg":  "jpg",
	"image/jpeg": "jpg",
}

type RoomType interface {
	Create(ctx context.Context, req dto.CreateRoomTypeRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomTypesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.RoomTypeResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomTypeRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.RoomType
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.RoomType, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) RoomType {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomTypeRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".roomtype.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	imageURL, uploadedObjectName, err := s.uploadImage(ctx, req.Image)
	if err != nil {
		return err
	}

	if err = s.repo.Insert(ctx, req.ToModel(user, imageURL)); err != nil {
		if uploadedObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, model.EntityName, uploadedObjectName)
		}

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoomType)
		shared.InvalidateCaches(c, s.cache, cacheCountRoomType)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomTypesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".roomtype.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoomType, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room types")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count room types")

		return res, fmt.Errorf("failed to count room types: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room types")

		return res, fmt.Errorf("failed to get room types: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room types to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".roomtype.Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRoomType, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count room types")

		return res, fmt.Errorf("failed to count room types: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room type count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomTypeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".roomtype.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRoomType, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room type")

		return res, nil
	}

	roomType, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room type")

		return res, fmt.Errorf("failed to get room type: %w", err)
	}

	if roomType.ID == constant.Empty {
		return res, failure.NotFound("room type not found") // nolint:wrapcheck
	}

	res.FromModel(roomType)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room type to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomTypeRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".roomtype.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room type existence")

		return err
	}

	if current.ID == constant.Empty {
		return failure.NotFound("room type not found") // nolint:wrapcheck
	}

	return s.updateInternal(ctx, req, current, user, filter)
}

func (s *serviceImpl) updateInternal(ctx context.Context, req dto.UpdateRoomTypeRequest, current model.RoomType, user string, filter gDto.FilterGroup) error {
	imageURL, uploadedObjectName, err := s.uploadImage(ctx, req.Image)
	if err != nil {
		return err
	}

	updatedFields := shared.TransformFields(req, user)
	if len(req.Amenities) > 0 {
		updatedFields[model.FieldAmenities] = pq.StringArray(req.Amenities)
	}
	if req.Name != constant.Empty {
		updatedFields[model.FieldSlug] = dto.Slugify(req.Name)
	}
	if imageURL != constant.Empty {
		updatedFields[model.FieldImageURL] = imageURL
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update room type")

		if uploadedObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, model.EntityName, uploadedObjectName)
		}

		return fmt.Errorf("failed to update room type: %w", err)
	}

	if imageURL != constant.Empty && current.ImageURL != constant.Empty {
		oldObjectName := s.s3.GetObjectNameFromURL(current.ImageURL)
		if oldObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, model.EntityName, oldObjectName)
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoomType, current.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete room type cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoomType)
		shared.InvalidateCaches(c, s.cache, cacheCountRoomType)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".roomtype.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room type exists")

		return fmt.Errorf("failed to check if room type exists: %w", err)
	}

	if !exist {
		return failure.NotFound("room type not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete room type")

		return fmt.Errorf("failed to delete room type: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoomType, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete room type from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoomType)
		shared.InvalidateCaches(c, s.cache, cacheCountRoomType)
	}()

	return nil
}

// uploadImage stores a base64 data URI payload and returns its public URL
// together with the stored object name. An empty payload is a no-op.
func (s *serviceImpl) uploadImage(ctx context.Context, image string) (imageURL, objectName string, err error) {
	if image == constant.Empty {
		return constant.Empty, constant.Empty, nil
	}

	contentType := base64.GetContentType(image)
	data, err := base64.Decode(image)
	if err != nil {
		return constant.Empty, constant.Empty, failure.BadRequestFromString("invalid image payload") // nolint:wrapcheck
	}

	fileName := uuid.NewString()
	if ext, ok := contentTypeExtensions[contentType]; ok {
		fileName = fmt.Sprintf("%s.%s", fileName, ext)
	}

	url, err := s.s3.UploadBytes(ctx, model.EntityName, fileName, contentType, data)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload image to S3")

		return constant.Empty, constant.Empty, fmt.Errorf("failed to upload image: %w", err)
	}

	return url, fileName, nil
}
