package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"palmera/config"
	"palmera/infras/kafka"
	"palmera/infras/otel"
	auditModel "palmera/internal/domains/audit/model"
	auditRepo "palmera/internal/domains/audit/repository"
	"palmera/internal/domains/conference/model"
	"palmera/internal/domains/conference/model/dto"
	"palmera/internal/domains/conference/repository"
	"palmera/shared"
	"palmera/shared/cache"
	"palmera/shared/constant"
	gDto "palmera/shared/dto"
	"palmera/shared/failure"
	"palmera/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetConference    = "conference:get"
	cacheGetAllConference = "conference:gets"
	cacheCountConference  = "conference:count"

	eventConferenceCreated   = "conference.created"
	eventConferenceConfirmed = "conference.confirmed"
	eventConferenceCancelled = "conference.cancelled"
)

type Conference interface {
	Create(ctx context.Context, req dto.CreateConferenceBookingRequest) (dto.CreateConferenceBookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetConferenceBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ConferenceBookingResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) error
}

type serviceImpl struct {
	repo      repository.Conference
	auditRepo auditRepo.Audit
	publisher kafka.Publisher
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	repo repository.Conference,
	auditRepo auditRepo.Audit,
	publisher kafka.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Conference {
	return &serviceImpl{
		repo:      repo,
		auditRepo: auditRepo,
		publisher: publisher,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

// Create reserves the event space after checking the requested window
// against every active reservation on that day.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateConferenceBookingRequest) (res dto.CreateConferenceBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".conference.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	reservation, err := req.ToModel(user)
	if err != nil {
		return res, err
	}

	conflicts, err := s.repo.FindOverlapping(ctx, reservation.EventDate, reservation.StartTime, reservation.EndTime)
	if err != nil {
		log.Error().Err(err).Msg("failed to check for overlapping reservations")

		return res, fmt.Errorf("failed to check for overlapping reservations: %w", err)
	}

	if len(conflicts) > 0 {
		var details dto.ConflictingEvent
		details.FromModel(conflicts[0])

		return res, failure.ConflictWithDetails("the event space is already reserved for this time window", details) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, reservation); err != nil {
		log.Error().Err(err).Msg("failed to insert conference booking")

		return res, fmt.Errorf("failed to insert conference booking: %w", err)
	}

	s.afterWrite(ctx, reservation, auditModel.OperationInsert, user, eventConferenceCreated)

	res.ID = reservation.ID
	res.Reference = reservation.Reference

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetConferenceBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".conference.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllConference, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for conference bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count conference bookings")

		return res, fmt.Errorf("failed to count conference bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get conference bookings")

		return res, fmt.Errorf("failed to get conference bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save conference bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".conference.Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountConference, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count conference bookings")

		return res, fmt.Errorf("failed to count conference bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save conference booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ConferenceBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".conference.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetConference, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for conference booking")

		return res, nil
	}

	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get conference booking")

		return res, fmt.Errorf("failed to get conference booking: %w", err)
	}

	if reservation.ID == constant.Empty {
		return res, failure.NotFound("conference booking not found") // nolint:wrapcheck
	}

	res.FromModel(reservation)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save conference booking to cache")
		}
	}()

	return res, nil
}

// UpdateStatus sets a reservation to any of the four states without
// guarding the transition.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".conference.UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	reservation, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get conference booking")

		return fmt.Errorf("failed to get conference booking: %w", err)
	}

	if reservation.ID == constant.Empty {
		return failure.NotFound("conference booking not found") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update conference booking status")

		return fmt.Errorf("failed to update conference booking status: %w", err)
	}

	reservation.Status = req.Status

	event := constant.Empty
	switch req.Status {
	case model.StatusConfirmed:
		event = eventConferenceConfirmed
	case model.StatusCancelled:
		event = eventConferenceCancelled
	}

	s.afterWrite(ctx, reservation, auditModel.OperationUpdate, user, event)

	return nil
}

// afterWrite runs the audit entry, the domain event, and cache
// invalidation off the request path. Failures are logged only.
func (s *serviceImpl) afterWrite(ctx context.Context, reservation model.ConferenceBooking, operation, actor, event string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.auditRepo.Insert(c, auditModel.NewEntry(model.TableName, operation, actor, reservation)); err != nil {
			log.Error().Err(err).Str("reference", reservation.Reference).Msg("failed to write audit entry")
		}

		if event != constant.Empty {
			message := kafka.Message{Key: reservation.ID, Value: map[string]any{
				"event":     event,
				"id":        reservation.ID,
				"reference": reservation.Reference,
				"status":    reservation.Status,
			}}
			if err := s.publisher.Publish(c, s.cfg.Kafka.BookingTopic, message); err != nil {
				log.Error().Err(err).Str("reference", reservation.Reference).Msg("failed to publish conference event")
			}
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetConference, reservation.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete conference booking cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllConference)
		shared.InvalidateCaches(c, s.cache, cacheCountConference)
	}()
}
