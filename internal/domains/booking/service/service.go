package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"palmera/config"
	"palmera/infras/kafka"
	"palmera/infras/otel"
	"palmera/infras/paygate"
	auditModel "palmera/internal/domains/audit/model"
	auditRepo "palmera/internal/domains/audit/repository"
	"palmera/internal/domains/booking/model"
	"palmera/internal/domains/booking/model/dto"
	"palmera/internal/domains/booking/repository"
	"palmera/internal/domains/notification"
	roomTypeModel "palmera/internal/domains/roomtype/model"
	roomTypeRepo "palmera/internal/domains/roomtype/repository"
	"palmera/shared"
	"palmera/shared/cache"
	"palmera/shared/constant"
	gDto "palmera/shared/dto"
	"palmera/shared/failure"
	"palmera/shared/timezone"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	eventBookingCreated   = "booking.created"
	eventBookingConfirmed = "booking.confirmed"
	eventBookingCancelled = "booking.cancelled"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) error
	BulkUpdateStatus(ctx context.Context, req dto.BulkStatusRequest) (dto.BulkStatusResponse, error)
	CancelOwn(ctx context.Context, id string) error
	FindDuplicates(ctx context.Context) (dto.DuplicateClustersResponse, error)
	ReconcilePayment(ctx context.Context, req dto.ReconcilePaymentRequest) (dto.ReconcilePaymentResponse, error)
}

type serviceImpl struct {
	repo         repository.Booking
	roomTypeRepo roomTypeRepo.RoomType
	auditRepo    auditRepo.Audit
	dispatcher   notification.Dispatcher
	gateway      paygate.Gateway
	publisher    kafka.Publisher
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	roomTypeRepo roomTypeRepo.RoomType,
	auditRepo auditRepo.Audit,
	dispatcher notification.Dispatcher,
	gateway paygate.Gateway,
	publisher kafka.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		roomTypeRepo: roomTypeRepo,
		auditRepo:    auditRepo,
		dispatcher:   dispatcher,
		gateway:      gateway,
		publisher:    publisher,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// Create validates the request, rejects overlapping stays for the same
// guest and room type, persists the booking, and fires the confirmation
// emails, audit entry, and booking.created event off the request path.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := req.ToModel(user)
	if err != nil {
		return res, err
	}

	exist, err := s.roomTypeRepo.Exist(ctx, shared.FilterByID(booking.RoomTypeID, roomTypeModel.FieldID, roomTypeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check room type existence")

		return res, fmt.Errorf("failed to check room type existence: %w", err)
	}

	if !exist {
		return res, failure.NotFound("room type not found") // nolint:wrapcheck
	}

	conflicts, err := s.repo.FindOverlapping(ctx, booking.GuestEmail, booking.RoomTypeID, booking.CheckIn, booking.CheckOut)
	if err != nil {
		log.Error().Err(err).Msg("failed to check for overlapping bookings")

		return res, fmt.Errorf("failed to check for overlapping bookings: %w", err)
	}

	if len(conflicts) > 0 {
		return res, duplicateFailure(conflicts[0])
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		// Concurrent inserts can slip past the overlap query; the
		// exclusion constraint reports those as the same duplicate.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeExclusionViolation {
			return res, s.duplicateFromConstraint(ctx, booking)
		}

		log.Error().Err(err).Msg("failed to insert booking")

		return res, fmt.Errorf("failed to insert booking: %w", err)
	}

	s.afterWrite(ctx, booking, auditModel.OperationInsert, user, eventBookingCreated, true)

	res.ID = booking.ID
	res.Reference = booking.Reference

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// UpdateStatus sets a booking to any of the four states without guarding
// the transition; operators use it to repair bookings by hand.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if err = s.updateStatus(ctx, booking, req.Status, user); err != nil {
		return err
	}

	return nil
}

// BulkUpdateStatus applies the status to every id independently; a
// missing or failing id is reported in its result row and never aborts
// the rest of the batch.
func (s *serviceImpl) BulkUpdateStatus(ctx context.Context, req dto.BulkStatusRequest) (res dto.BulkStatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.BulkUpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	res.Results = make([]dto.BulkStatusResult, 0, len(req.IDs))
	for _, id := range req.IDs {
		result := dto.BulkStatusResult{ID: id}

		booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
		switch {
		case err != nil:
			log.Error().Err(err).Str("id", id).Msg("failed to get booking for bulk update")
			result.Error = "failed to get booking"
		case booking.ID == constant.Empty:
			result.Error = "booking not found"
		default:
			if err := s.updateStatus(ctx, booking, req.Status, user); err != nil {
				log.Error().Err(err).Str("id", id).Msg("failed to update booking status in bulk")
				result.Error = "failed to update booking"
			} else {
				result.Updated = true
			}
		}

		if result.Updated {
			res.Updated++
		} else {
			res.Failed++
		}

		res.Results = append(res.Results, result)
	}

	return res, nil
}

// CancelOwn cancels a booking on behalf of the signed-in guest. Only the
// booking's own guest may cancel it this way.
func (s *serviceImpl) CancelOwn(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.CancelOwn")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	email, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if !strings.EqualFold(booking.GuestEmail, email) {
		return failure.Forbidden("booking belongs to another guest") // nolint:wrapcheck
	}

	if booking.Status == model.StatusCancelled {
		return nil
	}

	return s.updateStatus(ctx, booking, model.StatusCancelled, user)
}

// FindDuplicates groups active bookings sharing guest email and exact
// stay dates, reporting every cluster with more than one member.
func (s *serviceImpl) FindDuplicates(ctx context.Context) (res dto.DuplicateClustersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.FindDuplicates")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    model.ActiveStatuses(),
				Operator: gDto.FilterOperatorIn,
				Table:    model.TableName,
			},
		},
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldCheckIn,
		SortDir: gDto.SortDirAsc,
	}

	bookings, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get active bookings")

		return res, fmt.Errorf("failed to get active bookings: %w", err)
	}

	clusters := map[string][]model.Booking{}
	for _, b := range bookings {
		key := strings.Join([]string{
			strings.ToLower(b.GuestEmail),
			b.CheckIn.Format(constant.DateOnlyFormat),
			b.CheckOut.Format(constant.DateOnlyFormat),
		}, "|")
		clusters[key] = append(clusters[key], b)
	}

	keys := make([]string, 0, len(clusters))
	for key, members := range clusters {
		if len(members) > 1 {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	res.Clusters = make([]dto.DuplicateCluster, 0, len(keys))
	for _, key := range keys {
		members := clusters[key]
		cluster := dto.DuplicateCluster{
			GuestEmail: members[0].GuestEmail,
			CheckIn:    members[0].CheckIn.Format(constant.DateOnlyFormat),
			CheckOut:   members[0].CheckOut.Format(constant.DateOnlyFormat),
			Bookings:   make([]dto.BookingResponse, len(members)),
		}
		for i, m := range members {
			cluster.Bookings[i].FromModel(m)
		}

		res.Clusters = append(res.Clusters, cluster)
	}

	return res, nil
}

// ReconcilePayment re-reads the checkout session from the payment
// processor and confirms the matching booking when the session is paid.
// Re-running it against an already confirmed booking changes nothing.
func (s *serviceImpl) ReconcilePayment(ctx context.Context, req dto.ReconcilePaymentRequest) (res dto.ReconcilePaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ReconcilePayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	session, err := s.gateway.VerifySession(ctx, req.SessionID)
	if err != nil {
		log.Error().Err(err).Str("sessionID", req.SessionID).Msg("failed to verify checkout session")

		return res, failure.Upstream("payment processor unavailable") // nolint:wrapcheck
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldPaymentSessionID,
				Value:    req.SessionID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking by payment session")

		return res, fmt.Errorf("failed to get booking by payment session: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("no booking for this checkout session") // nolint:wrapcheck
	}

	res.Status = session.RawStatus

	if !session.Paid {
		return res, nil
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if booking.Status == model.StatusConfirmed && booking.PaymentStatus.String == model.PaymentStatusPaid {
		res.BookingConfirmed = true

		return res, nil
	}

	updatedFields := map[string]any{
		model.FieldStatus:        model.StatusConfirmed,
		model.FieldPaymentStatus: model.PaymentStatusPaid,
	}
	stampModified(updatedFields, user)

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to confirm booking after payment")

		return res, fmt.Errorf("failed to confirm booking after payment: %w", err)
	}

	booking.Status = model.StatusConfirmed
	s.afterWrite(ctx, booking, auditModel.OperationUpdate, user, eventBookingConfirmed, true)

	res.BookingConfirmed = true

	return res, nil
}

func (s *serviceImpl) updateStatus(ctx context.Context, booking model.Booking, status, user string) error {
	updatedFields := map[string]any{
		model.FieldStatus: status,
	}
	stampModified(updatedFields, user)

	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	booking.Status = status

	event := constant.Empty
	switch status {
	case model.StatusConfirmed:
		event = eventBookingConfirmed
	case model.StatusCancelled:
		event = eventBookingCancelled
	}

	s.afterWrite(ctx, booking, auditModel.OperationUpdate, user, event, false)

	return nil
}

// afterWrite runs the side effects of a successful write off the request
// path: emails (creation only), the audit entry, the domain event, and
// cache invalidation. Failures here are logged and never surfaced.
func (s *serviceImpl) afterWrite(ctx context.Context, booking model.Booking, operation, actor, event string, notify bool) {
	go func() {
		c := context.WithoutCancel(ctx)

		if notify {
			if err := s.dispatcher.NotifyGuestConfirmation(c, booking); err != nil {
				log.Error().Err(err).Str("reference", booking.Reference).Msg("failed to send guest confirmation email")
			}

			if err := s.dispatcher.NotifyStaffAlert(c, booking); err != nil {
				log.Error().Err(err).Str("reference", booking.Reference).Msg("failed to send staff alert email")
			}
		}

		if err := s.auditRepo.Insert(c, auditModel.NewEntry(model.TableName, operation, actor, booking)); err != nil {
			log.Error().Err(err).Str("reference", booking.Reference).Msg("failed to write audit entry")
		}

		if event != constant.Empty {
			message := kafka.Message{Key: booking.ID, Value: map[string]any{
				"event":     event,
				"id":        booking.ID,
				"reference": booking.Reference,
				"status":    booking.Status,
			}}
			if err := s.publisher.Publish(c, s.cfg.Kafka.BookingTopic, message); err != nil {
				log.Error().Err(err).Str("reference", booking.Reference).Msg("failed to publish booking event")
			}
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, booking.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

// duplicateFromConstraint resolves the booking that tripped the
// exclusion constraint so the rejection carries the same payload as the
// pre-insert check.
func (s *serviceImpl) duplicateFromConstraint(ctx context.Context, booking model.Booking) error {
	conflicts, err := s.repo.FindOverlapping(ctx, booking.GuestEmail, booking.RoomTypeID, booking.CheckIn, booking.CheckOut)
	if err != nil || len(conflicts) == 0 {
		return failure.Conflict("an overlapping booking for these dates already exists") // nolint:wrapcheck
	}

	return duplicateFailure(conflicts[0])
}

func duplicateFailure(conflict model.Booking) error {
	var details dto.ConflictingBooking
	details.FromModel(conflict)

	return failure.ConflictWithDetails("an overlapping booking for these dates already exists", details) // nolint:wrapcheck
}

func stampModified(fields map[string]any, user string) {
	fields[constant.FieldModifiedAt] = timezone.Now()
	fields[constant.FieldModifiedBy] = user
}
