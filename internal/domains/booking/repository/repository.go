package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"palmera/infras/otel"
	"palmera/infras/postgres"
	"palmera/internal/domains/booking/model"
	"palmera/shared/constant"
	gDto "palmera/shared/dto"
	"palmera/shared/logger"
	gRepo "palmera/shared/repository"
	"time"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	FindOverlapping(ctx context.Context, guestEmail, roomTypeID string, checkIn, checkOut time.Time) ([]model.Booking, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// FindOverlapping returns the guest's pending/confirmed bookings for the
// room type whose half-open [check_in, check_out) range intersects the
// given one. Back-to-back stays do not match.
func (repo *repositoryImpl) FindOverlapping(ctx context.Context, guestEmail, roomTypeID string, checkIn, checkOut time.Time) ([]model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.FindOverlapping")
	defer scope.End()

	query := `SELECT id, reference, room_type_id, guest_name, guest_email, guest_phone,
		check_in, check_out, adults, children, total_price, special_requests,
		status, payment_session_id, payment_status,
		created_at, modified_at, created_by, modified_by
	FROM bookings
	WHERE LOWER(guest_email) = LOWER(:guest_email)
	  AND room_type_id = :room_type_id
	  AND status IN ('pending', 'confirmed')
	  AND check_in < :check_out
	  AND check_out > :check_in
	ORDER BY check_in ASC`

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"guest_email":  guestEmail,
		"room_type_id": roomTypeID,
		"check_in":     checkIn,
		"check_out":    checkOut,
	}

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	var bookings []model.Booking

	if err = prepare.SelectContext(ctx, &bookings, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to find overlapping bookings: %w", err)
	}

	return bookings, nil
}
