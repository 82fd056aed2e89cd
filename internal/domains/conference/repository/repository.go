package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"palmera/infras/otel"
	"palmera/infras/postgres"
	"palmera/internal/domains/conference/model"
	"palmera/shared/constant"
	gDto "palmera/shared/dto"
	"palmera/shared/logger"
	gRepo "palmera/shared/repository"
	"time"
)

type Conference interface {
	Insert(ctx context.Context, model model.ConferenceBooking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ConferenceBooking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ConferenceBooking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	FindOverlapping(ctx context.Context, eventDate time.Time, startTime, endTime string) ([]model.ConferenceBooking, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.ConferenceBooking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Conference {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.ConferenceBooking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// FindOverlapping returns the pending/confirmed reservations holding the
// event space on the given day whose half-open [start_time, end_time)
// window intersects the given one. There is one event space, so the
// check is venue wide.
func (repo *repositoryImpl) FindOverlapping(ctx context.Context, eventDate time.Time, startTime, endTime string) ([]model.ConferenceBooking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".conference_booking.FindOverlapping")
	defer scope.End()

	query := `SELECT id, reference, contact_name, contact_email, contact_phone, company,
		event_date, start_time, end_time, attendees, event_type, notes, status,
		created_at, modified_at, created_by, modified_by
	FROM conference_bookings
	WHERE event_date = :event_date
	  AND status IN ('pending', 'confirmed')
	  AND start_time < :end_time
	  AND end_time > :start_time
	ORDER BY start_time ASC`

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"event_date": eventDate,
		"start_time": startTime,
		"end_time":   endTime,
	}

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare overlap query (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	var models []model.ConferenceBooking
	if err := prepare.SelectContext(ctx, &models, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to find overlapping reservations (%s): %w", model.EntityName, err)
	}

	return models, nil
}
