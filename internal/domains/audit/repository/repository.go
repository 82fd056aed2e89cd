package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"palmera/infras/otel"
	"palmera/infras/postgres"
	"palmera/internal/domains/audit/model"
	gDto "palmera/shared/dto"
	gRepo "palmera/shared/repository"
)

type Audit interface {
	Insert(ctx context.Context, model model.AuditLog) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.AuditLog, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.AuditLog]
}

func New(db *postgres.Connection, otel otel.Otel) Audit {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.AuditLog](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
