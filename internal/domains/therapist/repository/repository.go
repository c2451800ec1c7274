package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"lotus/infras/otel"
	"lotus/infras/postgres"
	"lotus/internal/domains/therapist/model"
	gDto "lotus/shared/dto"
	gRepo "lotus/shared/repository"
)

type Therapist interface {
	Insert(ctx context.Context, model model.Therapist) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Therapist, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Therapist, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Therapist]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Therapist {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Therapist](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
