package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"lotus/infras/otel"
	"lotus/infras/postgres"
	"lotus/internal/domains/customer/model"
	"lotus/shared/constant"
	gDto "lotus/shared/dto"
	"lotus/shared/logger"
	gRepo "lotus/shared/repository"
	"lotus/shared/timezone"

	"github.com/jmoiron/sqlx"
)

type Customer interface {
	UpsertIdentity(ctx context.Context, model model.Customer) error
	RecordVisitTx(ctx context.Context, sqltx *sqlx.Tx, visit model.Visit) error
	ReverseVisitTx(ctx context.Context, sqltx *sqlx.Tx, phone string, amount int64) error
	BeginTx(ctx context.Context) (*sqlx.Tx, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Customer, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Customer, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Customer]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Customer {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Customer](model.EntityName, model.TableName, model.FieldPhone, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	sqltx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	return sqltx, nil
}

// UpsertIdentity creates the record on first contact or overwrites the
// identity fields on repeat contact. Visit and spend counters are never
// touched here; empty optional fields keep their stored values.
func (repo *repositoryImpl) UpsertIdentity(ctx context.Context, customer model.Customer) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".customer.UpsertIdentity")
	defer scope.End()

	query := `INSERT INTO customers (
			phone, name, channel, total_visits, total_spent,
			last_service_id, last_therapist_id,
			created_at, modified_at, created_by, modified_by
		) VALUES (
			:phone, :name, :channel, 0, 0,
			:last_service_id, :last_therapist_id,
			:created_at, :modified_at, :created_by, :modified_by
		)
		ON CONFLICT (phone) DO UPDATE SET
			name              = EXCLUDED.name,
			channel           = COALESCE(NULLIF(EXCLUDED.channel, ''), customers.channel),
			last_service_id   = COALESCE(NULLIF(EXCLUDED.last_service_id, ''), customers.last_service_id),
			last_therapist_id = COALESCE(NULLIF(EXCLUDED.last_therapist_id, ''), customers.last_therapist_id),
			modified_at       = EXCLUDED.modified_at,
			modified_by       = EXCLUDED.modified_by`

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := repo.db.Write.NamedExecContext(ctx, query, customer)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to upsert customer identity: %w", err)
	}

	return nil
}

// RecordVisitTx applies the completion-time counter deltas: one more visit,
// the final price added to spend, first visit backfilled once.
func (repo *repositoryImpl) RecordVisitTx(ctx context.Context, sqltx *sqlx.Tx, visit model.Visit) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".customer.RecordVisitTx")
	defer scope.End()

	query := `UPDATE customers SET
			total_visits      = total_visits + 1,
			total_spent       = total_spent + :amount,
			first_visit       = COALESCE(first_visit, :visit_at),
			last_visit        = :visit_at,
			last_service_id   = :service_id,
			last_therapist_id = :therapist_id,
			channel           = COALESCE(NULLIF(:channel, ''), channel),
			modified_at       = :modified_at
		WHERE phone = :phone`

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"phone":        visit.Phone,
		"amount":       visit.Amount,
		"visit_at":     visit.VisitAt,
		"service_id":   visit.ServiceID,
		"therapist_id": visit.TherapistID,
		"channel":      visit.Channel,
		"modified_at":  timezone.Now(),
	}

	_, err := sqltx.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to record customer visit: %w", err)
	}

	return nil
}

// ReverseVisitTx rolls the counters back when a completed booking is
// reopened, so a later re-completion does not double count.
func (repo *repositoryImpl) ReverseVisitTx(ctx context.Context, sqltx *sqlx.Tx, phone string, amount int64) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".customer.ReverseVisitTx")
	defer scope.End()

	query := `UPDATE customers SET
			total_visits = GREATEST(total_visits - 1, 0),
			total_spent  = total_spent - :amount,
			modified_at  = :modified_at
		WHERE phone = :phone`

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"phone":       phone,
		"amount":      amount,
		"modified_at": timezone.Now(),
	}

	_, err := sqltx.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to reverse customer visit: %w", err)
	}

	return nil
}
