package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"lotus/infras/otel"
	"lotus/infras/postgres"
	"lotus/internal/domains/booking/model"
	"lotus/shared/constant"
	gDto "lotus/shared/dto"
	"lotus/shared/failure"
	"lotus/shared/logger"
	gRepo "lotus/shared/repository"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// slotRecheckQuery locks the therapist's overlapping rows before the insert.
// Postgres rejects FOR UPDATE combined with aggregates, so it selects plain
// ids and the caller counts rows.
var slotRecheckQuery = fmt.Sprintf(`SELECT id FROM bookings
	WHERE therapist_id = :therapist_id
	AND status IN (%s)
	AND start_time < :end_time
	AND (start_time + duration_min * interval '1 minute') > :start_time
	FOR UPDATE`, occupyingStatusList())

func occupyingStatusList() string {
	statuses := model.OccupyingStatuses()

	quoted := make([]string, len(statuses))
	for i, status := range statuses {
		quoted[i] = "'" + string(status) + "'"
	}

	return strings.Join(quoted, ", ")
}

type Booking interface {
	InsertIfSlotFree(ctx context.Context, model model.Booking) error
	GetOccupyingForTherapist(ctx context.Context, therapistID string, dayStart, dayEnd time.Time) ([]model.Booking, error)
	ReassignCustomerTx(ctx context.Context, sqltx *sqlx.Tx, fromPhone, toPhone, toName string) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	BeginTx(ctx context.Context) (*sqlx.Tx, error)
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

func (repo *repositoryImpl) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	sqltx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	return sqltx, nil
}

// InsertIfSlotFree writes the booking only if its interval is still free for
// the therapist. Availability is read without locks, so the check is repeated
// here inside a transaction; the database exclusion constraint backstops it.
// A taken slot surfaces as a conflict, never as a validation error.
func (repo *repositoryImpl) InsertIfSlotFree(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.InsertIfSlotFree")
	defer scope.End()

	sqltx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := sqltx.Rollback(); rollbackErr != nil {
				logger.ErrorWithStack(rollbackErr)
			}
		}
	}()

	scope.SetAttribute(constant.OtelQueryAttributeKey, slotRecheckQuery)

	args := map[string]any{
		"therapist_id": booking.TherapistID,
		"start_time":   booking.StartTime,
		"end_time":     booking.EndTime(),
	}

	rows, err := sqlx.NamedQueryContext(ctx, sqltx, slotRecheckQuery, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to re-check slot availability: %w", err)
	}

	overlapping := 0
	for rows.Next() {
		overlapping++
	}

	if err = rows.Err(); err != nil {
		rows.Close()
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to read slot re-check result: %w", err)
	}
	rows.Close()

	if overlapping > 0 {
		err = failure.SlotTakenError

		return err
	}

	if err = repo.InsertTx(ctx, sqltx, booking); err != nil {
		err = translateSlotError(err)

		return err
	}

	if err = sqltx.Commit(); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to commit booking insert: %w", err)
	}

	return nil
}

// GetOccupyingForTherapist lists the bookings that still block the
// therapist's calendar within the given day window.
func (repo *repositoryImpl) GetOccupyingForTherapist(ctx context.Context, therapistID string, dayStart, dayEnd time.Time) ([]model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetOccupyingForTherapist")
	defer scope.End()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldTherapistID,
				Operator: gDto.FilterOperatorEq,
				Value:    therapistID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    occupyingStatusValues(),
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "day_start",
				Field:    model.FieldStartTime,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    dayStart,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "day_end",
				Field:    model.FieldStartTime,
				Operator: gDto.FilterOperatorLess,
				Value:    dayEnd,
				Table:    model.TableName,
			},
		},
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldStartTime,
		SortDir: gDto.SortDirAsc,
	}

	return repo.GetAll(ctx, params, filter) //nolint:wrapcheck
}

// ReassignCustomerTx re-points bookings from one contact key to another.
// Re-running it is a no-op for already-moved rows, so a retried merge is safe.
func (repo *repositoryImpl) ReassignCustomerTx(ctx context.Context, sqltx *sqlx.Tx, fromPhone, toPhone, toName string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ReassignCustomerTx")
	defer scope.End()

	query := `UPDATE bookings SET customer_phone = :to_phone, customer_name = :to_name WHERE customer_phone = :from_phone`

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"from_phone": fromPhone,
		"to_phone":   toPhone,
		"to_name":    toName,
	}

	_, err := sqltx.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to reassign bookings: %w", err)
	}

	return nil
}

func occupyingStatusValues() []any {
	statuses := model.OccupyingStatuses()

	values := make([]any, len(statuses))
	for i, status := range statuses {
		values[i] = string(status)
	}

	return values
}

func translateSlotError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeExclusionViolation {
		return failure.SlotTakenError
	}

	return err
}
