package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/booking/model"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/logger"
	gRepo "hotelier/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	WithTx(ctx context.Context, fn func(sqltx *sqlx.Tx) error) error
	FindOverlapping(ctx context.Context, roomID string, checkIn, checkOut time.Time, excludeID string) (model.Booking, error)
	FindOverlappingTx(ctx context.Context, sqltx *sqlx.Tx, roomID string, checkIn, checkOut time.Time, excludeID string) (model.Booking, error)
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

func (repo *repositoryImpl) WithTx(ctx context.Context, fn func(sqltx *sqlx.Tx) error) error {
	return repo.db.WithTx(ctx, fn) //nolint:wrapcheck
}

// Two stays on the same room collide when each begins before the other
// ends: a.check_in < b.check_out AND b.check_in < a.check_out. Touching
// ranges (one checks out the day the other checks in) do not collide.
// The WHERE clause mirrors model.Booking.ConflictsWith; the earliest
// conflicting booking is returned so callers can report its dates.
const overlapQuery = `SELECT id, room_id, customer_id, check_in, check_out
	FROM bookings
	WHERE room_id = $1
	  AND check_in < $3
	  AND check_out > $2
	  AND ($4 = '' OR id <> $4::uuid)
	ORDER BY check_in
	LIMIT 1`

// FindOverlapping returns the earliest booking colliding with the stay
// [checkIn, checkOut) on roomID, or a zero Booking when the room is free.
func (repo *repositoryImpl) FindOverlapping(ctx context.Context, roomID string, checkIn, checkOut time.Time, excludeID string) (model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".FindOverlapping")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, overlapQuery)

	var conflict model.Booking

	err := repo.db.Read.GetContext(ctx, &conflict, overlapQuery, roomID, checkIn, checkOut, excludeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Booking{}, nil
		}

		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model.Booking{}, fmt.Errorf("failed to check overlapping bookings: %w", err)
	}

	return conflict, nil
}

func (repo *repositoryImpl) FindOverlappingTx(ctx context.Context, sqltx *sqlx.Tx, roomID string, checkIn, checkOut time.Time, excludeID string) (model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".FindOverlappingTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, overlapQuery)

	var conflict model.Booking

	err := sqltx.GetContext(ctx, &conflict, overlapQuery, roomID, checkIn, checkOut, excludeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Booking{}, nil
		}

		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model.Booking{}, fmt.Errorf("failed to check overlapping bookings: %w", err)
	}

	return conflict, nil
}
