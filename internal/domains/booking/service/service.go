package service

import (
	"context"
	"fmt"
	"time"

	"hotelier/config"
	"hotelier/infras/kafka"
	"hotelier/infras/otel"
	"hotelier/internal/domains/booking/model"
	"hotelier/internal/domains/booking/model/dto"
	"hotelier/internal/domains/booking/repository"
	customerModel "hotelier/internal/domains/customer/model"
	customerRepo "hotelier/internal/domains/customer/repository"
	roomModel "hotelier/internal/domains/room/model"
	roomRepo "hotelier/internal/domains/room/repository"
	"hotelier/shared"
	"hotelier/shared/cache"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (string, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	Delete(ctx context.Context, id string) error
	CheckAvailability(ctx context.Context, roomID, checkIn, checkOut string) (dto.AvailabilityResponse, error)
}

type serviceImpl struct {
	repo         repository.Booking
	roomRepo     roomRepo.Room
	customerRepo customerRepo.Customer
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	broker       kafka.Client
}

func New(repo repository.Booking, roomRepo roomRepo.Room, customerRepo customerRepo.Customer, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, broker kafka.Client) Booking {
	return &serviceImpl{
		repo:         repo,
		roomRepo:     roomRepo,
		customerRepo: customerRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		broker:       broker,
	}
}

// Create books a room for a customer. The overlap check and the insert run
// in one transaction holding a row lock on the room, so two concurrent
// requests for the same room serialize and the loser sees the winner's
// booking.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := req.ToModel(user)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return constant.Empty, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if err = validateStay(booking.CheckIn, booking.CheckOut); err != nil {
		return constant.Empty, err
	}

	customerExists, err := s.customerRepo.Exist(ctx, shared.FilterByID(booking.CustomerID, customerModel.FieldID, customerModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if customer exists")

		return constant.Empty, fmt.Errorf("failed to check if customer exists: %w", err)
	}

	if !customerExists {
		return constant.Empty, failure.BadRequestFromString("customer does not exist") // nolint:wrapcheck
	}

	var lockedRoom roomModel.Room

	err = s.repo.WithTx(ctx, func(sqltx *sqlx.Tx) error {
		room, err := s.roomRepo.LockTx(ctx, sqltx, booking.RoomID)
		if err != nil {
			return err
		}

		if room.ID == constant.Empty {
			return failure.BadRequestFromString("room does not exist") // nolint:wrapcheck
		}

		lockedRoom = room

		conflict, err := s.repo.FindOverlappingTx(ctx, sqltx, booking.RoomID, booking.CheckIn, booking.CheckOut, constant.Empty)
		if err != nil {
			return err
		}

		if conflict.ID != constant.Empty {
			return conflictFailure(room.Number, conflict)
		}

		return s.repo.InsertTx(ctx, sqltx, booking)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return constant.Empty, asBookingFailure(err, lockedRoom.Number, booking)
	}

	s.publishEvent(ctx, dto.BookingEventCreated, booking)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return booking.ID, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
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
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

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
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
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

// Update moves or re-dates a booking. The overlap check re-runs against the
// requested room and stay while excluding the booking itself, so an update
// that keeps its own dates never conflicts with itself.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateBookingRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if current.ID == constant.Empty {
		log.Error().Msg("booking not found")

		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	updated, err := applyUpdate(current, req)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking update request")

		return failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if err = validateStay(updated.CheckIn, updated.CheckOut); err != nil {
		return err
	}

	if req.Customer != constant.Empty && req.Customer != current.CustomerID {
		customerExists, err := s.customerRepo.Exist(ctx, shared.FilterByID(updated.CustomerID, customerModel.FieldID, customerModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if customer exists")

			return fmt.Errorf("failed to check if customer exists: %w", err)
		}

		if !customerExists {
			return failure.BadRequestFromString("customer does not exist") // nolint:wrapcheck
		}
	}

	updatedFields := shared.TransformFields(req, user)
	updatedFields[model.FieldCheckIn] = updated.CheckIn
	updatedFields[model.FieldCheckOut] = updated.CheckOut

	var lockedRoom roomModel.Room

	err = s.repo.WithTx(ctx, func(sqltx *sqlx.Tx) error {
		room, err := s.roomRepo.LockTx(ctx, sqltx, updated.RoomID)
		if err != nil {
			return err
		}

		if room.ID == constant.Empty {
			return failure.BadRequestFromString("room does not exist") // nolint:wrapcheck
		}

		lockedRoom = room

		conflict, err := s.repo.FindOverlappingTx(ctx, sqltx, updated.RoomID, updated.CheckIn, updated.CheckOut, current.ID)
		if err != nil {
			return err
		}

		if conflict.ID != constant.Empty {
			return conflictFailure(room.Number, conflict)
		}

		return s.repo.UpdateTx(ctx, sqltx, updatedFields, filter)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return asBookingFailure(err, lockedRoom.Number, updated)
	}

	s.publishEvent(ctx, dto.BookingEventUpdated, updated)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		log.Error().Msg("booking not found")

		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.publishEvent(ctx, dto.BookingEventCancelled, booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return nil
}

// CheckAvailability reports whether a room is free for the requested stay.
// The answer is advisory, only Create gives the transactional guarantee.
func (s *serviceImpl) CheckAvailability(ctx context.Context, roomID, checkIn, checkOut string) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	in, err := time.Parse(constant.DayFormat, checkIn)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid check_in date: %v", err)) // nolint:wrapcheck
	}

	out, err := time.Parse(constant.DayFormat, checkOut)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid check_out date: %v", err)) // nolint:wrapcheck
	}

	if err = validateStay(in, out); err != nil {
		return res, err
	}

	roomExists, err := s.roomRepo.Exist(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return res, fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !roomExists {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	conflict, err := s.repo.FindOverlapping(ctx, roomID, in, out, constant.Empty)
	if err != nil {
		log.Error().Err(err).Msg("failed to check overlapping bookings")

		return res, fmt.Errorf("failed to check overlapping bookings: %w", err)
	}

	res = dto.AvailabilityResponse{
		RoomID:    roomID,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Available: conflict.ID == constant.Empty,
	}

	if conflict.ID != constant.Empty {
		res.Conflict = dto.NewStayRange(conflict)
	}

	return res, nil
}

func applyUpdate(current model.Booking, req dto.UpdateBookingRequest) (model.Booking, error) {
	updated := current

	if req.Room != constant.Empty {
		updated.RoomID = req.Room
	}

	if req.Customer != constant.Empty {
		updated.CustomerID = req.Customer
	}

	if req.CheckIn != constant.Empty {
		checkIn, err := time.Parse(constant.DayFormat, req.CheckIn)
		if err != nil {
			return updated, err
		}

		updated.CheckIn = checkIn
	}

	if req.CheckOut != constant.Empty {
		checkOut, err := time.Parse(constant.DayFormat, req.CheckOut)
		if err != nil {
			return updated, err
		}

		updated.CheckOut = checkOut
	}

	return updated, nil
}

func (s *serviceImpl) publishEvent(ctx context.Context, event string, booking model.Booking) {
	if !s.cfg.Kafka.Enable || s.broker == nil {
		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{
			Key:   booking.ID,
			Value: dto.NewBookingEvent(event, booking),
		}

		if err := s.broker.SendMessages(c, s.cfg.Kafka.BookingTopic, message); err != nil {
			log.Error().Err(err).Str("event", event).Str("booking_id", booking.ID).Msg("failed to publish booking event")
		}
	}()
}
