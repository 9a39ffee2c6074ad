package find_available_rooms

import (
	"context"
	"errors"
	"time"

	"github.com/m04kA/SMC-HotelOps/internal/domain"
	"github.com/m04kA/SMC-HotelOps/pkg/metrics"
)

// UseCase use case поиска свободных номеров отеля на период проживания.
// Сначала спрашивает авторитетный источник, при пустом ответе, ошибке или
// таймауте пересчитывает доступность локально по номерам и бронированиям
type UseCase struct {
	availability  AvailabilitySource
	catalog       CatalogSource
	metrics       MetricsRecorder
	lookupTimeout time.Duration
	logger        Logger
}

// NewUseCase создает новый экземпляр use case.
// recorder может быть nil, lookupTimeout <= 0 заменяется на DefaultLookupTimeout
func NewUseCase(
	availability AvailabilitySource,
	catalog CatalogSource,
	recorder MetricsRecorder,
	lookupTimeout time.Duration,
	logger Logger,
) *UseCase {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if lookupTimeout <= 0 {
		lookupTimeout = DefaultLookupTimeout
	}

	return &UseCase{
		availability:  availability,
		catalog:       catalog,
		metrics:       recorder,
		lookupTimeout: lookupTimeout,
		logger:        logger,
	}
}

// primaryOutcome результат обращения к авторитетному источнику:
// либо готовый список номеров, либо необходимость локального пересчёта
type primaryOutcome struct {
	rooms         []domain.Room
	needsFallback bool
	reason        string
}

// Execute выполняет поиск свободных номеров.
// Ошибку возвращает только валидация запроса: недоступность источников
// деградирует до пустого списка
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FindAvailableRooms: hotel=%d, check-in=%s, check-out=%s, guests=%d",
		req.HotelID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat), req.Guests)

	// 1. Валидация входных данных (до любых запросов к источникам)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("FindAvailableRooms: validation failed: %v", err)
		return nil, err
	}

	resp := &Response{
		HotelID:  req.HotelID,
		CheckIn:  domain.ToAPIInstant(req.CheckIn, true),
		CheckOut: domain.ToAPIInstant(req.CheckOut, false),
	}

	// 2. Авторитетный источник
	outcome := uc.queryPrimary(ctx, req.HotelID, resp.CheckIn, resp.CheckOut)
	if !outcome.needsFallback {
		uc.metrics.RecordAvailabilityLookup(metrics.OutcomePrimary)
		uc.logger.Info("FindAvailableRooms: hotel=%d, %d rooms from availability service",
			req.HotelID, len(outcome.rooms))

		resp.Source = SourcePrimary
		resp.Rooms = outcome.rooms
		return resp, nil
	}

	uc.logger.Warn("FindAvailableRooms: hotel=%d, falling back to local computation: %s",
		req.HotelID, outcome.reason)

	// 3. Локальный пересчёт
	window := domain.NewStayWindow(req.CheckIn, req.CheckOut)
	rooms, err := uc.computeLocally(ctx, req.HotelID, window, req.Guests)
	if err != nil {
		uc.metrics.RecordAvailabilityLookup(metrics.OutcomeEmpty)
		uc.logger.Error("FindAvailableRooms: hotel=%d, fallback data unavailable, returning no rooms: %v",
			req.HotelID, err)

		resp.Source = SourceNone
		resp.Rooms = []domain.Room{}
		return resp, nil
	}

	uc.metrics.RecordAvailabilityLookup(metrics.OutcomeFallback)
	uc.logger.Info("FindAvailableRooms: hotel=%d, %d rooms computed locally", req.HotelID, len(rooms))

	resp.Source = SourceFallback
	resp.Rooms = rooms
	return resp, nil
}

// queryPrimary обращается к авторитетному источнику с ограничением ожидания
func (uc *UseCase) queryPrimary(ctx context.Context, hotelID int64, checkIn, checkOut string) primaryOutcome {
	lookupCtx, cancel := context.WithTimeout(ctx, uc.lookupTimeout)
	defer cancel()

	rooms, err := uc.availability.GetAvailableRooms(lookupCtx, hotelID, checkIn, checkOut)
	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(lookupCtx.Err(), context.DeadlineExceeded):
		return primaryOutcome{needsFallback: true, reason: "availability service timed out"}
	case err != nil:
		return primaryOutcome{needsFallback: true, reason: "availability service failed: " + err.Error()}
	case len(rooms) == 0:
		return primaryOutcome{needsFallback: true, reason: "availability service returned no rooms"}
	default:
		return primaryOutcome{rooms: rooms}
	}
}

// computeLocally загружает номера отеля и все бронирования и вычисляет доступность.
// Запросы выполняются последовательно, каждый со своим ограничением ожидания
func (uc *UseCase) computeLocally(
	ctx context.Context,
	hotelID int64,
	window domain.StayWindow,
	guests int,
) ([]domain.Room, error) {
	roomsCtx, cancelRooms := context.WithTimeout(ctx, uc.lookupTimeout)
	defer cancelRooms()

	rooms, err := uc.catalog.GetRoomsByHotel(roomsCtx, hotelID)
	if err != nil {
		return nil, err
	}

	reservationsCtx, cancelReservations := context.WithTimeout(ctx, uc.lookupTimeout)
	defer cancelReservations()

	reservations, err := uc.catalog.GetReservations(reservationsCtx)
	if err != nil {
		return nil, err
	}

	return filterAvailableRooms(roomsOfHotel(rooms, hotelID), reservations, window, guests), nil
}
