package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	repository "github.com/VishalKR1202/ChukGO1/internal/database/postgres"
	"github.com/VishalKR1202/ChukGO1/internal/entity"
)

const (
	stationListLimit   = 20
	stationSearchLimit = 10
)

// StationCache is the optional read-through cache in front of the station
// store. A nil cache disables caching; cache errors always fall back to the
// database.
type StationCache interface {
	Get(ctx context.Context, key string) ([]*entity.Station, error)
	Set(ctx context.Context, key string, stations []*entity.Station) error
}

type trainService struct {
	trainRepo   repository.TrainRepository
	stationRepo repository.StationRepository
	cache       StationCache
	estimator   *AvailabilityEstimator
	now         func() time.Time
}

// NewTrainService creates a new instance of TrainService. cache may be nil.
func NewTrainService(
	trainRepo repository.TrainRepository,
	stationRepo repository.StationRepository,
	cache StationCache,
	estimator *AvailabilityEstimator,
) TrainService {
	return &trainService{
		trainRepo:   trainRepo,
		stationRepo: stationRepo,
		cache:       cache,
		estimator:   estimator,
		now:         time.Now,
	}
}

// SearchTrains resolves both station codes, rejects past dates, and returns
// every train on the route that runs on the requested date, each enriched
// with per-class fare and availability.
func (s *trainService) SearchTrains(ctx context.Context, req *SearchTrainsRequest) ([]*TrainSearchResult, error) {
	from, err := s.stationRepo.GetByCode(ctx, req.From)
	if err != nil {
		return nil, fmt.Errorf("origin: %w", err)
	}

	to, err := s.stationRepo.GetByCode(ctx, req.To)
	if err != nil {
		return nil, fmt.Errorf("destination: %w", err)
	}

	journeyDate, err := entity.ParseCivilDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrInvalidInput, err)
	}

	if journeyDate.Before(entity.CivilToday(s.now())) {
		return nil, entity.ErrPastDate
	}

	trains, err := s.trainRepo.FindByRoute(ctx, from.ID, to.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to search trains: %w", err)
	}

	results := make([]*TrainSearchResult, 0, len(trains))
	for _, train := range trains {
		if !RunsOn(train.RunningDays, journeyDate) {
			continue
		}

		classes := make(map[string]ClassOffering, len(train.Classes))
		for _, class := range train.Classes {
			availability := s.estimator.Estimate(class.TotalSeats)
			classes[class.Code] = ClassOffering{
				Fare:        class.BaseFare,
				Status:      availability.Status,
				Seats:       availability.Seats,
				RACPosition: availability.RACPosition,
				Waitlist:    availability.Waitlist,
			}
		}

		results = append(results, &TrainSearchResult{
			Number:        train.Number,
			Name:          train.Name,
			From:          train.From,
			To:            train.To,
			DepartureTime: train.DepartureTime,
			ArrivalTime:   train.ArrivalTime,
			Duration:      train.Duration,
			DistanceKM:    train.DistanceKM,
			RunningDays:   train.RunningDays,
			TrainStatus:   train.Status,
			JourneyDate:   journeyDate,
			Classes:       classes,
		})
	}

	logrus.WithFields(logrus.Fields{
		"from":    from.Code,
		"to":      to.Code,
		"date":    journeyDate.String(),
		"matches": len(results),
	}).Info("Train search completed")

	return results, nil
}

// ListStations returns up to 10 stations matching the substring
// case-insensitively against code, name and city, or the first 20 stations
// by name when the query is empty.
func (s *trainService) ListStations(ctx context.Context, query string) ([]*entity.Station, error) {
	query = strings.TrimSpace(query)

	cacheKey := "all"
	if query != "" {
		cacheKey = strings.ToLower(query)
	}

	if s.cache != nil {
		stations, err := s.cache.Get(ctx, cacheKey)
		if err == nil {
			return stations, nil
		}
	}

	var (
		stations []*entity.Station
		err      error
	)
	if query == "" {
		stations, err = s.stationRepo.List(ctx, stationListLimit)
	} else {
		stations, err = s.stationRepo.Search(ctx, query, stationSearchLimit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list stations: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, stations); err != nil {
			logrus.Warnf("Failed to cache stations: %v", err)
		}
	}

	return stations, nil
}
