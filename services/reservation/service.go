package reservation

import (
	"context"
	"errors"
	"fmt"

	reservationRepo "labreserve/database/repository/reservation"
	"labreserve/models"

	"go.uber.org/zap"
)

func (s *DefaultReservationService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// List returns all reservations in insertion order, from the cache when it holds them.
// A freshly read list is cached only if no Create invalidated the cache meanwhile.
func (s *DefaultReservationService) List(ctx context.Context) ([]models.Reservation, error) {
	var (
		gen    int64
		genErr error
	)
	if s.Cache != nil {
		list, err := s.Cache.Get(ctx)
		if err == nil {
			return list, nil
		}
		if !errors.Is(err, reservationRepo.ErrCacheMiss) {
			s.logger().Warn("Reservation cache read failed", zap.Error(err))
		}
		// Read before the repo so a concurrent Create is seen as a newer generation.
		gen, genErr = s.Cache.Generation(ctx)
		if genErr != nil {
			s.logger().Warn("Reservation cache generation read failed", zap.Error(genErr))
		}
	}

	list, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}

	if s.Cache != nil && genErr == nil {
		err := s.Cache.Set(ctx, gen, list)
		switch {
		case errors.Is(err, reservationRepo.ErrStaleGeneration):
			s.logger().Debug("Skipped caching a stale reservation list", zap.Int64("generation", gen))
		case err != nil:
			s.logger().Warn("Reservation cache write failed", zap.Error(err))
		}
	}
	return list, nil
}

// Create validates and stores r, then drops the cached list.
func (s *DefaultReservationService) Create(ctx context.Context, r models.Reservation) (*models.Reservation, error) {
	// The ID is always assigned by the store.
	r.ID = ""
	if err := validateReservation(r); err != nil {
		return nil, err
	}

	saved, err := s.Repo.Create(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("failed to store reservation: %w", err)
	}

	if s.Cache != nil {
		if err := s.Cache.Invalidate(ctx); err != nil {
			s.logger().Warn("Reservation cache invalidation failed", zap.Error(err))
		}
	}

	s.logger().Info("Reservation stored",
		zap.String("id", saved.ID),
		zap.String("date", saved.Date),
		zap.String("equipment", saved.Equipment),
	)
	return saved, nil
}
