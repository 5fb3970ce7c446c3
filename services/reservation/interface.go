package reservation

import (
	"context"

	reservationRepo "labreserve/database/repository/reservation"
	"labreserve/models"

	"go.uber.org/zap"
)

// ReservationService is the server side of the list/append contract.
type ReservationService interface {
	List(ctx context.Context) ([]models.Reservation, error)
	Create(ctx context.Context, r models.Reservation) (*models.Reservation, error)
}

// DefaultReservationService implements ReservationService over a repository with an
// optional list cache.
type DefaultReservationService struct {
	Repo   reservationRepo.ReservationRepository
	Cache  reservationRepo.ListCache
	Logger *zap.Logger
}
