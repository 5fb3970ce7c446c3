// File: database/repository/reservation/interface.go
package reservationRepo

import (
	"context"

	"labreserve/database"
	"labreserve/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ReservationRepository is the append/list persistence of reservations.
type ReservationRepository interface {
	Create(ctx context.Context, r models.Reservation) (*models.Reservation, error)
	List(ctx context.Context) ([]models.Reservation, error)
}

type mongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo returns a ReservationRepository on the global MongoDB client.
func NewMongoReservationRepo() ReservationRepository {
	return NewMongoReservationRepoFor(database.Database())
}

// NewMongoReservationRepoFor returns a ReservationRepository on db.
func NewMongoReservationRepoFor(db *mongo.Database) ReservationRepository {
	return &mongoReservationRepo{
		coll: db.Collection("reservations"),
	}
}
