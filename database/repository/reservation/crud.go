package reservationRepo

import (
	"context"
	"time"

	"labreserve/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a reservation and returns it with its assigned ID and creation time.
func (r *mongoReservationRepo) Create(ctx context.Context, res models.Reservation) (*models.Reservation, error) {
	if res.ID == "" {
		res.ID = uuid.New().String()
	}
	res.CreatedAt = time.Now().UTC()

	if _, err := r.coll.InsertOne(ctx, res); err != nil {
		return nil, err
	}
	return &res, nil
}

// List returns every reservation in insertion order.
func (r *mongoReservationRepo) List(ctx context.Context) ([]models.Reservation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reservations := []models.Reservation{}
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}
