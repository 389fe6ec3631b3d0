package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names backing the five entity families.
const (
	EventsCollection    string = "events"
	AttendeesCollection string = "attendees"
	VenuesCollection    string = "venues"
	BookingsCollection  string = "bookings"
	MediaCollection     string = "multimedia_files"
)

var ErrNotFound = errors.New("document not found")
var ErrInvalidID = errors.New("invalid document id")

// Connect dials the cluster and verifies it is reachable before anyone
// takes a handle on it.
func Connect(ctx context.Context, connString string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connString))
	if err != nil {
		return nil, fmt.Errorf("cannot connect to the db: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("db is not available: %v", err)
	}

	return client, nil
}
