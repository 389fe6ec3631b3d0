package main

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"event-webapp/config"
	"event-webapp/database"
	"event-webapp/handlers"
	"event-webapp/router"
)

func main() {
	config.LoadEnv()
	log := config.NewLogger()

	connString, err := config.GetSecret("MONGODB_CONNSTRING")
	if err != nil {
		log.Fatal().Msg("cannot find connection string for DB in the environment")
	}

	client, err := database.Connect(context.Background(), connString)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer client.Disconnect(context.Background())

	db := client.Database(config.GetDatabaseName())
	blobs, err := database.NewBlobStore(db)
	if err != nil {
		log.Fatal().Err(err).Msg("blob store initialization failed")
	}

	h := handlers.New(
		database.NewCollection(db.Collection(database.EventsCollection)),
		database.NewCollection(db.Collection(database.AttendeesCollection)),
		database.NewCollection(db.Collection(database.VenuesCollection)),
		database.NewCollection(db.Collection(database.BookingsCollection)),
		database.NewCollection(db.Collection(database.MediaCollection)),
		blobs,
		log,
	)

	app := fiber.New()
	router.SetupRoutes(app, h, log)

	addr := config.GetListenAddr()
	log.Info().Str("addr", addr).Msg("starting server")
	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
