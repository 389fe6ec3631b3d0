package router

import (
	"event-webapp/handlers"
	"event-webapp/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

func SetupRoutes(app *fiber.App, h *handlers.Handler, log zerolog.Logger) {
	api := app.Group("/", middleware.RequestLogger(log))

	//Events
	events := api.Group("/events")
	events.Get("/", h.GetEvents)
	events.Post("/", h.CreateEvent)
	events.Get("/:id", h.GetEvent)
	events.Put("/:id", h.UpdateEvent)
	events.Patch("/:id", h.UpdateEvent)
	events.Delete("/:id", h.DeleteEvent)

	//Attendees
	attendees := api.Group("/attendees")
	attendees.Get("/", h.GetAttendees)
	attendees.Post("/", h.CreateAttendee)
	attendees.Get("/:id", h.GetAttendee)
	attendees.Put("/:id", h.UpdateAttendee)
	attendees.Patch("/:id", h.UpdateAttendee)
	attendees.Delete("/:id", h.DeleteAttendee)

	//Venues
	venues := api.Group("/venues")
	venues.Get("/", h.GetVenues)
	venues.Post("/", h.CreateVenue)
	venues.Get("/:id", h.GetVenue)
	venues.Put("/:id", h.UpdateVenue)
	venues.Patch("/:id", h.UpdateVenue)
	venues.Delete("/:id", h.DeleteVenue)

	//Bookings
	bookings := api.Group("/bookings")
	bookings.Get("/", h.GetBookings)
	bookings.Post("/", h.CreateBooking)
	bookings.Get("/:id", h.GetBooking)
	bookings.Put("/:id", h.UpdateBooking)
	bookings.Patch("/:id", h.UpdateBooking)
	bookings.Delete("/:id", h.DeleteBooking)

	//Multimedia
	api.Post("/upload_event_poster/:id", h.UploadEventPoster)
	api.Get("/download_event_poster/:id", h.DownloadEventPoster)
	api.Post("/upload_promo_video/:id", h.UploadPromoVideo)
	api.Get("/download_promo_video/:id", h.DownloadPromoVideo)
	api.Post("/upload_venue_photo/:id", h.UploadVenuePhoto)
	api.Get("/download_venue_photo/:id", h.DownloadVenuePhoto)
}
