package handlers

import (
	"fmt"

	"event-webapp/errors"
	"event-webapp/model"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (h *Handler) GetBookings(c *fiber.Ctx) error {
	bookings := []model.Booking{}
	if err := h.Bookings.FindAll(c.Context(), &bookings); err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}
	return jsonOut(c, bookings)
}

func (h *Handler) GetBooking(c *fiber.Ctx) error {
	booking := model.Booking{}
	if err := h.Bookings.FindByID(c.Context(), c.Params("id"), &booking); err != nil {
		return h.raiseStoreError(c, err, "booking", c.Params("id"))
	}
	return jsonOut(c, booking)
}

func (h *Handler) CreateBooking(c *fiber.Ctx) error {
	newBooking := new(model.Booking)
	if err := c.BodyParser(newBooking); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable booking parameters: %v", err))
	}

	if err := rejectUnsafeBody(c.Body()); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprint(err))
	}
	if err := h.validate.Struct(newBooking); err != nil {
		return errors.RaiseValidationError(c, validationMessage(err))
	}

	// Bookings must point at live documents on both sides.
	if err := h.checkBookingRefs(c, newBooking.EventId, newBooking.AttendeeId); err != nil {
		return err
	}

	newBooking.Id = primitive.NewObjectID()
	if _, err := h.Bookings.InsertOne(c.Context(), newBooking); err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}

	return jsonOut(c, newBooking)
}

func (h *Handler) UpdateBooking(c *fiber.Ctx) error {
	fields, err := parsePartial(c.Body(), model.BookingFields)
	if err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable booking parameters: %v", err))
	}
	if len(fields) == 0 {
		return errors.RaiseValidationError(c, "no updatable fields in payload")
	}

	updated := model.Booking{}
	if err := h.Bookings.FindByID(c.Context(), c.Params("id"), &updated); err != nil {
		return h.raiseStoreError(c, err, "booking", c.Params("id"))
	}
	if err := h.mergePatch(&updated, fields); err != nil {
		return errors.RaiseValidationError(c, validationMessage(err))
	}

	if refErr := h.checkUpdatedBookingRefs(c, fields); refErr != nil {
		return refErr
	}

	if err := h.Bookings.UpdateByID(c.Context(), c.Params("id"), fields); err != nil {
		return h.raiseStoreError(c, err, "booking", c.Params("id"))
	}
	return jsonOut(c, updated)
}

func (h *Handler) DeleteBooking(c *fiber.Ctx) error {
	if err := h.Bookings.DeleteByID(c.Context(), c.Params("id")); err != nil {
		return h.raiseStoreError(c, err, "booking", c.Params("id"))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "entity deleted",
		"data":    fmt.Sprintf("booking with id %v was deleted", c.Params("id"))})
}

func (h *Handler) checkBookingRefs(c *fiber.Ctx, eventId string, attendeeId string) error {
	exists, err := h.refExists(c.Context(), h.Events, eventId)
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}
	if !exists {
		return errors.RaiseReferenceError(c, fmt.Sprintf("event %v does not exist", eventId))
	}

	exists, err = h.refExists(c.Context(), h.Attendees, attendeeId)
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}
	if !exists {
		return errors.RaiseReferenceError(c, fmt.Sprintf("attendee %v does not exist", attendeeId))
	}

	return nil
}

func (h *Handler) checkUpdatedBookingRefs(c *fiber.Ctx, fields map[string]interface{}) error {
	if val, ok := fields["event_id"]; ok {
		eventId, _ := val.(string)
		exists, err := h.refExists(c.Context(), h.Events, eventId)
		if err != nil {
			return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
		}
		if !exists {
			return errors.RaiseReferenceError(c, fmt.Sprintf("event %v does not exist", val))
		}
	}

	if val, ok := fields["attendee_id"]; ok {
		attendeeId, _ := val.(string)
		exists, err := h.refExists(c.Context(), h.Attendees, attendeeId)
		if err != nil {
			return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
		}
		if !exists {
			return errors.RaiseReferenceError(c, fmt.Sprintf("attendee %v does not exist", val))
		}
	}

	return nil
}
