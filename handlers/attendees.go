package handlers

import (
	"fmt"
	"strings"

	"event-webapp/errors"
	"event-webapp/model"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (h *Handler) GetAttendees(c *fiber.Ctx) error {
	attendees := []model.Attendee{}
	if err := h.Attendees.FindAll(c.Context(), &attendees); err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}
	return jsonOut(c, attendees)
}

func (h *Handler) GetAttendee(c *fiber.Ctx) error {
	attendee := model.Attendee{}
	if err := h.Attendees.FindByID(c.Context(), c.Params("id"), &attendee); err != nil {
		return h.raiseStoreError(c, err, "attendee", c.Params("id"))
	}
	return jsonOut(c, attendee)
}

func (h *Handler) CreateAttendee(c *fiber.Ctx) error {
	newAttendee := new(model.Attendee)
	if err := c.BodyParser(newAttendee); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable attendee parameters: %v", err))
	}
	newAttendee.Name = strings.TrimSpace(newAttendee.Name)

	if err := rejectUnsafeBody(c.Body()); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprint(err))
	}
	if err := h.validate.Struct(newAttendee); err != nil {
		return errors.RaiseValidationError(c, validationMessage(err))
	}

	newAttendee.Id = primitive.NewObjectID()
	if _, err := h.Attendees.InsertOne(c.Context(), newAttendee); err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}

	return jsonOut(c, newAttendee)
}

func (h *Handler) UpdateAttendee(c *fiber.Ctx) error {
	fields, err := parsePartial(c.Body(), model.AttendeeFields)
	if err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable attendee parameters: %v", err))
	}
	if len(fields) == 0 {
		return errors.RaiseValidationError(c, "no updatable fields in payload")
	}

	updated := model.Attendee{}
	if err := h.Attendees.FindByID(c.Context(), c.Params("id"), &updated); err != nil {
		return h.raiseStoreError(c, err, "attendee", c.Params("id"))
	}
	if err := h.mergePatch(&updated, fields); err != nil {
		return errors.RaiseValidationError(c, validationMessage(err))
	}

	if err := h.Attendees.UpdateByID(c.Context(), c.Params("id"), fields); err != nil {
		return h.raiseStoreError(c, err, "attendee", c.Params("id"))
	}
	return jsonOut(c, updated)
}

func (h *Handler) DeleteAttendee(c *fiber.Ctx) error {
	if err := h.Attendees.DeleteByID(c.Context(), c.Params("id")); err != nil {
		return h.raiseStoreError(c, err, "attendee", c.Params("id"))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "entity deleted",
		"data":    fmt.Sprintf("attendee with id %v was deleted", c.Params("id"))})
}
