package handlers

import (
	"fmt"
	"strings"

	"event-webapp/errors"
	"event-webapp/model"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (h *Handler) GetEvents(c *fiber.Ctx) error {
	events := []model.Event{}
	if err := h.Events.FindAll(c.Context(), &events); err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}
	return jsonOut(c, events)
}

func (h *Handler) GetEvent(c *fiber.Ctx) error {
	event := model.Event{}
	if err := h.Events.FindByID(c.Context(), c.Params("id"), &event); err != nil {
		return h.raiseStoreError(c, err, "event", c.Params("id"))
	}
	return jsonOut(c, event)
}

func (h *Handler) CreateEvent(c *fiber.Ctx) error {
	newEvent := new(model.Event)
	if err := c.BodyParser(newEvent); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable event parameters: %v", err))
	}
	newEvent.Name = strings.TrimSpace(newEvent.Name)

	if err := rejectUnsafeBody(c.Body()); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprint(err))
	}
	if err := h.validate.Struct(newEvent); err != nil {
		return errors.RaiseValidationError(c, validationMessage(err))
	}

	exists, err := h.refExists(c.Context(), h.Venues, newEvent.VenueId)
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}
	if !exists {
		return errors.RaiseReferenceError(c, fmt.Sprintf("venue %v does not exist", newEvent.VenueId))
	}

	newEvent.Id = primitive.NewObjectID()
	if _, err := h.Events.InsertOne(c.Context(), newEvent); err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}

	return jsonOut(c, newEvent)
}

func (h *Handler) UpdateEvent(c *fiber.Ctx) error {
	fields, err := parsePartial(c.Body(), model.EventFields)
	if err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable event parameters: %v", err))
	}
	if len(fields) == 0 {
		return errors.RaiseValidationError(c, "no updatable fields in payload")
	}

	updated := model.Event{}
	if err := h.Events.FindByID(c.Context(), c.Params("id"), &updated); err != nil {
		return h.raiseStoreError(c, err, "event", c.Params("id"))
	}
	if err := h.mergePatch(&updated, fields); err != nil {
		return errors.RaiseValidationError(c, validationMessage(err))
	}

	if _, ok := fields["venue_id"]; ok {
		exists, err := h.refExists(c.Context(), h.Venues, updated.VenueId)
		if err != nil {
			return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
		}
		if !exists {
			return errors.RaiseReferenceError(c, fmt.Sprintf("venue %v does not exist", updated.VenueId))
		}
	}

	if err := h.Events.UpdateByID(c.Context(), c.Params("id"), fields); err != nil {
		return h.raiseStoreError(c, err, "event", c.Params("id"))
	}
	return jsonOut(c, updated)
}

func (h *Handler) DeleteEvent(c *fiber.Ctx) error {
	if err := h.Events.DeleteByID(c.Context(), c.Params("id")); err != nil {
		return h.raiseStoreError(c, err, "event", c.Params("id"))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "entity deleted",
		"data":    fmt.Sprintf("event with id %v was deleted", c.Params("id"))})
}
