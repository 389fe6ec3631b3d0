package handlers

import (
	"fmt"
	"strings"

	"event-webapp/errors"
	"event-webapp/model"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (h *Handler) GetVenues(c *fiber.Ctx) error {
	venues := []model.Venue{}
	if err := h.Venues.FindAll(c.Context(), &venues); err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}
	return jsonOut(c, venues)
}

func (h *Handler) GetVenue(c *fiber.Ctx) error {
	venue := model.Venue{}
	if err := h.Venues.FindByID(c.Context(), c.Params("id"), &venue); err != nil {
		return h.raiseStoreError(c, err, "venue", c.Params("id"))
	}
	return jsonOut(c, venue)
}

func (h *Handler) CreateVenue(c *fiber.Ctx) error {
	newVenue := new(model.Venue)
	if err := c.BodyParser(newVenue); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable venue parameters: %v", err))
	}
	newVenue.Name = strings.TrimSpace(newVenue.Name)

	if err := rejectUnsafeBody(c.Body()); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprint(err))
	}
	if err := h.validate.Struct(newVenue); err != nil {
		return errors.RaiseValidationError(c, validationMessage(err))
	}

	newVenue.Id = primitive.NewObjectID()
	if _, err := h.Venues.InsertOne(c.Context(), newVenue); err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}

	return jsonOut(c, newVenue)
}

func (h *Handler) UpdateVenue(c *fiber.Ctx) error {
	fields, err := parsePartial(c.Body(), model.VenueFields)
	if err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable venue parameters: %v", err))
	}
	if len(fields) == 0 {
		return errors.RaiseValidationError(c, "no updatable fields in payload")
	}

	updated := model.Venue{}
	if err := h.Venues.FindByID(c.Context(), c.Params("id"), &updated); err != nil {
		return h.raiseStoreError(c, err, "venue", c.Params("id"))
	}
	if err := h.mergePatch(&updated, fields); err != nil {
		return errors.RaiseValidationError(c, validationMessage(err))
	}

	if err := h.Venues.UpdateByID(c.Context(), c.Params("id"), fields); err != nil {
		return h.raiseStoreError(c, err, "venue", c.Params("id"))
	}
	return jsonOut(c, updated)
}

func (h *Handler) DeleteVenue(c *fiber.Ctx) error {
	if err := h.Venues.DeleteByID(c.Context(), c.Params("id")); err != nil {
		return h.raiseStoreError(c, err, "venue", c.Params("id"))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "entity deleted",
		"data":    fmt.Sprintf("venue with id %v was deleted", c.Params("id"))})
}
