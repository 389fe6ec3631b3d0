package handlers

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"

	"event-webapp/database"
	"event-webapp/errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// Handler carries the stores every endpoint works against. Everything is
// injected once at startup, there is no package-level state.
type Handler struct {
	Events    database.Collection
	Attendees database.Collection
	Venues    database.Collection
	Bookings  database.Collection
	Media     database.Collection
	Blobs     database.BlobStore

	validate *validator.Validate
	log      zerolog.Logger
}

func New(events, attendees, venues, bookings, media database.Collection, blobs database.BlobStore, log zerolog.Logger) *Handler {
	return &Handler{
		Events:    events,
		Attendees: attendees,
		Venues:    venues,
		Bookings:  bookings,
		Media:     media,
		Blobs:     blobs,
		validate:  validator.New(),
		log:       log,
	}
}

func jsonOut(c *fiber.Ctx, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "	")
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", err))
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.SendString(string(out))
}

func (h *Handler) raiseStoreError(c *fiber.Ctx, err error, label string, id string) error {
	switch {
	case stderrors.Is(err, database.ErrInvalidID):
		return errors.RaiseBadRequestError(c, fmt.Sprintf("invalid %v id %v", label, id))
	case stderrors.Is(err, database.ErrNotFound):
		return errors.RaiseNotFoundError(c, fmt.Sprintf("%v %v not found", label, id))
	default:
		h.log.Error().Err(err).Str("entity", label).Msg("store operation failed")
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}
}

// refExists reports whether a referenced document is present. A reference
// that is not even a well-formed id counts as absent, not as a client error,
// so callers can surface a single reference-failure response.
func (h *Handler) refExists(ctx context.Context, col database.Collection, id string) (bool, error) {
	exists, err := col.Exists(ctx, id)
	if stderrors.Is(err, database.ErrInvalidID) {
		return false, nil
	}
	return exists, err
}

func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if stderrors.As(err, &fieldErrs) {
		parts := make([]string, 0, len(fieldErrs))
		for _, fieldErr := range fieldErrs {
			parts = append(parts, fmt.Sprintf("field %v failed on %v", strings.ToLower(fieldErr.Field()), fieldErr.Tag()))
		}
		return strings.Join(parts, "; ")
	}
	return err.Error()
}

// rejectUnsafe guards payloads against operator injection: no nested
// objects, no '$' inside string values.
func rejectUnsafe(fields map[string]interface{}) error {
	for key, val := range fields {
		switch v := val.(type) {
		case map[string]interface{}:
			return fmt.Errorf("nested objects are not allowed in field %v", key)
		case string:
			if strings.Contains(v, "$") {
				return fmt.Errorf("invalid characters in field %v", key)
			}
		}
	}
	return nil
}

func rejectUnsafeBody(body []byte) error {
	raw := map[string]interface{}{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return err
	}
	return rejectUnsafe(raw)
}

// mergePatch lays update fields over the stored record and re-runs the
// entity's validation tags, so a patch cannot store a value a create
// would reject, whether mistyped or out of range.
func (h *Handler) mergePatch(current interface{}, fields map[string]interface{}) error {
	raw, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, current); err != nil {
		return fmt.Errorf("mistyped field value: %v", err)
	}
	return h.validate.Struct(current)
}

// parsePartial extracts an update payload: only the entity's updatable
// fields survive, unknown keys and ids are dropped.
func parsePartial(body []byte, allowed []string) (map[string]interface{}, error) {
	raw := map[string]interface{}{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("cannot parse payload: %v", err)
	}

	fields := map[string]interface{}{}
	for _, key := range allowed {
		if val, ok := raw[key]; ok {
			fields[key] = val
		}
	}

	if err := rejectUnsafe(fields); err != nil {
		return nil, err
	}

	return fields, nil
}
