package handlers

import (
	stderrors "errors"
	"fmt"
	"io"
	"time"

	"event-webapp/database"
	"event-webapp/errors"
	"event-webapp/model"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (h *Handler) UploadEventPoster(c *fiber.Ctx) error {
	return h.upload(c, h.Events, "event", model.MediaEventPoster)
}

func (h *Handler) DownloadEventPoster(c *fiber.Ctx) error {
	return h.download(c, model.MediaEventPoster, "poster")
}

func (h *Handler) UploadPromoVideo(c *fiber.Ctx) error {
	return h.upload(c, h.Events, "event", model.MediaPromoVideo)
}

func (h *Handler) DownloadPromoVideo(c *fiber.Ctx) error {
	return h.download(c, model.MediaPromoVideo, "video")
}

func (h *Handler) UploadVenuePhoto(c *fiber.Ctx) error {
	return h.upload(c, h.Venues, "venue", model.MediaVenuePhoto)
}

func (h *Handler) DownloadVenuePhoto(c *fiber.Ctx) error {
	return h.download(c, model.MediaVenuePhoto, "photo")
}

// upload checks the owning document first: nothing is written when the
// owner is missing. On success a fresh blob id is generated, the binary
// goes to the blob store and the metadata record keyed by that blob id
// goes to the media collection.
func (h *Handler) upload(c *fiber.Ctx, owners database.Collection, ownerLabel string, mediaType string) error {
	ownerId := c.Params("id")

	exists, err := owners.Exists(c.Context(), ownerId)
	if stderrors.Is(err, database.ErrInvalidID) {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("invalid %v id %v", ownerLabel, ownerId))
	}
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}
	if !exists {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("%v %v not found", ownerLabel, ownerId))
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return errors.RaiseBadRequestError(c, "multipart form field 'file' is missing")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("cannot read uploaded file: %v", err))
	}
	data, err := io.ReadAll(file)
	file.Close()
	if err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("cannot read uploaded file: %v", err))
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	blobId := uuid.NewString()
	if err := h.Blobs.Put(c.Context(), blobId, fileHeader.Filename, data); err != nil {
		h.log.Error().Err(err).Str("blob_id", blobId).Msg("blob write failed")
		return errors.RaiseInternalServerError(c, fmt.Sprintf("blob store error: %v", err))
	}

	media := model.MediaFile{
		Id:          primitive.NewObjectID(),
		OwnerId:     ownerId,
		MediaType:   mediaType,
		BlobId:      blobId,
		Filename:    fileHeader.Filename,
		ContentType: contentType,
		Size:        int64(len(data)),
		UploadedAt:  time.Now().UTC(),
	}
	if _, err := h.Media.InsertOne(c.Context(), media); err != nil {
		// the blob is unreachable without its metadata record
		if delErr := h.Blobs.Delete(c.Context(), blobId); delErr != nil {
			h.log.Error().Err(delErr).Str("blob_id", blobId).Msg("orphaned blob cleanup failed")
		}
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}

	return jsonOut(c, media)
}

func (h *Handler) download(c *fiber.Ctx, mediaType string, label string) error {
	media := model.MediaFile{}
	if err := h.Media.FindByID(c.Context(), c.Params("id"), &media); err != nil {
		return h.raiseStoreError(c, err, label, c.Params("id"))
	}
	if media.MediaType != mediaType {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("%v %v not found", label, c.Params("id")))
	}

	data, err := h.Blobs.Get(c.Context(), media.BlobId)
	if stderrors.Is(err, database.ErrNotFound) {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("file content for %v %v is missing", label, c.Params("id")))
	}
	if err != nil {
		h.log.Error().Err(err).Str("blob_id", media.BlobId).Msg("blob read failed")
		return errors.RaiseInternalServerError(c, fmt.Sprintf("blob store error: %v", err))
	}

	c.Set(fiber.HeaderContentType, media.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", media.Filename))
	return c.Send(data)
}
