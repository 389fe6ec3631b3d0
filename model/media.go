package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Media types recognized by the asset endpoints. Each upload route pins one
// of these on the metadata record so downloads can filter by kind.
const (
	MediaEventPoster string = "event_poster"
	MediaPromoVideo  string = "promo_video"
	MediaVenuePhoto  string = "venue_photo"
)

// MediaFile links an owning event or venue to a stored blob. The binary
// itself lives in the blob store under BlobId; this record only carries
// the metadata needed to serve it back.
type MediaFile struct {
	Id          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	OwnerId     string             `json:"owner_id" bson:"owner_id"`
	MediaType   string             `json:"media_type" bson:"media_type"`
	BlobId      string             `json:"blob_id" bson:"blob_id"`
	Filename    string             `json:"filename" bson:"filename"`
	ContentType string             `json:"content_type" bson:"content_type"`
	Size        int64              `json:"size" bson:"size"`
	UploadedAt  time.Time          `json:"uploaded_at" bson:"uploaded_at"`
}
