package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type Event struct {
	Id           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name" validate:"required,min=2"`
	Description  string             `json:"description" bson:"description" validate:"required"`
	Date         string             `json:"date" bson:"date" validate:"required,datetime=2006-01-02"`
	VenueId      string             `json:"venue_id" bson:"venue_id" validate:"required"`
	MaxAttendees uint               `json:"max_attendees" bson:"max_attendees" validate:"required,gte=1"`
}

// EventFields are the attributes a partial update may touch.
var EventFields = []string{"name", "description", "date", "venue_id", "max_attendees"}
