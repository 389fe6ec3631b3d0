package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type Booking struct {
	Id         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	EventId    string             `json:"event_id" bson:"event_id" validate:"required"`
	AttendeeId string             `json:"attendee_id" bson:"attendee_id" validate:"required"`
	TicketType string             `json:"ticket_type" bson:"ticket_type" validate:"required"`
	Quantity   uint               `json:"quantity" bson:"quantity" validate:"required,gte=1"`
}

var BookingFields = []string{"event_id", "attendee_id", "ticket_type", "quantity"}
