package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type Attendee struct {
	Id    primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name  string             `json:"name" bson:"name" validate:"required,min=2"`
	Email string             `json:"email" bson:"email" validate:"required,email"`
	Phone string             `json:"phone,omitempty" bson:"phone,omitempty"`
}

var AttendeeFields = []string{"name", "email", "phone"}
