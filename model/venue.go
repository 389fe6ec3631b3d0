package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type Venue struct {
	Id       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name" validate:"required,min=2"`
	Address  string             `json:"address" bson:"address" validate:"required"`
	Capacity uint               `json:"capacity" bson:"capacity" validate:"required,gte=1"`
}

var VenueFields = []string{"name", "address", "capacity"}
