package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection is the document-store surface the handlers work against.
// Identifiers cross this boundary as hex strings; a string that does not
// parse to an ObjectID yields ErrInvalidID, a miss yields ErrNotFound.
type Collection interface {
	InsertOne(ctx context.Context, doc interface{}) (string, error)
	FindByID(ctx context.Context, id string, out interface{}) error
	FindAll(ctx context.Context, out interface{}) error
	UpdateByID(ctx context.Context, id string, fields map[string]interface{}) error
	DeleteByID(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}

type mongoCollection struct {
	col *mongo.Collection
}

func NewCollection(col *mongo.Collection) Collection {
	return &mongoCollection{col: col}
}

func parseID(id string) (primitive.ObjectID, error) {
	objId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return objId, nil
}

func (mc *mongoCollection) InsertOne(ctx context.Context, doc interface{}) (string, error) {
	res, err := mc.col.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	if objId, ok := res.InsertedID.(primitive.ObjectID); ok {
		return objId.Hex(), nil
	}
	return "", nil
}

func (mc *mongoCollection) FindByID(ctx context.Context, id string, out interface{}) error {
	objId, err := parseID(id)
	if err != nil {
		return err
	}
	err = mc.col.FindOne(ctx, bson.M{"_id": objId}).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

func (mc *mongoCollection) FindAll(ctx context.Context, out interface{}) error {
	cur, err := mc.col.Find(ctx, bson.D{})
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}

func (mc *mongoCollection) UpdateByID(ctx context.Context, id string, fields map[string]interface{}) error {
	objId, err := parseID(id)
	if err != nil {
		return err
	}
	res, err := mc.col.UpdateOne(ctx, bson.M{"_id": objId}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (mc *mongoCollection) DeleteByID(ctx context.Context, id string) error {
	objId, err := parseID(id)
	if err != nil {
		return err
	}
	res, err := mc.col.DeleteOne(ctx, bson.M{"_id": objId})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (mc *mongoCollection) Exists(ctx context.Context, id string) (bool, error) {
	objId, err := parseID(id)
	if err != nil {
		return false, err
	}
	count, err := mc.col.CountDocuments(ctx, bson.M{"_id": objId})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
