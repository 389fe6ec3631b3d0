package database

import (
	"bytes"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
)

// BlobStore holds uploaded binaries, addressed by caller-generated ids
// that are independent of any document id.
type BlobStore interface {
	Put(ctx context.Context, id string, filename string, data []byte) error
	Get(ctx context.Context, id string) ([]byte, error)
	Delete(ctx context.Context, id string) error
}

type gridfsStore struct {
	bucket *gridfs.Bucket
}

func NewBlobStore(db *mongo.Database) (BlobStore, error) {
	bucket, err := gridfs.NewBucket(db)
	if err != nil {
		return nil, err
	}
	return &gridfsStore{bucket: bucket}, nil
}

func (gs *gridfsStore) Put(ctx context.Context, id string, filename string, data []byte) error {
	return gs.bucket.UploadFromStreamWithID(id, filename, bytes.NewReader(data))
}

func (gs *gridfsStore) Get(ctx context.Context, id string) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := gs.bucket.DownloadToStream(id, &buf); err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return buf.Bytes(), nil
}

func (gs *gridfsStore) Delete(ctx context.Context, id string) error {
	err := gs.bucket.Delete(id)
	if errors.Is(err, gridfs.ErrFileNotFound) {
		return ErrNotFound
	}
	return err
}
