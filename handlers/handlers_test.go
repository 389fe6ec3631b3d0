package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"reflect"
	"sync"
	"testing"

	"event-webapp/database"
	"event-webapp/handlers"
	"event-webapp/router"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memCollection is an in-memory Collection backed by bson-encoded documents,
// so handler tests exercise the same encode/decode path as the Mongo store.
type memCollection struct {
	mu         sync.Mutex
	docs       map[string][]byte
	failInsert error
}

func newMemCollection() *memCollection {
	return &memCollection{docs: map[string][]byte{}}
}

func (m *memCollection) InsertOne(ctx context.Context, doc interface{}) (string, error) {
	if m.failInsert != nil {
		return "", m.failInsert
	}
	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", err
	}
	var d bson.M
	if err := bson.Unmarshal(raw, &d); err != nil {
		return "", err
	}
	id, ok := d["_id"].(primitive.ObjectID)
	if !ok || id.IsZero() {
		id = primitive.NewObjectID()
		d["_id"] = id
		raw, _ = bson.Marshal(d)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[id.Hex()] = raw
	return id.Hex(), nil
}

func (m *memCollection) FindByID(ctx context.Context, id string, out interface{}) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return database.ErrInvalidID
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.docs[id]
	if !ok {
		return database.ErrNotFound
	}
	return bson.Unmarshal(raw, out)
}

func (m *memCollection) FindAll(ctx context.Context, out interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	slice := reflect.ValueOf(out).Elem()
	elemType := slice.Type().Elem()
	for _, raw := range m.docs {
		elem := reflect.New(elemType)
		if err := bson.Unmarshal(raw, elem.Interface()); err != nil {
			return err
		}
		slice.Set(reflect.Append(slice, elem.Elem()))
	}
	return nil
}

func (m *memCollection) UpdateByID(ctx context.Context, id string, fields map[string]interface{}) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return database.ErrInvalidID
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.docs[id]
	if !ok {
		return database.ErrNotFound
	}

	var d bson.M
	if err := bson.Unmarshal(raw, &d); err != nil {
		return err
	}
	for key, val := range fields {
		d[key] = val
	}
	raw, err := bson.Marshal(d)
	if err != nil {
		return err
	}
	m.docs[id] = raw
	return nil
}

func (m *memCollection) DeleteByID(ctx context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return database.ErrInvalidID
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[id]; !ok {
		return database.ErrNotFound
	}
	delete(m.docs, id)
	return nil
}

func (m *memCollection) Exists(ctx context.Context, id string) (bool, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return false, database.ErrInvalidID
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.docs[id]
	return ok, nil
}

func (m *memCollection) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.docs)
}

type memBlobs struct {
	mu    sync.Mutex
	blobs map[string][]byte
	names map[string]string
}

func newMemBlobs() *memBlobs {
	return &memBlobs{blobs: map[string][]byte{}, names: map[string]string{}}
}

func (m *memBlobs) Put(ctx context.Context, id string, filename string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[id] = append([]byte{}, data...)
	m.names[id] = filename
	return nil
}

func (m *memBlobs) Get(ctx context.Context, id string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.blobs[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return data, nil
}

func (m *memBlobs) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.blobs[id]; !ok {
		return database.ErrNotFound
	}
	delete(m.blobs, id)
	delete(m.names, id)
	return nil
}

func (m *memBlobs) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.blobs)
}

type testEnv struct {
	app       *fiber.App
	events    *memCollection
	attendees *memCollection
	venues    *memCollection
	bookings  *memCollection
	media     *memCollection
	blobs     *memBlobs
}

func newTestEnv() *testEnv {
	env := &testEnv{
		events:    newMemCollection(),
		attendees: newMemCollection(),
		venues:    newMemCollection(),
		bookings:  newMemCollection(),
		media:     newMemCollection(),
		blobs:     newMemBlobs(),
	}

	h := handlers.New(env.events, env.attendees, env.venues, env.bookings, env.media, env.blobs, zerolog.Nop())
	env.app = fiber.New()
	router.SetupRoutes(env.app, h, zerolog.Nop())
	return env
}

func doJSON(t *testing.T, app *fiber.App, method string, route string, body string) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req, err := http.NewRequest(method, route, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := app.Test(req, -1)
	require.NoError(t, err)
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	parsed := map[string]interface{}{}
	if len(raw) > 0 && (raw[0] == '{') {
		require.NoError(t, json.Unmarshal(raw, &parsed))
	}
	return res.StatusCode, parsed
}

func doJSONList(t *testing.T, app *fiber.App, route string) (int, []map[string]interface{}) {
	t.Helper()

	req, err := http.NewRequest("GET", route, nil)
	require.NoError(t, err)
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	parsed := []map[string]interface{}{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return res.StatusCode, parsed
}

func multipartBody(t *testing.T, filename string, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	hdr.Set("Content-Type", contentType)
	part, err := w.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return buf, w.FormDataContentType()
}

func seedVenue(t *testing.T, env *testEnv) string {
	t.Helper()
	code, body := doJSON(t, env.app, "POST", "/venues",
		`{"name":"City Hall","address":"1 Main St","capacity":500}`)
	require.Equal(t, 200, code)
	return body["id"].(string)
}

func seedEvent(t *testing.T, env *testEnv) string {
	t.Helper()
	venueId := seedVenue(t, env)
	code, body := doJSON(t, env.app, "POST", "/events", fmt.Sprintf(
		`{"name":"Conf2024","description":"annual conference","date":"2024-09-01","venue_id":%q,"max_attendees":300}`,
		venueId))
	require.Equal(t, 200, code)
	return body["id"].(string)
}

func seedAttendee(t *testing.T, env *testEnv) string {
	t.Helper()
	code, body := doJSON(t, env.app, "POST", "/attendees",
		`{"name":"Jane Doe","email":"jane@example.com","phone":"555-0134"}`)
	require.Equal(t, 200, code)
	return body["id"].(string)
}
