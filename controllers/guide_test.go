package controllers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"summoners-school/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const demoGuide = `{
	"name": "Darius Top Guide",
	"owner": {"id": 1001, "name": "CoachKing"},
	"champion": "Darius",
	"thumbnail": "https://example.com/thumbnail.png",
	"playlist": {"intro": "https://example.com/intro.mp4"},
	"content": "Detailed content here..."
}`

func (ts *testServer) createGuide(t *testing.T) models.Guide {
	t.Helper()
	w := ts.do(http.MethodPost, "/guide/create", demoGuide)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode[models.Guide](t, w)
}

func TestAddGuide(t *testing.T) {
	ts := newTestServer(nil)

	w := ts.do(http.MethodPost, "/guide/create", demoGuide)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	raw := decode[map[string]interface{}](t, w)
	assert.Len(t, raw["_id"], 24)
	assert.Equal(t, "Darius", raw["champion"])
	assert.Nil(t, raw["description"])
	assert.Equal(t, map[string]interface{}{"intro": "https://example.com/intro.mp4"}, raw["playlist"])
}

func TestAddGuide_MissingField(t *testing.T) {
	ts := newTestServer(nil)

	w := ts.do(http.MethodPost, "/guide/create", `{"name":"x","owner":{"id":1,"name":"y"},"playlist":{}}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "champion is required", decode[ErrorResponse](t, w).Detail)
	assert.Zero(t, ts.guides.calls)
}

func TestSearchGuides(t *testing.T) {
	ts := newTestServer(nil)
	ts.createGuide(t)

	w := ts.do(http.MethodGet, "/guide/search?name=dar", "")

	require.Equal(t, http.StatusOK, w.Code)
	guides := decode[[]models.Guide](t, w)
	require.Len(t, guides, 1)
	assert.Equal(t, "Darius Top Guide", guides[0].Name)
}

func TestGuideLifecycle(t *testing.T) {
	ts := newTestServer(nil)
	created := ts.createGuide(t)
	id := created.ID.Hex()

	w := ts.do(http.MethodGet, "/guide/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created, decode[models.Guide](t, w))
	require.Len(t, ts.tracker.visits, 1)
	assert.Equal(t, DomainGuide, ts.tracker.visits[0].Domain)

	w = ts.do(http.MethodPut, "/guide/update/"+id, `{"playlist":{"intro":"https://example.com/updated-intro.mp4"}}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]string{"intro": "https://example.com/updated-intro.mp4"}, decode[models.Guide](t, w).Playlist)

	w = ts.do(http.MethodGet, "/guide/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Guide](t, w), 1)

	w = ts.do(http.MethodDelete, "/guide/delete/"+id, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = ts.do(http.MethodGet, "/guide/"+id, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Guide Not Found"}`, w.Body.String())

	w = ts.do(http.MethodDelete, "/guide/delete/"+id, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"guide `+id+` not found"}`, w.Body.String())
}

func TestListLookups(t *testing.T) {
	ts := newTestServer(nil)

	w := ts.do(http.MethodGet, "/lookups", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"lookupType":"course type","values":["recommended","popular","new","nothing"]}]`, w.Body.String())
}

func TestGetVisits(t *testing.T) {
	ts := newTestServer(nil)
	ts.tracker.count = 42
	id := primitive.NewObjectID().Hex()

	w := ts.do(http.MethodGet, "/stats/visits?domain=course&id="+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"visits":42}`, w.Body.String())

	w = ts.do(http.MethodGet, "/stats/visits?domain=user&id="+id, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"detail":"Unknown Domain"}`, w.Body.String())

	w = ts.do(http.MethodGet, "/stats/visits?domain=guide&id=42", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"detail":"Invalid ID Format"}`, w.Body.String())

	ts.tracker.err = errors.New("redis down")
	w = ts.do(http.MethodGet, "/stats/visits?domain=guide&id="+id, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetVisits_WithoutAnalytics(t *testing.T) {
	router := gin.New()
	NewEnv(Options{Courses: newMemCourses(), Guides: newMemGuides()}).Register(router)
	ts := &testServer{router: router}

	w := ts.do(http.MethodGet, "/stats/visits?domain=course&id="+primitive.NewObjectID().Hex(), "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"visits":0}`, w.Body.String())
}

type fixedClients int

func (f fixedClients) Count() int { return int(f) }

func TestMonitor(t *testing.T) {
	healthy := true
	router := gin.New()
	NewEnv(Options{
		Courses: newMemCourses(),
		Guides:  newMemGuides(),
		Clients: fixedClients(3),
		Ping: func(context.Context) error {
			if healthy {
				return nil
			}
			return errors.New("no primary")
		},
	}).Register(router)
	ts := &testServer{router: router}

	w := ts.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	healthy = false
	w = ts.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = ts.do(http.MethodGet, "/monitor/requests/count", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"clients":3}`, w.Body.String())
}
