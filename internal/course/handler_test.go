package course

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (chi.Router, *InMemoryStore) {
	t.Helper()
	store := NewInMemoryStore()
	h := NewHandler(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
	r := chi.NewRouter()
	r.Route("/courses", h.Register)
	return r, store
}

func do(t *testing.T, r chi.Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCourseCRUD(t *testing.T) {
	r, _ := newTestRouter(t)
	in := CourseIn{
		DisciplineID: uuid.New(),
		OwnerID:      uuid.New(),
		Name:         "Linear Algebra",
	}

	rec := do(t, r, http.MethodPost, "/courses", in)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created Course
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEqual(t, uuid.Nil, created.ID)
	require.Equal(t, in.DisciplineID, created.DisciplineID)
	require.Equal(t, in.OwnerID, created.OwnerID)
	require.Equal(t, in.Name, created.Name)
	require.False(t, created.CreatedAt.IsZero())

	rec = do(t, r, http.MethodGet, "/courses/"+created.ID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	in.Name = "Linear Algebra II"
	rec = do(t, r, http.MethodPut, "/courses/"+created.ID.String(), in)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated Course
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, "Linear Algebra II", updated.Name)
	require.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())

	rec = do(t, r, http.MethodDelete, "/courses/"+created.ID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, r, http.MethodGet, "/courses/"+created.ID.String(), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error":"not_found"}`, rec.Body.String())
}

func TestCourseListOrderedByCreation(t *testing.T) {
	r, store := newTestRouter(t)

	for _, name := range []string{"first", "second", "third"} {
		rec := do(t, r, http.MethodPost, "/courses", CourseIn{
			DisciplineID: uuid.New(),
			OwnerID:      uuid.New(),
			Name:         name,
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	courses, err := store.List(t.Context())
	require.NoError(t, err)
	require.Len(t, courses, 3)

	rec := do(t, r, http.MethodGet, "/courses", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var all []Course
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	require.Len(t, all, 3)
}

func TestCourseValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	cases := map[string]CourseIn{
		"missing name":          {DisciplineID: uuid.New(), OwnerID: uuid.New()},
		"missing discipline_id": {OwnerID: uuid.New(), Name: "x"},
		"missing owner_id":      {DisciplineID: uuid.New(), Name: "x"},
	}
	for name, in := range cases {
		rec := do(t, r, http.MethodPost, "/courses", in)
		require.Equal(t, http.StatusBadRequest, rec.Code, name)
		require.JSONEq(t, `{"error":"bad_request"}`, rec.Body.String(), name)
	}
}

func TestCourseMalformedBody(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/courses", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCourseUpdateMissing(t *testing.T) {
	r, _ := newTestRouter(t)
	in := CourseIn{DisciplineID: uuid.New(), OwnerID: uuid.New(), Name: "x"}

	rec := do(t, r, http.MethodPut, "/courses/"+uuid.NewString(), in)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, r, http.MethodDelete, "/courses/"+uuid.NewString(), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
