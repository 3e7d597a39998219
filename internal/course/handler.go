package course

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	dErrors "classroom/pkg/domain-errors"
	"classroom/pkg/platform/httputil"
	"classroom/pkg/requestcontext"
)

// Handler serves the course CRUD endpoints.
type Handler struct {
	store  Store
	logger *slog.Logger
}

func NewHandler(store Store, logger *slog.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// Register mounts the course routes on r. The router is expected to guard
// the whole subtree with the auth middleware.
func (h *Handler) Register(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	courses, err := h.store.List(r.Context())
	if err != nil {
		h.fail(w, r, "list courses", err)
		return
	}
	if courses == nil {
		courses = []Course{}
	}
	httputil.WriteJSON(w, http.StatusOK, courses)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	c, err := h.store.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, "get course", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var in CourseIn
	if err := httputil.DecodeJSON(r, &in); err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := in.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	c := Course{
		ID:           uuid.New(),
		DisciplineID: in.DisciplineID,
		OwnerID:      in.OwnerID,
		Name:         in.Name,
		CreatedAt:    time.Now().UTC(),
	}
	if err := h.store.Create(r.Context(), c); err != nil {
		h.fail(w, r, "create course", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, c)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	var in CourseIn
	if err := httputil.DecodeJSON(r, &in); err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := in.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	c, err := h.store.Update(r.Context(), id, in)
	if err != nil {
		h.fail(w, r, "update course", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.store.Delete(r.Context(), id); err != nil {
		h.fail(w, r, "delete course", err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	if dErrors.GetCode(err) == dErrors.CodeInternal {
		h.logger.Error(op,
			slog.String("request_id", requestcontext.RequestID(r.Context())),
			slog.Any("error", err))
	}
	httputil.WriteError(w, err)
}

func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeBadRequest, "malformed id")
	}
	return id, nil
}
