package course

import (
	"context"

	"github.com/google/uuid"

	dErrors "classroom/pkg/domain-errors"
)

// ErrNotFound is returned when no course matches the requested id.
var ErrNotFound = dErrors.New(dErrors.CodeNotFound, "course not found")

// Store persists courses.
type Store interface {
	Create(ctx context.Context, c Course) error
	Get(ctx context.Context, id uuid.UUID) (Course, error)
	List(ctx context.Context) ([]Course, error)
	Update(ctx context.Context, id uuid.UUID, in CourseIn) (Course, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
