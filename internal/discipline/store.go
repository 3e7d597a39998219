package discipline

import (
	"context"

	"github.com/google/uuid"

	dErrors "classroom/pkg/domain-errors"
)

// ErrNotFound is returned when no discipline matches the requested id.
var ErrNotFound = dErrors.New(dErrors.CodeNotFound, "discipline not found")

// Store persists disciplines.
type Store interface {
	Create(ctx context.Context, d Discipline) error
	Get(ctx context.Context, id uuid.UUID) (Discipline, error)
	List(ctx context.Context) ([]Discipline, error)
	Update(ctx context.Context, id uuid.UUID, in DisciplineIn) (Discipline, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
