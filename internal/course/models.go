// Package course implements the course resource: a thin CRUD layer over one
// relational table, keyed to a discipline and an owning user.
package course

import (
	"time"

	"github.com/google/uuid"

	dErrors "classroom/pkg/domain-errors"
)

// Course is one row of the course table.
type Course struct {
	ID           uuid.UUID `json:"id"`
	DisciplineID uuid.UUID `json:"discipline_id"`
	OwnerID      uuid.UUID `json:"owner_id"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
}

// CourseIn carries the client-settable fields for create and update.
type CourseIn struct {
	DisciplineID uuid.UUID `json:"discipline_id"`
	OwnerID      uuid.UUID `json:"owner_id"`
	Name         string    `json:"name"`
}

func (c *CourseIn) Validate() error {
	switch {
	case c.Name == "":
		return dErrors.New(dErrors.CodeBadRequest, "name is required")
	case c.DisciplineID == uuid.Nil:
		return dErrors.New(dErrors.CodeBadRequest, "discipline_id is required")
	case c.OwnerID == uuid.Nil:
		return dErrors.New(dErrors.CodeBadRequest, "owner_id is required")
	}
	return nil
}
