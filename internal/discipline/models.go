// Package discipline implements the discipline catalog: named subjects that
// courses attach to.
package discipline

import (
	"github.com/google/uuid"

	dErrors "classroom/pkg/domain-errors"
)

// Discipline is one row of the discipline table.
type Discipline struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// DisciplineIn carries the client-settable fields for create and update.
type DisciplineIn struct {
	Name string `json:"name"`
}

func (d *DisciplineIn) Validate() error {
	if d.Name == "" {
		return dErrors.New(dErrors.CodeBadRequest, "name is required")
	}
	return nil
}
