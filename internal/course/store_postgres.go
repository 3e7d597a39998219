package course

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	dErrors "classroom/pkg/domain-errors"
)

// PostgresStore persists courses in the course table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, c Course) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO course (id, discipline_id, owner_id, name, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.DisciplineID, c.OwnerID, c.Name, c.CreatedAt)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "insert course")
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, id uuid.UUID) (Course, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, discipline_id, owner_id, name, created_at FROM course WHERE id = $1`, id)

	var c Course
	err := row.Scan(&c.ID, &c.DisciplineID, &c.OwnerID, &c.Name, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Course{}, ErrNotFound
	}
	if err != nil {
		return Course{}, dErrors.Wrap(err, dErrors.CodeInternal, "select course")
	}
	return c, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]Course, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, discipline_id, owner_id, name, created_at FROM course ORDER BY created_at`)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "select courses")
	}
	defer rows.Close()

	var out []Course
	for rows.Next() {
		var c Course
		if err := rows.Scan(&c.ID, &c.DisciplineID, &c.OwnerID, &c.Name, &c.CreatedAt); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "scan course")
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "iterate courses")
	}
	return out, nil
}

func (s *PostgresStore) Update(ctx context.Context, id uuid.UUID, in CourseIn) (Course, error) {
	row := s.db.QueryRowContext(ctx,
		`UPDATE course SET discipline_id = $2, owner_id = $3, name = $4
		 WHERE id = $1
		 RETURNING id, discipline_id, owner_id, name, created_at`,
		id, in.DisciplineID, in.OwnerID, in.Name)

	var c Course
	err := row.Scan(&c.ID, &c.DisciplineID, &c.OwnerID, &c.Name, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Course{}, ErrNotFound
	}
	if err != nil {
		return Course{}, dErrors.Wrap(err, dErrors.CodeInternal, "update course")
	}
	return c, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM course WHERE id = $1`, id)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "delete course")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, fmt.Sprintf("delete course %s", id))
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
