package discipline

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	dErrors "classroom/pkg/domain-errors"
)

// PostgresStore persists disciplines in the discipline table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, d Discipline) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO discipline (id, name) VALUES ($1, $2)`, d.ID, d.Name)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "insert discipline")
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, id uuid.UUID) (Discipline, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name FROM discipline WHERE id = $1`, id)

	var d Discipline
	err := row.Scan(&d.ID, &d.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return Discipline{}, ErrNotFound
	}
	if err != nil {
		return Discipline{}, dErrors.Wrap(err, dErrors.CodeInternal, "select discipline")
	}
	return d, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]Discipline, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM discipline ORDER BY name`)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "select disciplines")
	}
	defer rows.Close()

	var out []Discipline
	for rows.Next() {
		var d Discipline
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "scan discipline")
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "iterate disciplines")
	}
	return out, nil
}

func (s *PostgresStore) Update(ctx context.Context, id uuid.UUID, in DisciplineIn) (Discipline, error) {
	row := s.db.QueryRowContext(ctx,
		`UPDATE discipline SET name = $2 WHERE id = $1 RETURNING id, name`,
		id, in.Name)

	var d Discipline
	err := row.Scan(&d.ID, &d.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return Discipline{}, ErrNotFound
	}
	if err != nil {
		return Discipline{}, dErrors.Wrap(err, dErrors.CodeInternal, "update discipline")
	}
	return d, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM discipline WHERE id = $1`, id)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "delete discipline")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "delete discipline")
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
