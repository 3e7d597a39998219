package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"classroom/internal/auth/models"
	dErrors "classroom/pkg/domain-errors"
)

// uniqueViolation is the PostgreSQL error code for unique constraint hits.
const uniqueViolation = "23505"

// PostgresStore persists users in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed user store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, u models.User) error {
	query := `
		INSERT INTO users (id, email, name, surname, patronymic, role, password)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(ctx, query,
		u.ID,
		u.Email,
		u.Name,
		u.Surname,
		nullString(u.Patronymic),
		string(u.Role),
		string(u.PasswordHash),
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return ErrDuplicateEmail
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "insert user")
	}
	return nil
}

func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	query := `
		SELECT id, email, name, surname, patronymic, role, password
		FROM users
		WHERE email = $1
	`
	var (
		u          models.User
		patronymic sql.NullString
		role       string
	)
	err := s.db.QueryRowContext(ctx, query, email).Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.Surname,
		&patronymic,
		&role,
		&u.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, dErrors.Wrap(err, dErrors.CodeInternal, "find user by email")
	}
	u.Patronymic = patronymic.String
	u.Role = models.Role(role)
	return u, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
