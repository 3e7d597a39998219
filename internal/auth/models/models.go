// Package models holds the identity types shared by the auth service and
// its stores.
package models

import (
	"github.com/google/uuid"

	dErrors "classroom/pkg/domain-errors"
)

// Role classifies what a user may do once authenticated.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return true
	}
	return false
}

// User is the stored identity record. PasswordHash is the opaque output of
// the slow hash; the plaintext secret never reaches this struct.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	Surname      string
	Patronymic   string // optional, empty when absent
	Role         Role
	PasswordHash []byte
}

// RegisterRequest carries the fields of a signup. Password is the transient
// plaintext; the service hashes it and discards it.
type RegisterRequest struct {
	Email      string
	Name       string
	Surname    string
	Patronymic string
	Role       Role
	Password   string
}

// Validate rejects structurally invalid signups before any work is done.
func (r *RegisterRequest) Validate() error {
	switch {
	case r.Email == "":
		return dErrors.New(dErrors.CodeBadRequest, "email is required")
	case r.Password == "":
		return dErrors.New(dErrors.CodeBadRequest, "password is required")
	case r.Name == "" || r.Surname == "":
		return dErrors.New(dErrors.CodeBadRequest, "name and surname are required")
	case !r.Role.Valid():
		return dErrors.New(dErrors.CodeBadRequest, "unknown role")
	}
	return nil
}
