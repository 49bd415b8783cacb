package repository

import (
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestMapUniqueViolation(t *testing.T) {
	if err := mapUniqueViolation(nil); err != nil {
		t.Fatalf("expected nil passthrough, got %v", err)
	}

	emailErr := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "accounts_email_key"}
	if err := mapUniqueViolation(emailErr); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	usernameErr := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "accounts_username_key"}
	if err := mapUniqueViolation(usernameErr); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}

	other := errors.New("connection refused")
	if err := mapUniqueViolation(other); !errors.Is(err, other) {
		t.Fatalf("expected passthrough, got %v", err)
	}
}
