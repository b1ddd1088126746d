package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Souvik9205/KomyuLink/internal/db"

	"github.com/lib/pq"
)

const pqUniqueViolation = "23505"

// PostgresDirectory is the canonical Directory backed by the users table.
type PostgresDirectory struct {
	db *db.DB
}

func NewPostgresDirectory(db *db.DB) *PostgresDirectory {
	return &PostgresDirectory{db: db}
}

func (d *PostgresDirectory) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := d.db.QueryRowContext(ctx, `
		SELECT id, email, password_hash, name, auth_provider, created_at
		FROM users
		WHERE email = $1
	`, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.AuthProvider, &u.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (d *PostgresDirectory) Create(ctx context.Context, n NewUser) (*User, error) {
	u := User{
		Email:        n.Email,
		PasswordHash: n.PasswordHash,
		Name:         n.Name,
		AuthProvider: n.AuthProvider,
	}

	err := d.db.QueryRowContext(ctx, `
		INSERT INTO users (email, password_hash, name, auth_provider)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, n.Email, n.PasswordHash, n.Name, n.AuthProvider).Scan(&u.ID, &u.CreatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	return &u, nil
}
