package identity

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

const usersMigration = `
CREATE EXTENSION IF NOT EXISTS "pgcrypto";

CREATE TABLE IF NOT EXISTS users (
    id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    email text NOT NULL,
    name text NOT NULL,
    avatar_url text,
    role text NOT NULL DEFAULT 'citizen',
    created_at timestamptz NOT NULL DEFAULT NOW(),
    updated_at timestamptz NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS users_email_lower_unique
ON users (LOWER(email));
`

// PostgresStore is the canonical user store.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates the users table. Safe to run on every startup.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, usersMigration); err != nil {
		return fmt.Errorf("identity: migrate users: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	var (
		u  User
		id uuid.UUID
	)

	err := s.db.QueryRowContext(ctx, `
		SELECT id, email, name, avatar_url, role, created_at, updated_at
		FROM users
		WHERE LOWER(email) = LOWER($1)
	`, email).Scan(&id, &u.Email, &u.Name, &u.AvatarURL, &u.Role, &u.CreatedAt, &u.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	u.ID = id.String()
	return &u, nil
}

func (s *PostgresStore) Create(ctx context.Context, u *User) error {
	var id uuid.UUID

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (email, name, avatar_url, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, u.Email, u.Name, u.AvatarURL, u.Role).Scan(&id, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		return err
	}

	u.ID = id.String()
	return nil
}

func (s *PostgresStore) UpdateProfile(ctx context.Context, u *User) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE users
		SET name = $2, avatar_url = $3, updated_at = NOW()
		WHERE id = $1
	`, u.ID, u.Name, u.AvatarURL)

	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
