package pgx

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/gateward/gateward/core"
)

func (a *Adapter) EmailExists(ctx context.Context, email string) (bool, error) {
	q := `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	if err := a.db.QueryRow(ctx, q, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}

func (a *Adapter) Create(ctx context.Context, user *core.User) error {
	q := `INSERT INTO users (name, email, password_hash, role) VALUES ($1, $2, $3, $4) RETURNING id, created_at`

	err := a.db.QueryRow(ctx, q, user.Name, user.Email, user.PasswordHash, user.Role).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		// The unique constraint on email is the authoritative duplicate
		// detector; concurrent signups that both passed the pre-check end
		// up here.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return core.ErrEmailTaken
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (a *Adapter) GetByEmail(ctx context.Context, email string) (*core.User, error) {
	q := `SELECT id, name, email, password_hash, role, created_at FROM users WHERE email = $1`

	user := &core.User{}
	err := a.db.QueryRow(ctx, q, email).
		Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}
