package sqlite

import (
	"context"
	"time"

	"github.com/edukita/accounts/internal/accounts/domain"
)

type passwordResetsRepo struct {
	db dbtx
}

func (r *passwordResetsRepo) UpsertPasswordReset(
	ctx context.Context,
	p domain.PasswordReset,
) error {
	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO password_reset_tokens (email, token_hash, created_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT (email) DO UPDATE SET token_hash = excluded.token_hash,
		                                   created_at = excluded.created_at`,
		p.Email, p.TokenHash, createdAt)
	return err
}

func (r *passwordResetsRepo) GetPasswordResetByEmail(
	ctx context.Context,
	email string,
) (domain.PasswordReset, error) {
	var p domain.PasswordReset
	err := r.db.QueryRowContext(ctx,
		`SELECT email, token_hash, created_at
		 FROM password_reset_tokens WHERE email = ?`, email).
		Scan(&p.Email, &p.TokenHash, &p.CreatedAt)
	if err != nil {
		return domain.PasswordReset{}, mapNotFound(err)
	}
	return p, nil
}

func (r *passwordResetsRepo) DeletePasswordReset(ctx context.Context, email string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM password_reset_tokens WHERE email = ?`, email)
	return err
}

func (r *passwordResetsRepo) DeleteExpiredPasswordResets(
	ctx context.Context,
	before time.Time,
) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM password_reset_tokens WHERE created_at < ?`, before)
	return err
}
