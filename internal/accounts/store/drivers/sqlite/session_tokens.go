package sqlite

import (
	"context"
	"time"

	"github.com/edukita/accounts/internal/accounts/domain"
)

type sessionTokensRepo struct {
	db dbtx
}

func (r *sessionTokensRepo) CreateSessionToken(ctx context.Context, t domain.SessionToken) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO session_tokens (id, user_id, token_hash, label, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		t.ID, t.UserID, t.TokenHash, t.Label, time.Now().UTC())
	return mapConstraint(err)
}

func (r *sessionTokensRepo) GetSessionTokenByHash(
	ctx context.Context,
	hash string,
) (domain.SessionToken, error) {
	var t domain.SessionToken
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, token_hash, label, created_at
		 FROM session_tokens WHERE token_hash = ?`, hash).
		Scan(&t.ID, &t.UserID, &t.TokenHash, &t.Label, &t.CreatedAt)
	if err != nil {
		return domain.SessionToken{}, mapNotFound(err)
	}
	return t, nil
}

func (r *sessionTokensRepo) DeleteSessionTokenByHash(ctx context.Context, hash string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM session_tokens WHERE token_hash = ?`, hash)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}
