package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	portsrepo "github.com/Hanifzan/auth_acl_app/internal/core/ports/repositories"

	"github.com/Hanifzan/auth_acl_app/internal/apperrors"
	"github.com/Hanifzan/auth_acl_app/internal/core/domain"
	"github.com/Hanifzan/auth_acl_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxRefreshTokenRepository struct {
	db *pgxpool.Pool
}

func NewRefreshTokenRepository(db *pgxpool.Pool) portsrepo.RefreshTokenRepository {
	return &PgxRefreshTokenRepository{db: db}
}

var _ portsrepo.RefreshTokenRepository = (*PgxRefreshTokenRepository)(nil)

func (r *PgxRefreshTokenRepository) SaveRefreshToken(ctx context.Context, token domain.RefreshToken) error {
	query := `
        INSERT INTO refresh_tokens (refresh_token_id, user_id, token_hash, expired, expires_at, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.db.Exec(ctx, query,
		token.RefreshTokenID,
		token.UserID,
		token.TokenHash,
		token.Expired,
		token.ExpiresAt,
		token.CreatedAt,
		token.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}
	return nil
}

func (r *PgxRefreshTokenRepository) FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	query := `
		SELECT refresh_token_id, user_id, token_hash, expired, expires_at, created_at, last_updated_at
		FROM refresh_tokens
		WHERE token_hash = $1;
	`
	var m models.RefreshToken
	err := r.db.QueryRow(ctx, query, tokenHash).Scan(
		&m.RefreshTokenID,
		&m.UserID,
		&m.TokenHash,
		&m.Expired,
		&m.ExpiresAt,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find refresh token: %w", err)
	}

	token := domain.RefreshToken{
		RefreshTokenID: m.RefreshTokenID,
		UserID:         m.UserID,
		TokenHash:      m.TokenHash,
		Expired:        m.Expired,
		ExpiresAt:      m.ExpiresAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
	return &token, nil
}

func (r *PgxRefreshTokenRepository) MarkRefreshTokenExpired(ctx context.Context, tokenHash string) error {
	query := `
        UPDATE refresh_tokens
        SET expired = TRUE, last_updated_at = $2
        WHERE token_hash = $1;
    `
	tag, err := r.db.Exec(ctx, query, tokenHash, time.Now())
	if err != nil {
		return fmt.Errorf("failed to mark refresh token expired: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
