package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/xxxdendexxx/10x-cards/internal/auth"
	"github.com/xxxdendexxx/10x-cards/internal/domain"
)

// Refresh performs token rotation and returns new access/refresh tokens.
// Revocation of the old token and storage of the new one happen in one
// transaction. Unknown, revoked or expired tokens and deleted users all
// return ErrUnauthorized.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash := auth.HashToken(input.RefreshToken)

	var result *AuthResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		token, err := s.tokens.GetByHash(txCtx, hash)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				s.log.WarnContext(ctx, "refresh token reuse attempted")
				return domain.ErrUnauthorized
			}
			return fmt.Errorf("get token: %w", err)
		}

		if token.IsRevoked() || token.IsExpired(time.Now()) {
			return domain.ErrUnauthorized
		}

		user, err := s.users.GetByID(txCtx, token.UserID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				s.log.WarnContext(ctx, "refresh for deleted user",
					slog.String("user_id", token.UserID.String()))
				return domain.ErrUnauthorized
			}
			return fmt.Errorf("get user: %w", err)
		}

		if err := s.tokens.RevokeByID(txCtx, token.ID); err != nil {
			return fmt.Errorf("revoke token: %w", err)
		}

		result, err = s.issueTokens(txCtx, user)
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh: %w", err)
	}
	return result, nil
}
