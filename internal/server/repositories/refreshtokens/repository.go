// Package refreshtokens declares the server-side repository contract for
// managing refresh tokens in persistent storage.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/studyhub/internal/server/models"
)

// Repository stores refresh tokens and redeems them at most once.
type Repository interface {
	// Create stores a new refresh token for userID that expires at expiresAt.
	Create(ctx context.Context, userID int64, token string, expiresAt time.Time) error

	// Consume deletes a refresh token and returns the deleted row, so only
	// one caller can ever redeem a given token. It returns
	// common.ErrorNotFound when the token is absent or already consumed.
	Consume(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete removes a refresh token. Deleting an absent token is not an error.
	Delete(ctx context.Context, token string) error
}
