package ports

import (
	"context"

	"github.com/google/uuid"
)

type TokenPair struct {
	Access  string
	Refresh string
}

// TokenService mints and verifies the signed bearer tokens used on the API.
// Tokens are stateless; verification never touches storage.
type TokenService interface {
	Issue(userID uuid.UUID) (*TokenPair, error)
	Verify(token string) (uuid.UUID, error)
	VerifyRefresh(token string) (uuid.UUID, error)
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*TokenPair, error)
	Login(ctx context.Context, username, password string) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
}
