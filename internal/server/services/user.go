package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/studyhub/internal/common"
	"github.com/dmitrijs2005/studyhub/internal/cryptox"
	"github.com/dmitrijs2005/studyhub/internal/dbx"
	"github.com/dmitrijs2005/studyhub/internal/server/auth"
	"github.com/dmitrijs2005/studyhub/internal/server/config"
	"github.com/dmitrijs2005/studyhub/internal/server/models"
	"github.com/dmitrijs2005/studyhub/internal/server/repositories/repomanager"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Session is the result of a successful login.
type Session struct {
	User   *models.User
	Tokens *TokenPair
}

// dummyHash is verified for unknown emails so that both failure paths of
// Authenticate cost one key derivation.
var dummyHash = sync.OnceValue(func() string { return cryptox.HashPassword("studyhub-no-such-user") })

// UserService owns the identity store: registration, credential checks,
// token issuing and rotation, and username changes.
type UserService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                           db,
		repomanager:                  m,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

// Register creates a user. Taken usernames or emails yield
// *common.DuplicateError. The existence checks give a friendly answer in the
// common case; the unique constraints decide races between concurrent
// registrations.
func (s *UserService) Register(ctx context.Context, in models.RegisterInput) (*models.User, error) {
	in.Normalize()
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	repo := s.repomanager.Users(s.db)

	taken, err := repo.UsernameExists(ctx, in.Username)
	if err != nil {
		return nil, fmt.Errorf("error checking username: %w", err)
	}
	if taken {
		return nil, &common.DuplicateError{Field: "username"}
	}

	taken, err = repo.EmailExists(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if taken {
		return nil, &common.DuplicateError{Field: "email"}
	}

	user := &models.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: cryptox.HashPassword(in.Password),
	}
	u, err := repo.Create(ctx, user)
	if err != nil {
		var dup *common.DuplicateError
		if errors.As(err, &dup) {
			return nil, dup
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Authenticate returns the user matching the credentials. Unknown email and
// wrong password both yield common.ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, in models.LoginInput) (*models.User, error) {
	in.Normalize()
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_, _ = cryptox.VerifyPassword(dummyHash(), in.Password)
			return nil, common.ErrInvalidCredentials
		}
		return nil, common.ErrorInternal
	}

	ok, err := cryptox.VerifyPassword(user.PasswordHash, in.Password)
	if err != nil {
		return nil, common.ErrorInternal
	}
	if !ok {
		return nil, common.ErrInvalidCredentials
	}
	return user, nil
}

// Login authenticates and issues a new TokenPair.
func (s *UserService) Login(ctx context.Context, in models.LoginInput) (*Session, error) {
	user, err := s.Authenticate(ctx, in)
	if err != nil {
		return nil, err
	}
	pair, err := s.generateTokenPair(ctx, user.ID, s.db)
	if err != nil {
		return nil, err
	}
	return &Session{User: user, Tokens: pair}, nil
}

// RefreshToken redeems a refresh token and returns a fresh TokenPair. The
// old token is consumed in the same transaction that stores the new one, so
// a token can be redeemed at most once. Unknown or already used tokens yield
// common.ErrInvalidToken and expired ones common.ErrRefreshTokenExpired.
func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	var pair *TokenPair
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		token, err := s.repomanager.RefreshTokens(tx).Consume(ctx, refreshToken)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrInvalidToken
			}
			return fmt.Errorf("error consuming refresh token: %w", err)
		}
		if token.Expires.Before(now()) {
			return common.ErrRefreshTokenExpired
		}

		pair, err = s.generateTokenPair(ctx, token.UserID, tx)
		return err
	}); err != nil {
		return nil, err
	}
	return pair, nil
}

// Logout revokes a refresh token.
func (s *UserService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	if err := s.repomanager.RefreshTokens(s.db).Delete(ctx, refreshToken); err != nil {
		return fmt.Errorf("error deleting refresh token: %w", err)
	}
	return nil
}

func (s *UserService) GetUser(ctx context.Context, actor models.Actor) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, actor.UserID)
}

// UpdateUsername changes the actor's username, keeping it unique.
func (s *UserService) UpdateUsername(ctx context.Context, actor models.Actor, in models.UpdateUsernameInput) (*models.User, error) {
	in.Normalize()
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if user.Username == in.Username {
		return user, nil
	}

	taken, err := repo.UsernameExists(ctx, in.Username)
	if err != nil {
		return nil, fmt.Errorf("error checking username: %w", err)
	}
	if taken {
		return nil, &common.DuplicateError{Field: "username"}
	}

	return repo.UpdateUsername(ctx, actor.UserID, in.Username)
}

func (s *UserService) generateTokenPair(ctx context.Context, userID int64, db dbx.DBTX) (*TokenPair, error) {
	access, err := auth.GenerateToken(userID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := common.MakeRandHexString(32)
	if err != nil {
		return nil, common.ErrorInternal
	}
	if err := s.repomanager.RefreshTokens(db).Create(ctx, userID, refresh, now().Add(s.refreshTokenValidityDuration)); err != nil {
		return nil, common.ErrorInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
