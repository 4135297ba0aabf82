package services

import (
	"context"
	"log"

	"attendly-api/internal/adapters/persistence/repositories"
	"attendly-api/internal/config"
	"attendly-api/internal/core/domain"
	"attendly-api/internal/pkg/jwt"
	"attendly-api/internal/pkg/password"
)

// AuthService handles authentication against the credential directory
// and owns the persisted session.
type AuthService struct {
	directory repositories.CredentialDirectory
	sessions  repositories.SessionStore
	cfg       *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(
	directory repositories.CredentialDirectory,
	sessions repositories.SessionStore,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		directory: directory,
		sessions:  sessions,
		cfg:       cfg,
	}
}

// LoginInput represents login input
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult represents a successful authentication
type LoginResult struct {
	User        *domain.Identity `json:"user"`
	AccessToken string           `json:"access_token"`
}

// Login authenticates a user against the directory. On success the
// identity is persisted as the current session and an access token is
// issued; on failure nothing is persisted.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginResult, error) {
	// 1. Find directory entry by username
	cred, err := s.directory.FindByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if cred == nil {
		return nil, domain.ErrInvalidCredentials
	}

	// 2. Verify password
	if !password.Verify(input.Password, cred.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	// 3. Persist session
	identity := cred.ToIdentity()
	if err := s.sessions.Save(ctx, identity); err != nil {
		return nil, err
	}

	// 4. Issue access token
	token, err := jwt.GenerateAccessToken(
		identity.UserID,
		identity.Username,
		identity.FullName,
		identity.Role,
		s.cfg.JWT.Secret,
		s.cfg.JWT.AccessTokenMins,
	)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ User logged in: %s", identity.Username)

	return &LoginResult{
		User:        identity,
		AccessToken: token,
	}, nil
}

// Logout clears the persisted session
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return err
	}
	log.Printf("✅ User logged out")
	return nil
}

// CurrentUser returns the persisted identity, or nil when logged out
func (s *AuthService) CurrentUser(ctx context.Context) (*domain.Identity, error) {
	return s.sessions.Current(ctx)
}

// IsAuthenticated reports whether a session is persisted
func (s *AuthService) IsAuthenticated(ctx context.Context) (bool, error) {
	identity, err := s.sessions.Current(ctx)
	if err != nil {
		return false, err
	}
	return identity != nil, nil
}

// IsAdmin reports whether the current session carries the admin role
func (s *AuthService) IsAdmin(ctx context.Context) (bool, error) {
	identity, err := s.sessions.Current(ctx)
	if err != nil {
		return false, err
	}
	return identity.IsAdmin(), nil
}

// ValidateAccessToken validates an access token and returns its claims
func (s *AuthService) ValidateAccessToken(accessToken string) (*jwt.Claims, error) {
	return jwt.ValidateAccessToken(accessToken, s.cfg.JWT.Secret)
}
