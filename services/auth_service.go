package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"matsal-partner-api/datasource"
	"matsal-partner-api/entity"
	"matsal-partner-api/utils"
)

var (
	ErrInvalidCredentials = datasource.ErrInvalidCredentials
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// AuthService exchanges credentials for bearer tokens. User identity
// comes from the data source (canned accounts in mock mode, the
// platform in remote mode); tokens are always minted locally.
type AuthService struct {
	users  datasource.UserSource
	secret string
	ttl    time.Duration
	log    *zap.Logger
}

func NewAuthService(users datasource.UserSource, secret string, ttl time.Duration, log *zap.Logger) *AuthService {
	return &AuthService{users: users, secret: secret, ttl: ttl, log: log}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, datasource.ErrInvalidCredentials) {
			s.log.Warn("login rejected", zap.String("email", email))
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	token, err := utils.GenerateToken(user, s.secret, s.ttl)
	if err != nil {
		return "", nil, err
	}

	s.log.Info("login", zap.String("email", user.Email), zap.String("role", string(user.Role)))
	return token, user, nil
}

// Refresh reissues a token from a still-valid one. An expired token
// cannot be refreshed; the caller falls back to a fresh login.
func (s *AuthService) Refresh(tokenStr string) (string, error) {
	claims, err := utils.ParseToken(tokenStr, s.secret)
	if err != nil {
		return "", ErrInvalidToken
	}
	user := &entity.User{ID: claims.UserID, Email: claims.Email, Name: claims.Name, Role: claims.Role}
	return utils.GenerateToken(user, s.secret, s.ttl)
}

// Verify resolves a token back to the user record it was minted for.
func (s *AuthService) Verify(tokenStr string) (*entity.User, error) {
	claims, err := utils.ParseToken(tokenStr, s.secret)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return &entity.User{ID: claims.UserID, Email: claims.Email, Name: claims.Name, Role: claims.Role}, nil
}
