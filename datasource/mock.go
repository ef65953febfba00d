package datasource

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"matsal-partner-api/entity"
)

type mockCredential struct {
	user entity.User
	hash []byte
}

// MockSource serves deep copies of the seed dataset. An optional delay
// simulates the round-trip a remote source would take; zero means
// immediate.
type MockSource struct {
	delay time.Duration
	creds []mockCredential
}

func NewMockSource(delay time.Duration) *MockSource {
	s := &MockSource{delay: delay}
	for _, su := range seedUsers() {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.password), bcrypt.DefaultCost)
		if err != nil {
			continue
		}
		s.creds = append(s.creds, mockCredential{user: su.user, hash: hash})
	}
	return s
}

func (s *MockSource) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	select {
	case <-time.After(s.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *MockSource) LoadOrders(ctx context.Context) ([]entity.Order, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	// seedOrders builds fresh values each call, so callers own the result
	return seedOrders(), nil
}

func (s *MockSource) LoadMenu(ctx context.Context) (*MenuSnapshot, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return seedMenu(), nil
}

func (s *MockSource) LoadRestaurant(ctx context.Context) (*entity.RestaurantProfile, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return seedRestaurant(), nil
}

func (s *MockSource) SaveRestaurant(ctx context.Context, _ *entity.RestaurantProfile) error {
	// in-memory state is authoritative in mock mode, nothing to persist
	return s.wait(ctx)
}

func (s *MockSource) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	email = strings.ToLower(strings.TrimSpace(email))
	for _, c := range s.creds {
		if c.user.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword(c.hash, []byte(password)) != nil {
			return nil, ErrInvalidCredentials
		}
		u := c.user
		return &u, nil
	}
	return nil, ErrInvalidCredentials
}
