package datasource

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"matsal-partner-api/entity"
)

// RemoteSource talks to the platform API over JSON. Responses use the
// same {ok, data} / {ok, error} envelope this service exposes, so a
// partner deployment can front another instance or the real platform
// interchangeably.
type RemoteSource struct {
	baseURL string
	token   string
	client  *http.Client
	log     *zap.Logger
}

func NewRemoteSource(baseURL, token string, log *zap.Logger) *RemoteSource {
	return &RemoteSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: 15 * time.Second},
		log:     log,
	}
}

type envelope struct {
	OK    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func (r *RemoteSource) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	res, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("upstream %s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return fmt.Errorf("upstream %s %s: status %d: %w", method, path, res.StatusCode, err)
	}
	if res.StatusCode >= 400 || !env.OK {
		msg := env.Error
		if msg == "" {
			msg = fmt.Sprintf("HTTP %d", res.StatusCode)
		}
		if res.StatusCode == http.StatusUnauthorized {
			return fmt.Errorf("upstream %s %s: %s: %w", method, path, msg, ErrInvalidCredentials)
		}
		return fmt.Errorf("upstream %s %s: %s", method, path, msg)
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

func (r *RemoteSource) LoadOrders(ctx context.Context) ([]entity.Order, error) {
	var orders []entity.Order
	if err := r.do(ctx, http.MethodGet, "/partner/orders", nil, &orders); err != nil {
		return nil, err
	}
	r.log.Debug("loaded orders from upstream", zap.Int("count", len(orders)))
	return orders, nil
}

func (r *RemoteSource) LoadMenu(ctx context.Context) (*MenuSnapshot, error) {
	var snap MenuSnapshot
	if err := r.do(ctx, http.MethodGet, "/partner/menu", nil, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (r *RemoteSource) LoadRestaurant(ctx context.Context) (*entity.RestaurantProfile, error) {
	var profile entity.RestaurantProfile
	if err := r.do(ctx, http.MethodGet, "/partner/restaurant", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *RemoteSource) SaveRestaurant(ctx context.Context, profile *entity.RestaurantProfile) error {
	return r.do(ctx, http.MethodPut, "/partner/restaurant", profile, nil)
}

func (r *RemoteSource) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	req := map[string]string{"email": email, "password": password}
	var res struct {
		User entity.User `json:"user"`
	}
	if err := r.do(ctx, http.MethodPost, "/auth/login", req, &res); err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return &res.User, nil
}
