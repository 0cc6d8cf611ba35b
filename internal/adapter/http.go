package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/Infogain-GenAI/sample-app1/internal/config"
	"github.com/Infogain-GenAI/sample-app1/internal/logger"
	"github.com/Infogain-GenAI/sample-app1/internal/utils"
	"github.com/Infogain-GenAI/sample-app1/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter builds a [ServerAdapter] for the server at
// cfg.HTTPAddress. A bare host:port gets the http scheme.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// AddUser posts a new record to POST /api/users.
func (h *httpServerAdapter) AddUser(ctx context.Context, name, email string) bool {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.User{Name: name, Email: email}).
		Post("/api/users")
	if err = h.check(resp, err); err != nil {
		h.logFailure("AddUser", err)
		return false
	}

	return true
}

func (h *httpServerAdapter) GetUser(ctx context.Context, name string) (models.User, bool) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("name", name).
		SetResult(&user).
		Get("/api/users/{name}")
	if err = h.check(resp, err); err != nil {
		h.logFailure("GetUser", err)
		return models.User{}, false
	}

	return user, true
}

func (h *httpServerAdapter) FindUserByEmail(ctx context.Context, email string) (models.User, bool) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("email", email).
		SetResult(&user).
		Get("/api/users")
	if err = h.check(resp, err); err != nil {
		h.logFailure("FindUserByEmail", err)
		return models.User{}, false
	}

	return user, true
}

func (h *httpServerAdapter) UpdateUser(ctx context.Context, name, email string) bool {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("name", name).
		SetBody(models.UserEmailUpdate{Email: email}).
		Put("/api/users/{name}")
	if err = h.check(resp, err); err != nil {
		h.logFailure("UpdateUser", err)
		return false
	}

	return true
}

func (h *httpServerAdapter) DeleteUser(ctx context.Context, name string) bool {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("name", name).
		Delete("/api/users/{name}")
	if err = h.check(resp, err); err != nil {
		h.logFailure("DeleteUser", err)
		return false
	}

	return true
}

// GetAllUsers reports ok=false when the server cannot list users, which
// includes the 503 answered while listing is disabled.
func (h *httpServerAdapter) GetAllUsers(ctx context.Context) ([]models.User, bool) {
	users := []models.User{}

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&users).
		Get("/api/users")
	if err = h.check(resp, err); err != nil {
		h.logFailure("GetAllUsers", err)
		return nil, false
	}

	if users == nil {
		users = []models.User{}
	}
	return users, true
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err = h.check(resp, err); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// check turns a transport error or a non-2xx answer into an error.
func (h *httpServerAdapter) check(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	return mapHTTPError(resp)
}

// logFailure logs at debug level for absent records and at error level for
// everything else.
func (h *httpServerAdapter) logFailure(op string, err error) {
	event := h.logger.Error()
	if errors.Is(err, ErrNotFound) {
		event = h.logger.Debug()
	}
	event.Err(err).Str("func", "*httpServerAdapter."+op).Msg("server request failed")
}
