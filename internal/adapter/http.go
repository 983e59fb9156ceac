package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

// SessionCookieName is the cookie the server keeps the session token in.
const SessionCookieName = "token"

type httpServerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the resty implementation of
// [ServerAdapter]. It normalises adapterCfg.HTTPAddress into a base URL; a
// scheme-less address is treated as http.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	timeout := adapterCfg.RequestTimeout
	if timeout <= 0 {
		timeout = config.DefaultClientRequestTimeout
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
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

func (h *httpServerAdapter) SessionCookie() *http.Cookie {
	return h.client.Cookie(SessionCookieName)
}

func (h *httpServerAdapter) SetSessionCookie(cookie *http.Cookie) {
	if cookie == nil || cookie.Value == "" {
		return
	}
	h.client.SetSessionCookie(cookie)
}

func (h *httpServerAdapter) Register(ctx context.Context, request models.RegisterRequest) (models.AuthenticatedUser, error) {
	var response models.Response
	resp, err := h.request(ctx).
		SetBody(request).
		SetResult(&response).
		Post("/api/auth/register")
	if err = h.check(resp, err, "register"); err != nil {
		return models.AuthenticatedUser{}, err
	}

	return userFrom(response)
}

func (h *httpServerAdapter) Login(ctx context.Context, request models.LoginRequest) (models.AuthenticatedUser, error) {
	var response models.Response
	resp, err := h.request(ctx).
		SetBody(request).
		SetResult(&response).
		Post("/api/auth/login")
	if err = h.check(resp, err, "login"); err != nil {
		return models.AuthenticatedUser{}, err
	}

	return userFrom(response)
}

func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.request(ctx).Post("/api/auth/logout")
	return h.check(resp, err, "logout")
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.AuthenticatedUser, error) {
	var response models.Response
	resp, err := h.request(ctx).
		SetResult(&response).
		Get("/api/auth/me")
	if err = h.check(resp, err, "me"); err != nil {
		return models.AuthenticatedUser{}, err
	}

	return userFrom(response)
}

func (h *httpServerAdapter) ListTasks(ctx context.Context, filter models.TaskFilter) (models.TaskListResponse, error) {
	query := url.Values{}
	if filter.Page > 0 {
		query.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}

	var response models.TaskListResponse
	resp, err := h.request(ctx).
		SetQueryParamsFromValues(query).
		SetResult(&response).
		Get("/api/tasks")
	if err = h.check(resp, err, "list tasks"); err != nil {
		return models.TaskListResponse{}, err
	}

	return response, nil
}

func (h *httpServerAdapter) CreateTask(ctx context.Context, request models.CreateTaskRequest) (models.Task, error) {
	var response models.Response
	resp, err := h.request(ctx).
		SetBody(request).
		SetResult(&response).
		Post("/api/tasks")
	if err = h.check(resp, err, "create task"); err != nil {
		return models.Task{}, err
	}

	return taskFrom(response)
}

func (h *httpServerAdapter) GetTask(ctx context.Context, taskID string) (models.Task, error) {
	var response models.Response
	resp, err := h.request(ctx).
		SetPathParam("id", taskID).
		SetResult(&response).
		Get("/api/tasks/{id}")
	if err = h.check(resp, err, "get task"); err != nil {
		return models.Task{}, err
	}

	return taskFrom(response)
}

func (h *httpServerAdapter) UpdateTask(ctx context.Context, taskID string, update models.TaskUpdate) (models.Task, error) {
	var response models.Response
	resp, err := h.request(ctx).
		SetPathParam("id", taskID).
		SetBody(update).
		SetResult(&response).
		Put("/api/tasks/{id}")
	if err = h.check(resp, err, "update task"); err != nil {
		return models.Task{}, err
	}

	return taskFrom(response)
}

func (h *httpServerAdapter) DeleteTask(ctx context.Context, taskID string) error {
	resp, err := h.request(ctx).
		SetPathParam("id", taskID).
		Delete("/api/tasks/{id}")
	return h.check(resp, err, "delete task")
}

func (h *httpServerAdapter) Health(ctx context.Context) error {
	resp, err := h.request(ctx).Get("/api/health")
	return h.check(resp, err, "health")
}

func (h *httpServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	var response struct {
		Version string `json:"version"`
	}
	resp, err := h.request(ctx).
		SetResult(&response).
		Get("/api/version")
	if err = h.check(resp, err, "version"); err != nil {
		return "", err
	}

	return response.Version, nil
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

// check folds a transport error and a non-2xx status into one error and logs
// the call.
func (h *httpServerAdapter) check(resp *resty.Response, err error, op string) error {
	if err != nil {
		h.logger.Err(err).Str("op", op).Msg("request failed")
		return fmt.Errorf("%s request: %w", op, err)
	}

	log := h.logger.Debug().
		Str("op", op).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time().Round(time.Millisecond))
	if traceID := resp.Header().Get("X-Trace-ID"); traceID != "" {
		log = log.Str("trace_id", traceID)
	}
	log.Send()

	return mapHTTPError(resp)
}

func userFrom(response models.Response) (models.AuthenticatedUser, error) {
	if response.User == nil {
		return models.AuthenticatedUser{}, fmt.Errorf("%w: user is missing", ErrInvalidResponse)
	}
	return *response.User, nil
}

func taskFrom(response models.Response) (models.Task, error) {
	if response.Task == nil {
		return models.Task{}, fmt.Errorf("%w: task is missing", ErrInvalidResponse)
	}
	return *response.Task, nil
}
