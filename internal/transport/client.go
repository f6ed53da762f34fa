package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// TokenSource отдает текущий access-токен или пустую строку, если сессии нет
type TokenSource interface {
	AccessToken() string
}

//go:generate mockgen -destination=mocks/mock_api.go -package=mocks github.com/shenikar/firewatcher_client/internal/transport API

// API определяет контракт бэкенда для менеджеров сессии и инцидентов
type API interface {
	Login(ctx context.Context, email, password string) (*APIAuthResponse, error)
	Register(ctx context.Context, payload RegisterRequest) (*APIAuthResponse, error)
	CurrentUser(ctx context.Context) (*APIUser, error)
	Logout(ctx context.Context, refresh string) error
	ListIncidents(ctx context.Context) (*PaginatedIncidents, error)
	CreateIncident(ctx context.Context, payload CreateIncidentRequest) (*APIIncident, error)
	IncidentDetail(ctx context.Context, id string) (*APIIncident, error)
	IncidentUpdates(ctx context.Context, id string) ([]APIStatusUpdate, error)
	UpdateIncidentStatus(ctx context.Context, id string, payload StatusUpdateRequest) (*APIIncident, error)
	DashboardStats(ctx context.Context) (*APIDashboardStats, error)
}

// Client - HTTP-клиент бэкенда FireWatcher
type Client struct {
	http   *resty.Client
	tokens TokenSource
	logger *logrus.Logger
}

// Options - параметры создания клиента
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	RetryCount int
}

// NewClient создает клиент бэкенда
func NewClient(opts Options, tokens TokenSource, logger *logrus.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(opts.BaseURL, "/")).
		SetTimeout(opts.Timeout).
		SetRetryCount(opts.RetryCount).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		SetHeader("Accept", "application/json")

	return &Client{
		http:   httpClient,
		tokens: tokens,
		logger: logger,
	}
}

// do выполняет один запрос к бэкенду: сериализует тело, подставляет
// bearer-токен при requiresAuth, разбирает ответ и нормализует ошибки.
// Успешное тело дополнительно декодируется в out, если out не nil.
func (c *Client) do(ctx context.Context, method, path string, body any, requiresAuth bool, out any) error {
	req := c.http.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", uuid.NewString())

	if body != nil {
		req.SetBody(body)
	}

	if requiresAuth {
		if token := c.tokens.AccessToken(); token != "" {
			req.SetAuthToken(token)
		}
	}

	resp, err := req.Execute(method, normalizePath(path))
	if err != nil {
		return fmt.Errorf("transport: %s %s: %w", method, path, err)
	}

	parsed := parseResponseBody(resp.StatusCode(), resp.Header().Get("Content-Type"), resp.Body())

	if resp.IsError() {
		c.logger.WithFields(logrus.Fields{
			"method": method,
			"path":   path,
			"status": resp.StatusCode(),
		}).Debug("API request failed")
		return &APIError{Status: resp.StatusCode(), Data: parsed}
	}

	if out != nil && len(resp.Body()) > 0 && parsed != nil {
		if err := json.Unmarshal(resp.Body(), out); err != nil {
			return fmt.Errorf("transport: %s %s: decode response: %w", method, path, err)
		}
	}
	return nil
}

// parseResponseBody разбирает тело ответа: 204/205 дают nil, JSON разбирается,
// остальное возвращается как текст (nil для пустого)
func parseResponseBody(status int, contentType string, body []byte) any {
	if status == http.StatusNoContent || status == http.StatusResetContent {
		return nil
	}
	if strings.Contains(contentType, "application/json") {
		var parsed any
		if err := json.Unmarshal(body, &parsed); err == nil {
			return parsed
		}
	}
	if len(body) == 0 {
		return nil
	}
	return string(body)
}

// normalizePath гарантирует ведущий слэш пути
func normalizePath(path string) string {
	if strings.HasPrefix(path, "/") {
		return path
	}
	return "/" + path
}

// Login выполняет вход по email и паролю
func (c *Client) Login(ctx context.Context, email, password string) (*APIAuthResponse, error) {
	var out APIAuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/login/", LoginRequest{Email: email, Password: password}, false, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, payload RegisterRequest) (*APIAuthResponse, error) {
	var out APIAuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register/", payload, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CurrentUser возвращает профиль текущего пользователя
func (c *Client) CurrentUser(ctx context.Context) (*APIUser, error) {
	var out APIUser
	if err := c.do(ctx, http.MethodGet, "/auth/me/", nil, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout инвалидирует refresh-токен на сервере
func (c *Client) Logout(ctx context.Context, refresh string) error {
	return c.do(ctx, http.MethodPost, "/auth/logout/", LogoutRequest{Refresh: refresh}, true, nil)
}

// ListIncidents возвращает постраничный список инцидентов
func (c *Client) ListIncidents(ctx context.Context) (*PaginatedIncidents, error) {
	var out PaginatedIncidents
	if err := c.do(ctx, http.MethodGet, "/incidents/", nil, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateIncident создает инцидент. Авторизация подставляется только при
// наличии сохраненного токена: анонимные заявки разрешены.
func (c *Client) CreateIncident(ctx context.Context, payload CreateIncidentRequest) (*APIIncident, error) {
	var out APIIncident
	requiresAuth := c.tokens.AccessToken() != ""
	if err := c.do(ctx, http.MethodPost, "/incidents/", payload, requiresAuth, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// IncidentDetail возвращает полное представление инцидента с историей статусов
func (c *Client) IncidentDetail(ctx context.Context, id string) (*APIIncident, error) {
	var out APIIncident
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/incidents/%s/", id), nil, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// IncidentUpdates возвращает только историю статусов инцидента
func (c *Client) IncidentUpdates(ctx context.Context, id string) ([]APIStatusUpdate, error) {
	var out []APIStatusUpdate
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/incidents/%s/updates/", id), nil, true, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateIncidentStatus переводит инцидент в новый статус
func (c *Client) UpdateIncidentStatus(ctx context.Context, id string, payload StatusUpdateRequest) (*APIIncident, error) {
	var out APIIncident
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/incidents/%s/status/", id), payload, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DashboardStats возвращает серверную статистику панели
func (c *Client) DashboardStats(ctx context.Context) (*APIDashboardStats, error) {
	var out APIDashboardStats
	if err := c.do(ctx, http.MethodGet, "/dashboard/stats/", nil, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

var _ API = (*Client)(nil)
