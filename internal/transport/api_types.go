package transport

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shenikar/firewatcher_client/internal/models"
)

// Coordinate - координата в ответе бэкенда. Сериализуется как число или как
// строка в зависимости от бэкенда, поэтому разбор принимает оба варианта.
// Некорректное значение дает NaN, а не ошибку разбора.
type Coordinate float64

// UnmarshalJSON реализует разбор числа или строки с числом
func (c *Coordinate) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" || raw == "" {
		*c = Coordinate(math.NaN())
		return nil
	}
	raw = strings.Trim(raw, `"`)
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*c = Coordinate(math.NaN())
		return nil
	}
	*c = Coordinate(value)
	return nil
}

// APIUser - запись пользователя в формате бэкенда
type APIUser struct {
	ID          string          `json:"id"`
	Email       string          `json:"email"`
	Name        string          `json:"name"`
	Phone       string          `json:"phone"`
	UserType    models.UserType `json:"user_type"`
	BadgeNumber string          `json:"badge_number"`
	FireStation string          `json:"fire_station"`
	CreatedAt   string          `json:"created_at"`
}

// APITokens - пара токенов сессии
type APITokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// APIAuthResponse - ответ эндпоинтов логина и регистрации
type APIAuthResponse struct {
	User   APIUser   `json:"user"`
	Tokens APITokens `json:"tokens"`
}

// APIIncidentPhoto - фотография инцидента в формате бэкенда
type APIIncidentPhoto struct {
	ID         string `json:"id"`
	Image      string `json:"image"`
	UploadedAt string `json:"uploaded_at"`
}

// APIStatusUpdate - запись об изменении статуса в формате бэкенда.
// UpdatedBy может отсутствовать, если переход выполнен системой.
type APIStatusUpdate struct {
	ID        string                `json:"id"`
	Status    models.IncidentStatus `json:"status"`
	UpdatedBy *APIUser              `json:"updated_by"`
	Notes     string                `json:"notes"`
	Timestamp string                `json:"timestamp"`
}

// APIIncident - инцидент в формате бэкенда
type APIIncident struct {
	ID            string                `json:"id"`
	Reporter      *APIUser              `json:"reporter"`
	ReporterName  string                `json:"reporter_name"`
	ReporterPhone string                `json:"reporter_phone"`
	Lat           Coordinate            `json:"lat"`
	Lng           Coordinate            `json:"lng"`
	Address       string                `json:"address"`
	Description   string                `json:"description"`
	Status        models.IncidentStatus `json:"status"`
	Photos        []APIIncidentPhoto    `json:"photos"`
	StatusUpdates []APIStatusUpdate     `json:"status_updates"`
	CreatedAt     string                `json:"created_at"`
	UpdatedAt     string                `json:"updated_at"`
}

// APIDashboardStats - серверная статистика панели
type APIDashboardStats struct {
	New      int `json:"new"`
	Active   int `json:"active"`
	Resolved int `json:"resolved"`
	Total    int `json:"total"`
}

// PaginatedIncidents - постраничный конверт списка инцидентов
type PaginatedIncidents struct {
	Count    int           `json:"count"`
	Next     *string       `json:"next"`
	Previous *string       `json:"previous"`
	Results  []APIIncident `json:"results"`
}

// LoginRequest - тело запроса логина
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest - тело запроса регистрации. Бэкенд требует наличия ключей
// badge_number и fire_station даже для пустых значений.
type RegisterRequest struct {
	Email           string          `json:"email"`
	Name            string          `json:"name"`
	Phone           string          `json:"phone"`
	Password        string          `json:"password"`
	PasswordConfirm string          `json:"password_confirm"`
	UserType        models.UserType `json:"user_type"`
	BadgeNumber     string          `json:"badge_number"`
	FireStation     string          `json:"fire_station"`
}

// CreateIncidentRequest - тело запроса создания инцидента
type CreateIncidentRequest struct {
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
	Address       string  `json:"address"`
	Description   string  `json:"description"`
	ReporterName  string  `json:"reporter_name"`
	ReporterPhone string  `json:"reporter_phone"`
}

// StatusUpdateRequest - тело запроса смены статуса. Notes опускается, если пусто.
type StatusUpdateRequest struct {
	Status models.IncidentStatus `json:"status"`
	Notes  string                `json:"notes,omitempty"`
}

// LogoutRequest - тело запроса выхода
type LogoutRequest struct {
	Refresh string `json:"refresh"`
}

var _ json.Unmarshaler = (*Coordinate)(nil)
