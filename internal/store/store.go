package store

import (
	"github.com/shenikar/firewatcher_client/internal/models"
)

// Ключи персистентного состояния сессии
const (
	AccessTokenKey  = "firewatcher.access_token"
	RefreshTokenKey = "firewatcher.refresh_token"
	UserKey         = "firewatcher.user"
)

// Tokens - пара токенов, сохраняемая между перезапусками
type Tokens struct {
	Access  string
	Refresh string
}

// SessionStore определяет контракт персистентного хранилища сессии.
// GetTokens и GetUser возвращают nil без ошибки, когда данных нет;
// поврежденная запись пользователя молча отбрасывается.
type SessionStore interface {
	SetTokens(tokens Tokens) error
	GetTokens() (*Tokens, error)
	ClearTokens() error

	SetUser(user models.User) error
	GetUser() (*models.User, error)
	ClearUser() error

	// AccessToken реализует transport.TokenSource
	AccessToken() string

	Close() error
}
