package store

import (
	"encoding/json"
	"sync"

	"github.com/shenikar/firewatcher_client/internal/models"
)

// MemoryStore - реализация SessionStore в памяти. Используется в тестах
// и как хранилище для эфемерных сессий без файла на диске.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore создает пустое хранилище в памяти
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// SetTokens сохраняет пару токенов
func (s *MemoryStore) SetTokens(tokens Tokens) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[AccessTokenKey] = tokens.Access
	s.values[RefreshTokenKey] = tokens.Refresh
	return nil
}

// GetTokens возвращает сохраненную пару токенов или nil
func (s *MemoryStore) GetTokens() (*Tokens, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	access := s.values[AccessTokenKey]
	refresh := s.values[RefreshTokenKey]
	if access == "" || refresh == "" {
		return nil, nil
	}
	return &Tokens{Access: access, Refresh: refresh}, nil
}

// ClearTokens удаляет токены
func (s *MemoryStore) ClearTokens() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, AccessTokenKey)
	delete(s.values, RefreshTokenKey)
	return nil
}

// SetUser сохраняет профиль пользователя
func (s *MemoryStore) SetUser(user models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[UserKey] = string(raw)
	return nil
}

// GetUser возвращает сохраненный профиль; поврежденная запись отбрасывается
func (s *MemoryStore) GetUser() (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw := s.values[UserKey]
	if raw == "" {
		return nil, nil
	}
	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		delete(s.values, UserKey)
		return nil, nil
	}
	return &user, nil
}

// ClearUser удаляет сохраненный профиль
func (s *MemoryStore) ClearUser() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, UserKey)
	return nil
}

// AccessToken возвращает access-токен или пустую строку
func (s *MemoryStore) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[AccessTokenKey]
}

// Close ничего не делает для хранилища в памяти
func (s *MemoryStore) Close() error {
	return nil
}

var _ SessionStore = (*MemoryStore)(nil)
