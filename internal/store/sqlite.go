package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/shenikar/firewatcher_client/internal/models"
)

// sessionRecord - строка таблицы ключ-значение
type sessionRecord struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value string `gorm:"column:value"`
}

// TableName задает имя таблицы сессии
func (sessionRecord) TableName() string {
	return "session_records"
}

// SQLiteStore - реализация SessionStore поверх локального файла SQLite
type SQLiteStore struct {
	db *gorm.DB
}

// NewSQLiteStore открывает (или создает) файл сессии и применяет схему
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("store: failed to open session db: %w", err)
	}

	if err := db.AutoMigrate(&sessionRecord{}); err != nil {
		return nil, fmt.Errorf("store: failed to migrate session db: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// get возвращает значение по ключу; пустая строка - ключ отсутствует
func (s *SQLiteStore) get(key string) (string, error) {
	var record sessionRecord
	err := s.db.First(&record, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("store: failed to read key %s: %w", key, err)
	}
	return record.Value, nil
}

// set сохраняет значение по ключу, перезаписывая существующее
func (s *SQLiteStore) set(key, value string) error {
	record := sessionRecord{Key: key, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("store: failed to write key %s: %w", key, err)
	}
	return nil
}

// remove удаляет ключ; отсутствие ключа не ошибка
func (s *SQLiteStore) remove(keys ...string) error {
	if err := s.db.Delete(&sessionRecord{}, "key IN ?", keys).Error; err != nil {
		return fmt.Errorf("store: failed to delete keys: %w", err)
	}
	return nil
}

// SetTokens сохраняет пару токенов
func (s *SQLiteStore) SetTokens(tokens Tokens) error {
	if err := s.set(AccessTokenKey, tokens.Access); err != nil {
		return err
	}
	return s.set(RefreshTokenKey, tokens.Refresh)
}

// GetTokens возвращает сохраненную пару токенов или nil, если хотя бы один отсутствует
func (s *SQLiteStore) GetTokens() (*Tokens, error) {
	access, err := s.get(AccessTokenKey)
	if err != nil {
		return nil, err
	}
	refresh, err := s.get(RefreshTokenKey)
	if err != nil {
		return nil, err
	}
	if access == "" || refresh == "" {
		return nil, nil
	}
	return &Tokens{Access: access, Refresh: refresh}, nil
}

// ClearTokens удаляет сохраненные токены
func (s *SQLiteStore) ClearTokens() error {
	return s.remove(AccessTokenKey, RefreshTokenKey)
}

// SetUser сохраняет профиль пользователя в JSON с датами в ISO-формате
func (s *SQLiteStore) SetUser(user models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("store: failed to marshal user: %w", err)
	}
	return s.set(UserKey, string(raw))
}

// GetUser возвращает сохраненный профиль. Поврежденная запись удаляется
// и трактуется как отсутствие пользователя.
func (s *SQLiteStore) GetUser() (*models.User, error) {
	raw, err := s.get(UserKey)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		_ = s.remove(UserKey)
		return nil, nil
	}
	return &user, nil
}

// ClearUser удаляет сохраненный профиль
func (s *SQLiteStore) ClearUser() error {
	return s.remove(UserKey)
}

// AccessToken возвращает access-токен или пустую строку
func (s *SQLiteStore) AccessToken() string {
	access, err := s.get(AccessTokenKey)
	if err != nil {
		return ""
	}
	return access
}

// Close закрывает соединение с файлом сессии
func (s *SQLiteStore) Close() error {
	db, err := s.db.DB()
	if err != nil {
		return err
	}
	return db.Close()
}

var _ SessionStore = (*SQLiteStore)(nil)
