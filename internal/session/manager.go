package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/firewatcher_client/internal/events"
	"github.com/shenikar/firewatcher_client/internal/mapper"
	"github.com/shenikar/firewatcher_client/internal/models"
	"github.com/shenikar/firewatcher_client/internal/store"
	"github.com/shenikar/firewatcher_client/internal/transport"
)

// State - состояние жизненного цикла сессии
type State string

const (
	StateLoading       State = "loading"
	StateAnonymous     State = "anonymous"
	StateAuthenticated State = "authenticated"
)

// RegisterInput - данные регистрации нового пользователя
type RegisterInput struct {
	Name        string          `validate:"required"`
	Email       string          `validate:"required,email"`
	Phone       string          `validate:"required"`
	Password    string          `validate:"required,min=8"`
	UserType    models.UserType `validate:"omitempty,oneof=public fire_team admin"`
	BadgeNumber string
	FireStation string
}

// Manager владеет жизненным циклом аутентифицированного пользователя:
// вход, регистрация, выход и восстановление сессии при старте. Переходы
// состояния публикуются на шине событий.
type Manager struct {
	api      transport.API
	store    store.SessionStore
	bus      *events.Bus
	logger   *logrus.Logger
	validate *validator.Validate

	mu    sync.RWMutex
	state State
	user  *models.User
}

// NewManager создает менеджер сессии в состоянии loading. Последний известный
// профиль подхватывается из хранилища до обращения к сети.
func NewManager(api transport.API, sessionStore store.SessionStore, bus *events.Bus, logger *logrus.Logger) *Manager {
	user, err := sessionStore.GetUser()
	if err != nil {
		logger.WithError(err).Warn("Failed to read stored user profile")
		user = nil
	}

	return &Manager{
		api:      api,
		store:    sessionStore,
		bus:      bus,
		logger:   logger,
		validate: validator.New(),
		state:    StateLoading,
		user:     user,
	}
}

// Restore восстанавливает сессию при старте. Без сохраненного access-токена
// сессия сразу становится анонимной без сетевого вызова. С токеном профиль
// запрашивается у бэкенда; любая ошибка сбрасывает сохраненную сессию.
func (m *Manager) Restore(ctx context.Context) error {
	log := m.logger.WithFields(logrus.Fields{
		"component": "session",
		"method":    "Restore",
	})

	tokens, err := m.store.GetTokens()
	if err != nil {
		log.WithError(err).Warn("Failed to read stored tokens")
	}
	if tokens == nil || tokens.Access == "" {
		log.Debug("No stored access token, session is anonymous")
		m.setAnonymous()
		return nil
	}

	apiUser, err := m.api.CurrentUser(ctx)
	if err != nil {
		log.WithError(err).Info("Stored session rejected, clearing persisted state")
		m.clearPersisted()
		m.setAnonymous()
		return nil
	}

	user := mapper.APIUserToModel(*apiUser)
	if err := m.store.SetUser(user); err != nil {
		log.WithError(err).Warn("Failed to persist refreshed user profile")
	}
	m.setAuthenticated(user)
	log.WithField("user_id", user.ID).Info("Session restored")
	return nil
}

// Login выполняет вход с проверкой ожидаемой роли. При несовпадении роли
// возвращается false и никакое состояние сессии не сохраняется: гражданин
// не может войти через форму пожарной команды и наоборот. Ошибка транспорта
// пробрасывается вызывающему.
func (m *Manager) Login(ctx context.Context, email, password string, expected models.UserType) (bool, error) {
	log := m.logger.WithFields(logrus.Fields{
		"component": "session",
		"method":    "Login",
	})

	resp, err := m.api.Login(ctx, email, password)
	if err != nil {
		return false, fmt.Errorf("session: login failed: %w", err)
	}

	user := mapper.APIUserToModel(resp.User)
	if user.UserType != expected {
		log.WithFields(logrus.Fields{
			"expected": expected,
			"actual":   user.UserType,
		}).Warn("Login rejected due to role mismatch")
		return false, nil
	}

	if err := m.persistSession(resp.Tokens, user); err != nil {
		return false, err
	}
	m.setAuthenticated(user)
	log.WithField("user_id", user.ID).Info("Login successful")
	return true, nil
}

// Register регистрирует пользователя и сразу открывает сессию. Бэкенд требует
// наличия ключей badge_number и fire_station даже для ролей без них, поэтому
// пустые значения отправляются явно. Валидацию данных выполняет бэкенд;
// его отказ приходит как ошибка транспорта.
func (m *Manager) Register(ctx context.Context, input RegisterInput) (bool, error) {
	log := m.logger.WithFields(logrus.Fields{
		"component": "session",
		"method":    "Register",
	})

	if input.UserType == "" {
		input.UserType = models.UserTypePublic
	}
	if err := m.validate.Struct(input); err != nil {
		return false, fmt.Errorf("session: invalid registration input: %w", err)
	}

	resp, err := m.api.Register(ctx, transport.RegisterRequest{
		Email:           input.Email,
		Name:            input.Name,
		Phone:           input.Phone,
		Password:        input.Password,
		PasswordConfirm: input.Password,
		UserType:        input.UserType,
		BadgeNumber:     input.BadgeNumber,
		FireStation:     input.FireStation,
	})
	if err != nil {
		return false, fmt.Errorf("session: registration failed: %w", err)
	}

	user := mapper.APIUserToModel(resp.User)
	if err := m.persistSession(resp.Tokens, user); err != nil {
		return false, err
	}
	m.setAuthenticated(user)
	log.WithField("user_id", user.ID).Info("Registration successful")
	return true, nil
}

// Logout завершает сессию. Серверная инвалидация выполняется по возможности,
// любая ее ошибка проглатывается: локальный выход должен состояться даже при
// недоступной сети.
func (m *Manager) Logout(ctx context.Context) error {
	log := m.logger.WithFields(logrus.Fields{
		"component": "session",
		"method":    "Logout",
	})

	tokens, err := m.store.GetTokens()
	if err != nil {
		log.WithError(err).Warn("Failed to read stored tokens during logout")
	}

	if tokens != nil && tokens.Refresh != "" && m.User() != nil {
		if err := m.api.Logout(ctx, tokens.Refresh); err != nil {
			log.WithError(err).Warn("Server-side logout failed, clearing local session anyway")
		}
	}

	err = m.clearPersisted()
	m.setAnonymous()
	log.Info("Session ended")
	return err
}

// persistSession сохраняет токены и профиль; при ошибке записи частичное
// состояние убирается
func (m *Manager) persistSession(tokens transport.APITokens, user models.User) error {
	if err := m.store.SetTokens(store.Tokens{Access: tokens.Access, Refresh: tokens.Refresh}); err != nil {
		return fmt.Errorf("session: failed to persist tokens: %w", err)
	}
	if err := m.store.SetUser(user); err != nil {
		_ = m.store.ClearTokens()
		return fmt.Errorf("session: failed to persist user: %w", err)
	}
	return nil
}

// clearPersisted удаляет все сохраненное состояние сессии
func (m *Manager) clearPersisted() error {
	tokensErr := m.store.ClearTokens()
	userErr := m.store.ClearUser()
	if tokensErr != nil {
		return fmt.Errorf("session: failed to clear tokens: %w", tokensErr)
	}
	if userErr != nil {
		return fmt.Errorf("session: failed to clear user: %w", userErr)
	}
	return nil
}

// setAuthenticated переводит сессию в authenticated и публикует событие.
// Смена роли уже аутентифицированного пользователя публикуется отдельно.
func (m *Manager) setAuthenticated(user models.User) {
	m.mu.Lock()
	wasAuthenticated := m.state == StateAuthenticated
	previousRole := models.UserType("")
	if m.user != nil {
		previousRole = m.user.UserType
	}
	m.state = StateAuthenticated
	userCopy := user
	m.user = &userCopy
	m.mu.Unlock()

	if !wasAuthenticated {
		m.bus.Emit(events.SigAuthenticated, &userCopy)
		return
	}
	if previousRole != user.UserType {
		m.bus.Emit(events.SigRoleChanged, &userCopy)
	}
}

// setAnonymous переводит сессию в anonymous и публикует событие
func (m *Manager) setAnonymous() {
	m.mu.Lock()
	wasAnonymous := m.state == StateAnonymous
	m.state = StateAnonymous
	m.user = nil
	m.mu.Unlock()

	if !wasAnonymous {
		m.bus.Emit(events.SigAnonymous, nil)
	}
}

// State возвращает текущее состояние сессии
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// IsAuthenticated сообщает, активна ли сессия
func (m *Manager) IsAuthenticated() bool {
	return m.State() == StateAuthenticated
}

// User возвращает копию профиля текущего пользователя или nil
func (m *Manager) User() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil
	}
	userCopy := *m.user
	return &userCopy
}
