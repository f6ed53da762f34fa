package session

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/firewatcher_client/internal/events"
	"github.com/shenikar/firewatcher_client/internal/models"
	"github.com/shenikar/firewatcher_client/internal/store"
	"github.com/shenikar/firewatcher_client/internal/transport"
	"github.com/shenikar/firewatcher_client/internal/transport/mocks"
	"github.com/shenikar/firewatcher_client/pkg/logger"
)

// newTestManager — вспомогательная функция для создания менеджера с моками
func newTestManager(t *testing.T) (*Manager, *mocks.MockAPI, *store.MemoryStore, *events.Bus) {
	ctrl := gomock.NewController(t)
	apiMock := mocks.NewMockAPI(ctrl)
	memStore := store.NewMemoryStore()
	bus := events.NewBus()

	manager := NewManager(apiMock, memStore, bus, logger.NewNop())
	return manager, apiMock, memStore, bus
}

func authResponse(role models.UserType) *transport.APIAuthResponse {
	return &transport.APIAuthResponse{
		User: transport.APIUser{
			ID:        "u1",
			Email:     "user@example.com",
			Name:      "User",
			Phone:     "+7900",
			UserType:  role,
			CreatedAt: "2024-05-01T10:00:00Z",
		},
		Tokens: transport.APITokens{Access: "access-1", Refresh: "refresh-1"},
	}
}

func TestRestore_NoTokensBecomesAnonymousWithoutNetwork(t *testing.T) {
	// Подготовка: хранилище пустое, сетевых ожиданий нет
	manager, _, _, bus := newTestManager(t)
	anonymous := false
	bus.Connect(events.SigAnonymous, func(_ any) { anonymous = true })

	// Действие
	require.NoError(t, manager.Restore(context.Background()))

	// Проверки
	assert.Equal(t, StateAnonymous, manager.State())
	assert.Nil(t, manager.User())
	assert.True(t, anonymous)
}

func TestRestore_ValidTokenAdoptsServerProfile(t *testing.T) {
	manager, apiMock, memStore, bus := newTestManager(t)
	require.NoError(t, memStore.SetTokens(store.Tokens{Access: "access-1", Refresh: "refresh-1"}))

	apiMock.EXPECT().
		CurrentUser(gomock.Any()).
		Return(&transport.APIUser{ID: "u1", UserType: models.UserTypePublic, CreatedAt: "2024-05-01T10:00:00Z"}, nil).
		Times(1)

	var authenticatedUser *models.User
	bus.Connect(events.SigAuthenticated, func(sender any) {
		authenticatedUser, _ = sender.(*models.User)
	})

	require.NoError(t, manager.Restore(context.Background()))

	assert.Equal(t, StateAuthenticated, manager.State())
	require.NotNil(t, authenticatedUser)
	assert.Equal(t, "u1", authenticatedUser.ID)

	// Профиль сохранен заново
	stored, err := memStore.GetUser()
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "u1", stored.ID)
}

func TestRestore_RejectedTokenClearsPersistedSession(t *testing.T) {
	manager, apiMock, memStore, _ := newTestManager(t)
	require.NoError(t, memStore.SetTokens(store.Tokens{Access: "stale", Refresh: "stale"}))
	require.NoError(t, memStore.SetUser(models.User{ID: "u1"}))

	apiMock.EXPECT().
		CurrentUser(gomock.Any()).
		Return(nil, &transport.APIError{Status: 401}).
		Times(1)

	require.NoError(t, manager.Restore(context.Background()))

	assert.Equal(t, StateAnonymous, manager.State())
	tokens, err := memStore.GetTokens()
	require.NoError(t, err)
	assert.Nil(t, tokens)
	user, err := memStore.GetUser()
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestLogin_RoleMismatchReturnsFalseWithoutPersisting(t *testing.T) {
	// Учетные данные пожарной команды на форме гражданина: вход отклоняется,
	// хранилище остается пустым
	manager, apiMock, memStore, _ := newTestManager(t)

	apiMock.EXPECT().
		Login(gomock.Any(), "user@example.com", "secret").
		Return(authResponse(models.UserTypeFireTeam), nil).
		Times(1)

	ok, err := manager.Login(context.Background(), "user@example.com", "secret", models.UserTypePublic)

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, StateLoading, manager.State())

	tokens, err := memStore.GetTokens()
	require.NoError(t, err)
	assert.Nil(t, tokens)
	user, err := memStore.GetUser()
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestLogin_SuccessPersistsSessionAndEmitsEvent(t *testing.T) {
	manager, apiMock, memStore, bus := newTestManager(t)

	apiMock.EXPECT().
		Login(gomock.Any(), "user@example.com", "secret").
		Return(authResponse(models.UserTypePublic), nil).
		Times(1)

	authenticated := false
	bus.Connect(events.SigAuthenticated, func(_ any) { authenticated = true })

	ok, err := manager.Login(context.Background(), "user@example.com", "secret", models.UserTypePublic)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, authenticated)
	assert.Equal(t, StateAuthenticated, manager.State())
	assert.Equal(t, "access-1", memStore.AccessToken())
}

func TestLogin_TransportErrorPropagates(t *testing.T) {
	manager, apiMock, memStore, _ := newTestManager(t)

	apiMock.EXPECT().
		Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("network unreachable")).
		Times(1)

	ok, err := manager.Login(context.Background(), "user@example.com", "secret", models.UserTypePublic)

	require.Error(t, err)
	assert.False(t, ok)
	assert.Empty(t, memStore.AccessToken())
}

func TestRegister_SendsBlankRoleFieldsAndConfirmation(t *testing.T) {
	// Бэкенд требует ключи badge_number и fire_station даже пустыми
	manager, apiMock, _, _ := newTestManager(t)

	var gotPayload transport.RegisterRequest
	apiMock.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, payload transport.RegisterRequest) (*transport.APIAuthResponse, error) {
			gotPayload = payload
			return authResponse(models.UserTypePublic), nil
		}).
		Times(1)

	ok, err := manager.Register(context.Background(), RegisterInput{
		Name:     "User",
		Email:    "user@example.com",
		Phone:    "+7900",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, models.UserTypePublic, gotPayload.UserType)
	assert.Equal(t, "password123", gotPayload.PasswordConfirm)
	assert.Equal(t, "", gotPayload.BadgeNumber)
	assert.Equal(t, "", gotPayload.FireStation)
	assert.Equal(t, StateAuthenticated, manager.State())
}

func TestRegister_InvalidInputFailsBeforeNetwork(t *testing.T) {
	manager, _, _, _ := newTestManager(t)

	ok, err := manager.Register(context.Background(), RegisterInput{
		Name:     "User",
		Email:    "not-an-email",
		Phone:    "+7900",
		Password: "password123",
	})

	require.Error(t, err)
	assert.False(t, ok)
}

func TestLogout_ServerFailureStillClearsLocalState(t *testing.T) {
	// Сервер недоступен, но локальный выход обязан состояться
	manager, apiMock, memStore, bus := newTestManager(t)

	apiMock.EXPECT().
		Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(authResponse(models.UserTypeFireTeam), nil).
		Times(1)
	ok, err := manager.Login(context.Background(), "user@example.com", "secret", models.UserTypeFireTeam)
	require.NoError(t, err)
	require.True(t, ok)

	apiMock.EXPECT().
		Logout(gomock.Any(), "refresh-1").
		Return(fmt.Errorf("network unreachable")).
		Times(1)

	anonymous := false
	bus.Connect(events.SigAnonymous, func(_ any) { anonymous = true })

	require.NoError(t, manager.Logout(context.Background()))

	assert.True(t, anonymous)
	assert.Equal(t, StateAnonymous, manager.State())
	assert.Nil(t, manager.User())
	assert.Empty(t, memStore.AccessToken())

	user, err := memStore.GetUser()
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestLogout_SkipsServerCallWithoutRefreshToken(t *testing.T) {
	// Без refresh-токена серверная инвалидация не вызывается
	manager, _, _, _ := newTestManager(t)

	require.NoError(t, manager.Logout(context.Background()))

	assert.Equal(t, StateAnonymous, manager.State())
}

func TestRoleChange_EmitsRoleChangedSignal(t *testing.T) {
	manager, apiMock, _, bus := newTestManager(t)

	roleChanged := false
	bus.Connect(events.SigRoleChanged, func(_ any) { roleChanged = true })

	apiMock.EXPECT().
		Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(authResponse(models.UserTypePublic), nil).
		Times(1)
	ok, err := manager.Login(context.Background(), "user@example.com", "secret", models.UserTypePublic)
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, roleChanged)

	// Повторный вход уже аутентифицированного пользователя с другой ролью
	apiMock.EXPECT().
		Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(authResponse(models.UserTypeFireTeam), nil).
		Times(1)
	ok, err = manager.Login(context.Background(), "user@example.com", "secret", models.UserTypeFireTeam)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, roleChanged)
}
