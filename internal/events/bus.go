package events

import (
	"sync"
)

// Signal - имя события сессии
type Signal string

const (
	// SigAuthenticated публикуется при переходе сессии в authenticated;
	// sender - *models.User
	SigAuthenticated Signal = "session.authenticated"
	// SigAnonymous публикуется при переходе сессии в anonymous; sender - nil
	SigAnonymous Signal = "session.anonymous"
	// SigRoleChanged публикуется, когда у аутентифицированного пользователя
	// изменилась роль; sender - *models.User
	SigRoleChanged Signal = "session.role_changed"
)

// Handler - обработчик события
type Handler func(sender any)

// Bus - минимальная шина событий: компонент сессии публикует переходы,
// менеджер инцидентов подписывается и реагирует. Доставка синхронная,
// в порядке подписки.
type Bus struct {
	mu       sync.RWMutex
	handlers map[Signal][]Handler
}

// NewBus создает пустую шину событий
func NewBus() *Bus {
	return &Bus{handlers: make(map[Signal][]Handler)}
}

// Connect регистрирует обработчик события
func (b *Bus) Connect(sig Signal, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[sig] = append(b.handlers[sig], handler)
}

// Emit доставляет событие всем подписчикам
func (b *Bus) Emit(sig Signal, sender any) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[sig]))
	copy(handlers, b.handlers[sig])
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(sender)
	}
}
