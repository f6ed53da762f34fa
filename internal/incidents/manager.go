package incidents

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/firewatcher_client/internal/events"
	"github.com/shenikar/firewatcher_client/internal/mapper"
	"github.com/shenikar/firewatcher_client/internal/models"
	"github.com/shenikar/firewatcher_client/internal/session"
	"github.com/shenikar/firewatcher_client/internal/transport"
)

const statsCacheKey = "dashboard_stats"

// CreateIncidentInput - данные новой заявки. Имя и телефон заявителя
// денормализуются в момент создания и не зависят от живого профиля.
type CreateIncidentInput struct {
	ReporterName  string  `validate:"required"`
	ReporterPhone string  `validate:"required"`
	Lat           float64 `validate:"latitude"`
	Lng           float64 `validate:"longitude"`
	Address       string  `validate:"required"`
	Description   string  `validate:"required"`
}

// Manager владеет локальным кешем инцидентов и историй статусов, сверяет его
// с ответами сервера и обновляет статистику панели после мутаций. Данные
// инцидентов живут только при активной сессии.
type Manager struct {
	api      transport.API
	session  *session.Manager
	logger   *logrus.Logger
	validate *validator.Validate
	stats    *gocache.Cache

	mu        sync.RWMutex
	incidents []models.Incident
	updates   map[string][]models.StatusUpdate
	loading   bool
	// Монотонный счетчик поколений: устаревший ответ списка не перезаписывает
	// более новое состояние при гонке двух обновлений
	refreshGen uint64
}

// NewManager создает менеджер инцидентов с пустым кешем
func NewManager(api transport.API, sess *session.Manager, statsTTL time.Duration, logger *logrus.Logger) *Manager {
	return &Manager{
		api:      api,
		session:  sess,
		logger:   logger,
		validate: validator.New(),
		stats:    gocache.New(statsTTL, 2*statsTTL),
		updates:  make(map[string][]models.StatusUpdate),
	}
}

// Subscribe подключает менеджер к событиям сессии: выход немедленно очищает
// кеш, вход запускает обновление списка, роль fire_team - обновление
// статистики. Ошибки автоматических обновлений логируются и не пробрасываются.
func (m *Manager) Subscribe(bus *events.Bus) {
	bus.Connect(events.SigAnonymous, func(_ any) {
		m.clearAll()
	})

	bus.Connect(events.SigAuthenticated, func(sender any) {
		user, _ := sender.(*models.User)
		go func() {
			if err := m.RefreshIncidents(context.Background()); err != nil {
				m.logger.WithError(err).Warn("Automatic incident refresh failed")
			}
			if user.IsFireTeam() {
				if err := m.RefreshDashboardStats(context.Background()); err != nil {
					m.logger.WithError(err).Warn("Automatic dashboard stats refresh failed")
				}
			}
		}()
	})

	bus.Connect(events.SigRoleChanged, func(_ any) {
		go func() {
			if err := m.RefreshDashboardStats(context.Background()); err != nil {
				m.logger.WithError(err).Warn("Dashboard stats refresh after role change failed")
			}
		}()
	})
}

// RefreshIncidents замещает кеш полным списком с сервера, отсортированным по
// времени изменения (свежие первыми). Вне активной сессии кеш очищается без
// сетевого вызова.
func (m *Manager) RefreshIncidents(ctx context.Context) error {
	log := m.logger.WithFields(logrus.Fields{
		"component": "incidents",
		"method":    "RefreshIncidents",
	})

	if !m.session.IsAuthenticated() {
		m.clearCollections()
		return nil
	}

	m.mu.Lock()
	m.loading = true
	m.refreshGen++
	gen := m.refreshGen
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.loading = false
		m.mu.Unlock()
	}()

	resp, err := m.api.ListIncidents(ctx)
	if err != nil {
		return fmt.Errorf("incidents: failed to refresh incidents: %w", err)
	}

	mapped := make([]models.Incident, len(resp.Results))
	for i, apiIncident := range resp.Results {
		mapped[i] = mapper.APIIncidentToModel(apiIncident)
	}
	sortIncidents(mapped)

	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.refreshGen {
		// Пока ждали ответ, стартовало более новое обновление
		log.Debug("Discarding stale incident list response")
		return nil
	}
	m.incidents = mapped
	log.WithField("count", len(mapped)).Debug("Incident cache replaced")
	return nil
}

// RefreshDashboardStats обновляет серверную статистику панели. Статистика
// имеет смысл только для роли fire_team: для остальных кеш очищается без
// сетевого вызова. Ответы 403 и 404 трактуются как отсутствие статистики.
func (m *Manager) RefreshDashboardStats(ctx context.Context) error {
	user := m.session.User()
	if !m.session.IsAuthenticated() || !user.IsFireTeam() {
		m.stats.Delete(statsCacheKey)
		return nil
	}

	apiStats, err := m.api.DashboardStats(ctx)
	if err != nil {
		if transport.IsAPIStatus(err, http.StatusForbidden, http.StatusNotFound) {
			m.stats.Delete(statsCacheKey)
			return nil
		}
		return fmt.Errorf("incidents: failed to refresh dashboard stats: %w", err)
	}

	m.stats.SetDefault(statsCacheKey, mapper.APIDashboardStatsToModel(*apiStats))
	return nil
}

// FetchIncidentByID запрашивает полное представление инцидента и вливает его
// в кеш вместе с историей статусов. На 403 выполняется фолбэк на публичную
// историю статусов, после чего исходная ошибка все равно возвращается:
// вызывающий узнает об отказе, но таймлайн в кеше заполнен.
func (m *Manager) FetchIncidentByID(ctx context.Context, id string) (*models.Incident, error) {
	log := m.logger.WithFields(logrus.Fields{
		"component":   "incidents",
		"method":      "FetchIncidentByID",
		"incident_id": id,
	})

	detail, err := m.api.IncidentDetail(ctx, id)
	if err != nil {
		if transport.IsAPIStatus(err, http.StatusForbidden) {
			apiUpdates, fallbackErr := m.api.IncidentUpdates(ctx, id)
			if fallbackErr != nil {
				log.WithError(fallbackErr).Warn("Timeline fallback fetch failed")
			} else if ctx.Err() == nil {
				m.replaceUpdates(id, mapper.APIStatusUpdatesToModels(id, apiUpdates))
				log.Debug("Timeline populated from fallback endpoint")
			}
		}
		return nil, fmt.Errorf("incidents: failed to fetch incident %s: %w", id, err)
	}

	if err := ctx.Err(); err != nil {
		// Вызывающий потерял интерес, результат не применяется
		return nil, err
	}

	mapped := mapper.APIIncidentWithUpdates(*detail)
	m.upsertIncident(mapped.Incident)
	m.replaceUpdates(id, mapped.Updates)
	return &mapped.Incident, nil
}

// CreateIncident отправляет новую заявку и вливает ответ сервера в кеш.
// Для пожарной команды после успеха статистика обновляется по возможности:
// ошибка обновления логируется и не отменяет успешное создание.
func (m *Manager) CreateIncident(ctx context.Context, input CreateIncidentInput) (*models.Incident, error) {
	log := m.logger.WithFields(logrus.Fields{
		"component": "incidents",
		"method":    "CreateIncident",
	})

	if err := m.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("incidents: invalid incident input: %w", err)
	}

	created, err := m.api.CreateIncident(ctx, transport.CreateIncidentRequest{
		Lat:           input.Lat,
		Lng:           input.Lng,
		Address:       input.Address,
		Description:   input.Description,
		ReporterName:  input.ReporterName,
		ReporterPhone: input.ReporterPhone,
	})
	if err != nil {
		return nil, fmt.Errorf("incidents: failed to create incident: %w", err)
	}

	mapped := mapper.APIIncidentWithUpdates(*created)
	m.upsertIncident(mapped.Incident)
	m.replaceUpdates(mapped.Incident.ID, mapped.Updates)
	log.WithField("incident_id", mapped.Incident.ID).Info("Incident created")

	if m.session.User().IsFireTeam() {
		if err := m.RefreshDashboardStats(ctx); err != nil {
			log.WithError(err).Warn("Dashboard stats refresh after create failed")
		}
	}
	return &mapped.Incident, nil
}

// UpdateIncidentStatus переводит инцидент в новый статус. Заметки
// отправляются только непустыми после обрезки пробелов. После успеха
// статистика панели обновляется по возможности.
func (m *Manager) UpdateIncidentStatus(ctx context.Context, incidentID string, status models.IncidentStatus, notes string) (*models.Incident, error) {
	log := m.logger.WithFields(logrus.Fields{
		"component":   "incidents",
		"method":      "UpdateIncidentStatus",
		"incident_id": incidentID,
		"status":      status,
	})

	if !models.IsValidStatus(status) {
		return nil, fmt.Errorf("incidents: unknown status %q", status)
	}

	payload := transport.StatusUpdateRequest{Status: status}
	if trimmed := strings.TrimSpace(notes); trimmed != "" {
		payload.Notes = notes
	}

	updated, err := m.api.UpdateIncidentStatus(ctx, incidentID, payload)
	if err != nil {
		return nil, fmt.Errorf("incidents: failed to update status of incident %s: %w", incidentID, err)
	}

	mapped := mapper.APIIncidentWithUpdates(*updated)
	m.upsertIncident(mapped.Incident)
	m.replaceUpdates(incidentID, mapped.Updates)
	log.Info("Incident status updated")

	if err := m.RefreshDashboardStats(ctx); err != nil {
		log.WithError(err).Warn("Dashboard stats refresh after status update failed")
	}
	return &mapped.Incident, nil
}

// Incidents возвращает копию кешированного списка (свежие первыми)
func (m *Manager) Incidents() []models.Incident {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]models.Incident, len(m.incidents))
	copy(result, m.incidents)
	return result
}

// GetIncidentByID возвращает инцидент из кеша
func (m *Manager) GetIncidentByID(id string) (*models.Incident, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, incident := range m.incidents {
		if incident.ID == id {
			incidentCopy := incident
			return &incidentCopy, true
		}
	}
	return nil, false
}

// GetStatusUpdates возвращает историю статусов инцидента по возрастанию времени
func (m *Manager) GetStatusUpdates(incidentID string) []models.StatusUpdate {
	m.mu.RLock()
	defer m.mu.RUnlock()
	updates := m.updates[incidentID]
	result := make([]models.StatusUpdate, len(updates))
	copy(result, updates)
	return result
}

// GetUserIncidents возвращает инциденты, видимые пользователю: без автора
// либо с совпадающим автором. Это фильтр отображения, а не граница
// безопасности: контроль доступа остается за бэкендом.
func (m *Manager) GetUserIncidents(userID string) []models.Incident {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []models.Incident
	for _, incident := range m.incidents {
		if incident.ReporterID == "" || incident.ReporterID == userID {
			result = append(result, incident)
		}
	}
	return result
}

// DashboardStats возвращает серверную статистику панели, если она в кеше
func (m *Manager) DashboardStats() (models.DashboardStats, bool) {
	value, found := m.stats.Get(statsCacheKey)
	if !found {
		return models.DashboardStats{}, false
	}
	stats, ok := value.(models.DashboardStats)
	return stats, ok
}

// LocalDashboardStats вычисляет статистику из кешированного списка инцидентов.
// Фолбэк для случаев, когда серверная статистика недоступна.
func (m *Manager) LocalDashboardStats() models.DashboardStats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return models.ComputeDashboardStats(m.incidents)
}

// IsLoading сообщает, выполняется ли сейчас обновление списка
func (m *Manager) IsLoading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

// upsertIncident вставляет или замещает инцидент по id, сохраняя сортировку
// по времени изменения
func (m *Manager) upsertIncident(incident models.Incident) {
	m.mu.Lock()
	defer m.mu.Unlock()
	next := make([]models.Incident, 0, len(m.incidents)+1)
	next = append(next, incident)
	for _, existing := range m.incidents {
		if existing.ID != incident.ID {
			next = append(next, existing)
		}
	}
	sortIncidents(next)
	m.incidents = next
}

// replaceUpdates целиком замещает историю статусов инцидента, убирая
// дубликаты по id и сортируя по времени
func (m *Manager) replaceUpdates(incidentID string, updates []models.StatusUpdate) {
	seen := make(map[string]bool, len(updates))
	deduped := make([]models.StatusUpdate, 0, len(updates))
	for _, update := range updates {
		if seen[update.ID] {
			continue
		}
		seen[update.ID] = true
		deduped = append(deduped, update)
	}
	sort.SliceStable(deduped, func(i, j int) bool {
		return deduped[i].Timestamp.Before(deduped[j].Timestamp)
	})

	m.mu.Lock()
	defer m.mu.Unlock()
	m.updates[incidentID] = deduped
}

// clearCollections очищает кеш инцидентов и историй
func (m *Manager) clearCollections() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.incidents = nil
	m.updates = make(map[string][]models.StatusUpdate)
}

// clearAll очищает кеш и статистику; после выхода не остается устаревших данных
func (m *Manager) clearAll() {
	m.clearCollections()
	m.stats.Flush()
}

// sortIncidents сортирует список по времени изменения, свежие первыми;
// стабильная сортировка сохраняет порядок при равных метках
func sortIncidents(items []models.Incident) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].UpdatedAt.After(items[j].UpdatedAt)
	})
}
