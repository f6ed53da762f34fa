package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/firewatcher_client/internal/config"
	"github.com/shenikar/firewatcher_client/internal/events"
	"github.com/shenikar/firewatcher_client/internal/incidents"
	"github.com/shenikar/firewatcher_client/internal/models"
	"github.com/shenikar/firewatcher_client/internal/session"
	"github.com/shenikar/firewatcher_client/internal/store"
	"github.com/shenikar/firewatcher_client/internal/transport"
	"github.com/shenikar/firewatcher_client/pkg/logger"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Персистентное хранилище сессии
	sessionStore, err := store.NewSQLiteStore(cfg.SessionDBPath)
	if err != nil {
		log.Fatalf("Failed to open session store: %v", err)
	}
	defer sessionStore.Close()
	log.WithField("path", cfg.SessionDBPath).Info("Session store opened")

	// Транспорт к бэкенду
	api := transport.NewClient(transport.Options{
		BaseURL:    cfg.BaseURL,
		Timeout:    cfg.APITimeout,
		RetryCount: cfg.APIRetryCount,
	}, sessionStore, log)
	log.WithField("base_url", cfg.BaseURL).Info("API client initialized")

	// Шина событий сессии и менеджеры
	bus := events.NewBus()
	sessionManager := session.NewManager(api, sessionStore, bus, log)
	incidentManager := incidents.NewManager(api, sessionManager, cfg.StatsCacheTTL, log)
	incidentManager.Subscribe(bus)

	// Восстановление сессии при старте
	if err := sessionManager.Restore(ctx); err != nil {
		log.WithError(err).Warn("Session restore failed")
	}

	// Неинтерактивный вход по учетным данным из окружения
	if !sessionManager.IsAuthenticated() && cfg.LoginEmail != "" {
		ok, err := sessionManager.Login(ctx, cfg.LoginEmail, cfg.LoginPassword, models.UserType(cfg.LoginRole))
		if err != nil {
			log.WithError(err).Error("Login failed")
		} else if !ok {
			log.WithField("expected_role", cfg.LoginRole).Error("Login rejected: role mismatch")
		}
	}

	// Периодическое обновление кеша
	ticker := time.NewTicker(cfg.RefreshInterval)
	defer ticker.Stop()

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := incidentManager.RefreshIncidents(ctx); err != nil {
					log.WithError(err).Warn("Periodic incident refresh failed")
					continue
				}
				reportSnapshot(log, sessionManager, incidentManager)
			}
		}
	}()

	log.WithField("interval", cfg.RefreshInterval.String()).Info("Incident watcher started")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, stopping watcher...")
	cancel()

	log.Info("Watcher stopped")
}

// reportSnapshot логирует сводку по текущему состоянию кеша
func reportSnapshot(log *logrus.Logger, sessionManager *session.Manager, incidentManager *incidents.Manager) {
	stats, fromServer := incidentManager.DashboardStats()
	if !fromServer {
		stats = incidentManager.LocalDashboardStats()
	}

	fields := logrus.Fields{
		"incidents":    len(incidentManager.Incidents()),
		"new":          stats.New,
		"active":       stats.Active,
		"resolved":     stats.Resolved,
		"total":        stats.Total,
		"server_stats": fromServer,
	}
	if user := sessionManager.User(); user != nil {
		fields["user_id"] = user.ID
		fields["role"] = user.UserType
	}
	log.WithFields(fields).Info("Cache snapshot")
}
