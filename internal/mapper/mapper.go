package mapper

import (
	"time"

	"github.com/shenikar/firewatcher_client/internal/models"
	"github.com/shenikar/firewatcher_client/internal/transport"
)

// Системный актор используется, когда бэкенд не сообщил автора перехода
const (
	SystemActorID   = "system"
	SystemActorName = "System"
)

// parseTimestamp разбирает метку времени бэкенда; некорректное значение дает
// нулевое время, а не ошибку
func parseTimestamp(raw string) time.Time {
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return ts
}

// APIUserToModel преобразует запись пользователя бэкенда в доменную модель.
// Пустые badge_number и fire_station остаются отсутствующими.
func APIUserToModel(apiUser transport.APIUser) models.User {
	return models.User{
		ID:          apiUser.ID,
		Email:       apiUser.Email,
		Name:        apiUser.Name,
		Phone:       apiUser.Phone,
		UserType:    apiUser.UserType,
		BadgeNumber: apiUser.BadgeNumber,
		FireStation: apiUser.FireStation,
		CreatedAt:   parseTimestamp(apiUser.CreatedAt),
	}
}

// APIStatusUpdateToModel преобразует запись о смене статуса в доменную модель.
// Идентификатор инцидента отсутствует в формате бэкенда и передается отдельно.
func APIStatusUpdateToModel(incidentID string, update transport.APIStatusUpdate) models.StatusUpdate {
	updatedBy := SystemActorID
	updatedByName := SystemActorName
	if update.UpdatedBy != nil {
		if update.UpdatedBy.ID != "" {
			updatedBy = update.UpdatedBy.ID
		}
		if update.UpdatedBy.Name != "" {
			updatedByName = update.UpdatedBy.Name
		}
	}

	return models.StatusUpdate{
		ID:            update.ID,
		IncidentID:    incidentID,
		Status:        update.Status,
		UpdatedBy:     updatedBy,
		UpdatedByName: updatedByName,
		Notes:         update.Notes,
		Timestamp:     parseTimestamp(update.Timestamp),
	}
}

// APIStatusUpdatesToModels преобразует слайс записей о смене статуса
func APIStatusUpdatesToModels(incidentID string, updates []transport.APIStatusUpdate) []models.StatusUpdate {
	result := make([]models.StatusUpdate, len(updates))
	for i, update := range updates {
		result[i] = APIStatusUpdateToModel(incidentID, update)
	}
	return result
}

// APIIncidentToModel преобразует инцидент бэкенда в доменную модель:
// координаты приводятся к числу, фотографии сворачиваются до списка URL
func APIIncidentToModel(apiIncident transport.APIIncident) models.Incident {
	reporterID := ""
	if apiIncident.Reporter != nil {
		reporterID = apiIncident.Reporter.ID
	}

	photos := make([]string, len(apiIncident.Photos))
	for i, photo := range apiIncident.Photos {
		photos[i] = photo.Image
	}

	return models.Incident{
		ID:            apiIncident.ID,
		ReporterID:    reporterID,
		ReporterName:  apiIncident.ReporterName,
		ReporterPhone: apiIncident.ReporterPhone,
		LocationLat:   float64(apiIncident.Lat),
		LocationLng:   float64(apiIncident.Lng),
		Address:       apiIncident.Address,
		Description:   apiIncident.Description,
		Photos:        photos,
		Status:        apiIncident.Status,
		CreatedAt:     parseTimestamp(apiIncident.CreatedAt),
		UpdatedAt:     parseTimestamp(apiIncident.UpdatedAt),
	}
}

// APIDashboardStatsToModel преобразует серверную статистику в доменную модель
func APIDashboardStatsToModel(stats transport.APIDashboardStats) models.DashboardStats {
	return models.DashboardStats{
		New:      stats.New,
		Active:   stats.Active,
		Resolved: stats.Resolved,
		Total:    stats.Total,
	}
}

// IncidentWithUpdates - результат составного преобразования полного
// представления инцидента
type IncidentWithUpdates struct {
	Incident models.Incident
	Updates  []models.StatusUpdate
}

// APIIncidentWithUpdates преобразует инцидент вместе с вложенной историей
// статусов. Используется всеми эндпоинтами, возвращающими полный инцидент.
func APIIncidentWithUpdates(apiIncident transport.APIIncident) IncidentWithUpdates {
	return IncidentWithUpdates{
		Incident: APIIncidentToModel(apiIncident),
		Updates:  APIStatusUpdatesToModels(apiIncident.ID, apiIncident.StatusUpdates),
	}
}
