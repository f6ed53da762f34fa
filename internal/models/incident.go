package models

import (
	"time"
)

// IncidentStatus определяет этап жизненного цикла инцидента
type IncidentStatus string

const (
	StatusNew          IncidentStatus = "new"
	StatusEnroute      IncidentStatus = "enroute"
	StatusArrived      IncidentStatus = "arrived"
	StatusFighting     IncidentStatus = "fighting"
	StatusExtinguished IncidentStatus = "extinguished"
	StatusClosed       IncidentStatus = "closed"
)

// StatusOrder задает полный порядок конвейера статусов; последний статус терминальный
var StatusOrder = []IncidentStatus{
	StatusNew,
	StatusEnroute,
	StatusArrived,
	StatusFighting,
	StatusExtinguished,
	StatusClosed,
}

// StatusLabels содержит отображаемые названия статусов
var StatusLabels = map[IncidentStatus]string{
	StatusNew:          "New Report",
	StatusEnroute:      "On Our Way",
	StatusArrived:      "Arrived at Scene",
	StatusFighting:     "Fighting Fire",
	StatusExtinguished: "Fire Extinguished",
	StatusClosed:       "Incident Closed",
}

// NextStatus возвращает следующий статус конвейера и false для терминального
// или неизвестного статуса. Переходы только вперед и только на один шаг.
func NextStatus(s IncidentStatus) (IncidentStatus, bool) {
	for i, status := range StatusOrder {
		if status == s {
			if i+1 < len(StatusOrder) {
				return StatusOrder[i+1], true
			}
			return "", false
		}
	}
	return "", false
}

// IsValidStatus проверяет, что статус принадлежит конвейеру
func IsValidStatus(s IncidentStatus) bool {
	for _, status := range StatusOrder {
		if status == s {
			return true
		}
	}
	return false
}

// Incident представляет одно сообщение о пожаре и метаданные его жизненного цикла.
// ReporterID может быть пустым: анонимная заявка либо бэкенд скрыл автора.
type Incident struct {
	ID            string         `json:"id"`
	ReporterID    string         `json:"reporterId"`
	ReporterName  string         `json:"reporterName"`
	ReporterPhone string         `json:"reporterPhone"`
	LocationLat   float64        `json:"locationLat"`
	LocationLng   float64        `json:"locationLng"`
	Address       string         `json:"address"`
	Description   string         `json:"description"`
	Photos        []string       `json:"photos"`
	Status        IncidentStatus `json:"status"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// StatusUpdate представляет неизменяемую запись об одном переходе статуса инцидента
type StatusUpdate struct {
	ID            string         `json:"id"`
	IncidentID    string         `json:"incidentId"`
	Status        IncidentStatus `json:"status"`
	UpdatedBy     string         `json:"updatedBy"`
	UpdatedByName string         `json:"updatedByName"`
	Notes         string         `json:"notes,omitempty"`
	Timestamp     time.Time      `json:"timestamp"`
}
