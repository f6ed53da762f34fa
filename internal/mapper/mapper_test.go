package mapper

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/firewatcher_client/internal/models"
	"github.com/shenikar/firewatcher_client/internal/transport"
)

func TestAPIUserToModel_CopiesFields(t *testing.T) {
	apiUser := transport.APIUser{
		ID:          "u1",
		Email:       "captain@fire.dept",
		Name:        "Captain",
		Phone:       "+7900",
		UserType:    models.UserTypeFireTeam,
		BadgeNumber: "B-17",
		FireStation: "Station 4",
		CreatedAt:   "2024-05-01T10:00:00Z",
	}

	user := APIUserToModel(apiUser)

	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, models.UserTypeFireTeam, user.UserType)
	assert.Equal(t, "B-17", user.BadgeNumber)
	assert.Equal(t, "Station 4", user.FireStation)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), user.CreatedAt)
}

func TestAPIUserToModel_BlankBadgeAndStationStayAbsent(t *testing.T) {
	apiUser := transport.APIUser{ID: "u2", UserType: models.UserTypePublic}

	user := APIUserToModel(apiUser)

	assert.Empty(t, user.BadgeNumber)
	assert.Empty(t, user.FireStation)
	assert.False(t, user.IsFireTeam())
}

func TestAPIStatusUpdateToModel_MissingActorBecomesSystem(t *testing.T) {
	update := transport.APIStatusUpdate{
		ID:        "s1",
		Status:    models.StatusEnroute,
		UpdatedBy: nil,
		Timestamp: "2024-05-01T11:00:00Z",
	}

	mapped := APIStatusUpdateToModel("i1", update)

	assert.Equal(t, "i1", mapped.IncidentID)
	assert.Equal(t, SystemActorID, mapped.UpdatedBy)
	assert.Equal(t, SystemActorName, mapped.UpdatedByName)
	assert.Empty(t, mapped.Notes)
}

func TestAPIStatusUpdateToModel_ActorPassedThrough(t *testing.T) {
	update := transport.APIStatusUpdate{
		ID:        "s2",
		Status:    models.StatusArrived,
		UpdatedBy: &transport.APIUser{ID: "u1", Name: "Captain"},
		Notes:     "on scene",
		Timestamp: "2024-05-01T11:05:00Z",
	}

	mapped := APIStatusUpdateToModel("i1", update)

	assert.Equal(t, "u1", mapped.UpdatedBy)
	assert.Equal(t, "Captain", mapped.UpdatedByName)
	assert.Equal(t, "on scene", mapped.Notes)
}

func TestAPIIncidentToModel_FlattensPhotosAndCoercesCoordinates(t *testing.T) {
	// Координаты приходят строкой или числом; округление не должно менять значение
	var apiIncident transport.APIIncident
	raw := `{
		"id": "i1",
		"reporter": {"id": "u1"},
		"reporter_name": "Ivan",
		"reporter_phone": "+7900",
		"lat": "56.8389",
		"lng": 60.6057,
		"address": "Lenina 1",
		"description": "smoke",
		"status": "new",
		"photos": [{"id":"p1","image":"https://cdn/1.jpg"},{"id":"p2","image":"https://cdn/2.jpg"}],
		"created_at": "2024-05-01T10:00:00Z",
		"updated_at": "2024-05-01T12:00:00Z"
	}`
	require.NoError(t, json.Unmarshal([]byte(raw), &apiIncident))

	incident := APIIncidentToModel(apiIncident)

	assert.Equal(t, "u1", incident.ReporterID)
	assert.InDelta(t, 56.8389, incident.LocationLat, 1e-9)
	assert.InDelta(t, 60.6057, incident.LocationLng, 1e-9)
	assert.Equal(t, []string{"https://cdn/1.jpg", "https://cdn/2.jpg"}, incident.Photos)
	assert.True(t, !incident.UpdatedAt.Before(incident.CreatedAt))
}

func TestAPIIncidentToModel_MissingReporterGivesEmptyID(t *testing.T) {
	apiIncident := transport.APIIncident{ID: "i2", Status: models.StatusNew}

	incident := APIIncidentToModel(apiIncident)

	assert.Empty(t, incident.ReporterID)
	assert.Empty(t, incident.Photos)
}

func TestAPIIncidentWithUpdates_MapsNestedHistory(t *testing.T) {
	apiIncident := transport.APIIncident{
		ID:     "i1",
		Status: models.StatusEnroute,
		StatusUpdates: []transport.APIStatusUpdate{
			{ID: "s1", Status: models.StatusNew, Timestamp: "2024-05-01T10:00:00Z"},
			{ID: "s2", Status: models.StatusEnroute, Timestamp: "2024-05-01T11:00:00Z"},
		},
	}

	mapped := APIIncidentWithUpdates(apiIncident)

	require.Len(t, mapped.Updates, 2)
	assert.Equal(t, "i1", mapped.Updates[0].IncidentID)
	assert.Equal(t, "i1", mapped.Updates[1].IncidentID)
	assert.Equal(t, mapped.Incident.ID, "i1")
}
