package domain

import "github.com/google/uuid"

type StationStats struct {
	StationID         uuid.UUID `json:"station_id"`
	OpenAlerts        int64     `json:"open_alerts"`
	LiveIncidents     int64     `json:"live_incidents"`
	HasActiveAlert    bool      `json:"has_active_alert"`
	HasActiveIncident bool      `json:"has_active_incident"`
	FlagsConsistent   bool      `json:"flags_consistent"`
}
