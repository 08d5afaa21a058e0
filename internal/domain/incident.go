package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type IncidentStatus string

const (
	IncidentPending    IncidentStatus = "pending"
	IncidentActive     IncidentStatus = "active"
	IncidentDispatched IncidentStatus = "dispatched"
	IncidentOnScene    IncidentStatus = "on_scene"
	IncidentResolved   IncidentStatus = "resolved"
	IncidentClosed     IncidentStatus = "closed"
	IncidentReferred   IncidentStatus = "referred"
)

// LiveIncidentStatuses is the single "live" set used by the station busy
// check, the HasActiveIncident recompute and stats.
var LiveIncidentStatuses = []IncidentStatus{
	IncidentPending,
	IncidentActive,
	IncidentDispatched,
	IncidentOnScene,
}

var incidentRank = map[IncidentStatus]int{
	IncidentPending:    0,
	IncidentActive:     1,
	IncidentDispatched: 2,
	IncidentOnScene:    3,
	IncidentResolved:   4,
	IncidentClosed:     5,
}

func ParseIncidentStatus(s string) (IncidentStatus, bool) {
	st := IncidentStatus(strings.ToLower(strings.TrimSpace(s)))
	if st == IncidentReferred {
		return st, true
	}
	_, ok := incidentRank[st]
	return st, ok
}

func (s IncidentStatus) IsLive() bool {
	for _, l := range LiveIncidentStatuses {
		if s == l {
			return true
		}
	}
	return false
}

// CanTransition reports whether an incident in s may move to next.
// Same-status re-entry is always allowed; otherwise moves are forward only,
// and referred is reachable from live states only.
func (s IncidentStatus) CanTransition(next IncidentStatus) bool {
	if s == next {
		return true
	}
	if s == IncidentReferred {
		return false
	}
	if next == IncidentReferred {
		return s.IsLive()
	}
	return incidentRank[next] > incidentRank[s]
}

type Incident struct {
	ID           uuid.UUID      `json:"id"`
	AlertID      uuid.UUID      `json:"alert_id"`
	StationID    uuid.UUID      `json:"station_id"`
	DepartmentID uuid.UUID      `json:"department_id"`
	UnitID       uuid.UUID      `json:"unit_id"`
	Status       IncidentStatus `json:"status"`

	DispatchedAt *time.Time `json:"dispatched_at,omitempty"`
	ArrivedAt    *time.Time `json:"arrived_at,omitempty"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
	ClosedAt     *time.Time `json:"closed_at,omitempty"`

	TurnoutSlip *TurnoutSlip `json:"turnout_slip,omitempty"`

	ReferredAt        *time.Time `json:"referred_at,omitempty"`
	ReferredToStation *uuid.UUID `json:"referred_to_station,omitempty"`
	ReferReason       string     `json:"refer_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type IncidentFilter struct {
	StationID *uuid.UUID
	AlertID   *uuid.UUID
	Status    *IncidentStatus
	Page      int
	Limit     int
}

// ActiveIncidentDetails is what a busy station reports back to the client.
type ActiveIncidentDetails struct {
	IncidentID   uuid.UUID      `json:"incident_id"`
	AlertID      uuid.UUID      `json:"alert_id"`
	Status       IncidentStatus `json:"status"`
	IncidentType string         `json:"incident_type,omitempty"`
	IncidentName string         `json:"incident_name,omitempty"`
	LocationName string         `json:"location_name,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}
