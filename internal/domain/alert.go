package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type AlertStatus string

const (
	AlertActive   AlertStatus = "active"
	AlertPending  AlertStatus = "pending"
	AlertAccepted AlertStatus = "accepted"
	AlertRejected AlertStatus = "rejected"
	AlertReferred AlertStatus = "referred"
)

// OpenAlertStatuses are the statuses counted for Station.HasActiveAlert.
var OpenAlertStatuses = []AlertStatus{AlertActive, AlertPending}

func ParseAlertStatus(s string) (AlertStatus, bool) {
	st := AlertStatus(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case AlertActive, AlertPending, AlertAccepted, AlertRejected, AlertReferred:
		return st, true
	}
	return "", false
}

type Coordinates struct {
	Lat float64 `json:"lat" validate:"lat"`
	Lng float64 `json:"lng" validate:"lng"`
}

type Location struct {
	Name        string       `json:"name"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

type Alert struct {
	ID           uuid.UUID    `json:"id"`
	ReporterID   uuid.UUID    `json:"reporter_id"`
	ReporterType ReporterType `json:"reporter_type"`
	StationID    uuid.UUID    `json:"station_id"`
	DepartmentID *uuid.UUID   `json:"department_id,omitempty"`
	UnitID       *uuid.UUID   `json:"unit_id,omitempty"`

	IncidentType string   `json:"incident_type"`
	IncidentName string   `json:"incident_name"`
	Priority     string   `json:"priority"`
	Description  string   `json:"description,omitempty"`
	Location     Location `json:"location"`

	Status AlertStatus `json:"status"`

	Dispatched        bool       `json:"dispatched"`
	DispatchedAt      *time.Time `json:"dispatched_at,omitempty"`
	Declined          bool       `json:"declined"`
	DeclinedAt        *time.Time `json:"declined_at,omitempty"`
	DeclineReason     string     `json:"decline_reason,omitempty"`
	Referred          bool       `json:"referred"`
	ReferredAt        *time.Time `json:"referred_at,omitempty"`
	ReferredToStation *uuid.UUID `json:"referred_to_station,omitempty"`
	ReferReason       string     `json:"refer_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TerminalState names the terminal outcome already reached, or "" when the
// alert is still open.
func (a *Alert) TerminalState() AlertStatus {
	switch {
	case a.Dispatched:
		return AlertAccepted
	case a.Declined:
		return AlertRejected
	case a.Referred:
		return AlertReferred
	}
	return ""
}

type AlertFilter struct {
	StationID *uuid.UUID
	Status    *AlertStatus
	Page      int
	Limit     int
}
