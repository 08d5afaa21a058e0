package notify

import (
	"time"

	"fireDispatch/internal/domain"

	"github.com/google/uuid"
)

// Payload is the wire shape of a lifecycle event. Identifiers are strings,
// dates are RFC 3339, references carry id plus display fields only.
type Payload struct {
	Event          domain.EventName `json:"event"`
	StationID      string           `json:"stationId,omitempty"`
	Alert          *AlertPayload    `json:"alert,omitempty"`
	Incident       *IncidentPayload `json:"incident,omitempty"`
	Station        *RefPayload      `json:"station,omitempty"`
	ReferredTo     *RefPayload      `json:"referredTo,omitempty"`
	Reporter       *RefPayload      `json:"reporter,omitempty"`
	Department     *RefPayload      `json:"department,omitempty"`
	Unit           *RefPayload      `json:"unit,omitempty"`
	ActiveIncident *ActivePayload   `json:"activeIncidentDetails,omitempty"`
}

type RefPayload struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	Type string `json:"type,omitempty"`
}

type LocationPayload struct {
	Name string   `json:"name,omitempty"`
	Lat  *float64 `json:"lat,omitempty"`
	Lng  *float64 `json:"lng,omitempty"`
}

type AlertPayload struct {
	ID                string          `json:"id"`
	Status            string          `json:"status"`
	ReporterID        string          `json:"reporterId"`
	ReporterType      string          `json:"reporterType"`
	StationID         string          `json:"stationId"`
	DepartmentID      string          `json:"departmentId,omitempty"`
	UnitID            string          `json:"unitId,omitempty"`
	IncidentType      string          `json:"incidentType"`
	IncidentName      string          `json:"incidentName"`
	Priority          string          `json:"priority,omitempty"`
	Description       string          `json:"description,omitempty"`
	Location          LocationPayload `json:"location"`
	Dispatched        bool            `json:"dispatched"`
	DispatchedAt      string          `json:"dispatchedAt,omitempty"`
	Declined          bool            `json:"declined"`
	DeclinedAt        string          `json:"declinedAt,omitempty"`
	DeclineReason     string          `json:"declineReason,omitempty"`
	Referred          bool            `json:"referred"`
	ReferredAt        string          `json:"referredAt,omitempty"`
	ReferredToStation string          `json:"referredToStation,omitempty"`
	ReferReason       string          `json:"referReason,omitempty"`
	CreatedAt         string          `json:"createdAt"`
	UpdatedAt         string          `json:"updatedAt"`
}

type IncidentPayload struct {
	ID                string `json:"id"`
	AlertID           string `json:"alertId"`
	StationID         string `json:"stationId"`
	DepartmentID      string `json:"departmentId,omitempty"`
	UnitID            string `json:"unitId,omitempty"`
	Status            string `json:"status"`
	DispatchedAt      string `json:"dispatchedAt,omitempty"`
	ArrivedAt         string `json:"arrivedAt,omitempty"`
	ResolvedAt        string `json:"resolvedAt,omitempty"`
	ClosedAt          string `json:"closedAt,omitempty"`
	HasTurnoutSlip    bool   `json:"hasTurnoutSlip"`
	ReferredAt        string `json:"referredAt,omitempty"`
	ReferredToStation string `json:"referredToStation,omitempty"`
	ReferReason       string `json:"referReason,omitempty"`
	CreatedAt         string `json:"createdAt"`
	UpdatedAt         string `json:"updatedAt"`
}

type ActivePayload struct {
	IncidentID   string `json:"incidentId"`
	AlertID      string `json:"alertId"`
	Status       string `json:"status"`
	IncidentType string `json:"incidentType,omitempty"`
	IncidentName string `json:"incidentName,omitempty"`
	LocationName string `json:"locationName,omitempty"`
	CreatedAt    string `json:"createdAt"`
}

// Project flattens ev into its wire payload.
func Project(ev domain.Event) Payload {
	p := Payload{Event: ev.Name}

	if ev.Alert != nil {
		p.Alert = projectAlert(ev.Alert)
	}
	if ev.Incident != nil {
		p.Incident = projectIncident(ev.Incident)
	}
	if ev.Station != nil {
		p.Station = &RefPayload{ID: ev.Station.ID.String(), Name: ev.Station.Name}
	}
	if ev.ReferredTo != nil {
		p.ReferredTo = &RefPayload{ID: ev.ReferredTo.ID.String(), Name: ev.ReferredTo.Name}
	}
	if ev.Reporter != nil {
		p.Reporter = &RefPayload{ID: ev.Reporter.ID.String(), Name: ev.Reporter.Name, Type: string(ev.Reporter.Type)}
	}
	if ev.Department != nil {
		p.Department = &RefPayload{ID: ev.Department.ID.String(), Name: ev.Department.Name}
	}
	if ev.Unit != nil {
		p.Unit = &RefPayload{ID: ev.Unit.ID.String(), Name: ev.Unit.Name}
	}
	if d := ev.ActiveIncident; d != nil {
		p.ActiveIncident = &ActivePayload{
			IncidentID:   d.IncidentID.String(),
			AlertID:      d.AlertID.String(),
			Status:       string(d.Status),
			IncidentType: d.IncidentType,
			IncidentName: d.IncidentName,
			LocationName: d.LocationName,
			CreatedAt:    isoTime(d.CreatedAt),
		}
	}

	if room := StationRoom(ev); room != uuid.Nil {
		p.StationID = room.String()
	}
	return p
}

// StationRoom resolves the station an event belongs to: the incident's own
// station, else the alert's. A referred record is routed to its target.
func StationRoom(ev domain.Event) uuid.UUID {
	if inc := ev.Incident; inc != nil {
		if inc.Status == domain.IncidentReferred && inc.ReferredToStation != nil {
			return *inc.ReferredToStation
		}
		if inc.StationID != uuid.Nil {
			return inc.StationID
		}
	}
	if a := ev.Alert; a != nil {
		if a.Status == domain.AlertReferred && a.ReferredToStation != nil {
			return *a.ReferredToStation
		}
		return a.StationID
	}
	if ev.Station != nil {
		return ev.Station.ID
	}
	return uuid.Nil
}

func projectAlert(a *domain.Alert) *AlertPayload {
	out := &AlertPayload{
		ID:            a.ID.String(),
		Status:        string(a.Status),
		ReporterID:    a.ReporterID.String(),
		ReporterType:  string(a.ReporterType),
		StationID:     a.StationID.String(),
		DepartmentID:  idString(a.DepartmentID),
		UnitID:        idString(a.UnitID),
		IncidentType:  a.IncidentType,
		IncidentName:  a.IncidentName,
		Priority:      a.Priority,
		Description:   a.Description,
		Location:      LocationPayload{Name: a.Location.Name},
		Dispatched:    a.Dispatched,
		DispatchedAt:  isoTimePtr(a.DispatchedAt),
		Declined:      a.Declined,
		DeclinedAt:    isoTimePtr(a.DeclinedAt),
		DeclineReason: a.DeclineReason,
		Referred:      a.Referred,
		ReferredAt:    isoTimePtr(a.ReferredAt),
		ReferReason:   a.ReferReason,
		CreatedAt:     isoTime(a.CreatedAt),
		UpdatedAt:     isoTime(a.UpdatedAt),
	}
	out.ReferredToStation = idString(a.ReferredToStation)
	if c := a.Location.Coordinates; c != nil {
		lat, lng := c.Lat, c.Lng
		out.Location.Lat = &lat
		out.Location.Lng = &lng
	}
	return out
}

func projectIncident(i *domain.Incident) *IncidentPayload {
	out := &IncidentPayload{
		ID:                i.ID.String(),
		AlertID:           i.AlertID.String(),
		StationID:         i.StationID.String(),
		Status:            string(i.Status),
		DispatchedAt:      isoTimePtr(i.DispatchedAt),
		ArrivedAt:         isoTimePtr(i.ArrivedAt),
		ResolvedAt:        isoTimePtr(i.ResolvedAt),
		ClosedAt:          isoTimePtr(i.ClosedAt),
		HasTurnoutSlip:    i.TurnoutSlip != nil,
		ReferredAt:        isoTimePtr(i.ReferredAt),
		ReferredToStation: idString(i.ReferredToStation),
		ReferReason:       i.ReferReason,
		CreatedAt:         isoTime(i.CreatedAt),
		UpdatedAt:         isoTime(i.UpdatedAt),
	}
	if i.DepartmentID != uuid.Nil {
		out.DepartmentID = i.DepartmentID.String()
	}
	if i.UnitID != uuid.Nil {
		out.UnitID = i.UnitID.String()
	}
	return out
}

func idString(id *uuid.UUID) string {
	if id == nil || *id == uuid.Nil {
		return ""
	}
	return id.String()
}

func isoTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func isoTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return isoTime(*t)
}
