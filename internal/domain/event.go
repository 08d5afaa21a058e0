package domain

import (
	"encoding/json"
	"time"
)

type EventName string

const (
	EventAlertCreated          EventName = "alert:created"
	EventAlertUpdated          EventName = "alert:updated"
	EventAlertDeleted          EventName = "alert:deleted"
	EventActiveIncidentExists  EventName = "alert:active-incident-exists"
	EventIncidentCreated       EventName = "incident:created"
	EventIncidentUpdated       EventName = "incident:updated"
	EventIncidentDeleted       EventName = "incident:deleted"
	EventReferralCreated       EventName = "referral:created"
	EventReferralUpdated       EventName = "referral:updated"
	EventTurnoutSlipDispatched EventName = "incident:turnout-slip-dispatched"
)

// Event is a lifecycle transition plus whatever references the emitter had
// already populated. The fan-out projects it into a wire payload.
type Event struct {
	Name           EventName
	Alert          *Alert
	Incident       *Incident
	Station        *Station
	ReferredTo     *Station
	Reporter       *Reporter
	Department     *Department
	Unit           *Unit
	ActiveIncident *ActiveIncidentDetails
}

// EventEnvelope is what leaves the process: event name, target room
// ("" for broadcast) and the projected JSON payload.
type EventEnvelope struct {
	Event       EventName       `json:"event"`
	Room        string          `json:"room,omitempty"`
	Payload     json.RawMessage `json:"payload"`
	PublishedAt time.Time       `json:"published_at"`
}
