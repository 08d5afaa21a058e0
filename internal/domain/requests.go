package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// StationTarget accepts either a bare station id or a descriptor object that
// is resolved by place id, then coordinates, then a fuzzy name match.
type StationTarget struct {
	ID          *uuid.UUID   `json:"id,omitempty"`
	PlaceID     string       `json:"place_id,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty" validate:"omitempty"`
	Name        string       `json:"name,omitempty"`
}

func (t *StationTarget) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return errors.New("station: malformed id")
		}
		t.ID = &id
		return nil
	}

	type descriptor StationTarget
	var d descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	*t = StationTarget(d)
	return nil
}

func (t StationTarget) IsEmpty() bool {
	return t.ID == nil && t.PlaceID == "" && t.Coordinates == nil && t.Name == ""
}

type CreateAlertRequest struct {
	ReporterID   uuid.UUID     `json:"reporter_id" validate:"required"`
	Station      StationTarget `json:"station"`
	IncidentType string        `json:"incident_type" validate:"required,notblank"`
	IncidentName string        `json:"incident_name" validate:"required,notblank"`
	Priority     string        `json:"priority" validate:"omitempty,oneof=low medium high critical"`
	Description  string        `json:"description" validate:"max=2000"`
	Location     Location      `json:"location" validate:"required"`
}

type DeclineAlertRequest struct {
	Reason string `json:"reason" validate:"required,notblank"`
}

type ReferAlertRequest struct {
	StationID uuid.UUID `json:"station_id" validate:"required"`
	Reason    string    `json:"reason" validate:"required,notblank"`
}

// UpdateAlertRequest is a PATCH: nil fields are left as they are.
type UpdateAlertRequest struct {
	Status            *string    `json:"status"`
	IncidentType      *string    `json:"incident_type"`
	IncidentName      *string    `json:"incident_name"`
	Priority          *string    `json:"priority" validate:"omitempty,oneof=low medium high critical"`
	Description       *string    `json:"description" validate:"omitempty,max=2000"`
	Location          *Location  `json:"location"`
	DepartmentID      *uuid.UUID `json:"department_id"`
	UnitID            *uuid.UUID `json:"unit_id"`
	DeclineReason     *string    `json:"decline_reason"`
	ReferredToStation *uuid.UUID `json:"referred_to_station"`
	ReferReason       *string    `json:"refer_reason"`
}

type SetIncidentStatusRequest struct {
	Status string     `json:"status" validate:"required"`
	At     *time.Time `json:"at"`
}

type ReferIncidentRequest struct {
	StationID uuid.UUID `json:"station_id" validate:"required"`
	Reason    string    `json:"reason" validate:"required,notblank"`
}
