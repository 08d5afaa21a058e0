package domain

import (
	"time"

	"github.com/google/uuid"
)

type CommissionStatus string

const (
	InCommission    CommissionStatus = "in commission"
	OutOfCommission CommissionStatus = "out of commission"
)

// Station is long-lived reference data. HasActiveAlert and HasActiveIncident
// are caches recomputed from live counts after every alert/incident mutation.
type Station struct {
	ID                uuid.UUID        `json:"id"`
	Name              string           `json:"name"`
	PlaceID           string           `json:"place_id,omitempty"`
	Address           string           `json:"address,omitempty"`
	Lat               float64          `json:"lat"`
	Lng               float64          `json:"lng"`
	CommissionStatus  CommissionStatus `json:"commission_status"`
	HasActiveAlert    bool             `json:"has_active_alert"`
	HasActiveIncident bool             `json:"has_active_incident"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// StationRef is the slim projection used for directory lookups by name.
type StationRef struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	PlaceID string    `json:"place_id,omitempty"`
}

type Department struct {
	ID        uuid.UUID `json:"id"`
	StationID uuid.UUID `json:"station_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
