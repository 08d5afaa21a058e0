package domain

import "time"

// TurnoutSlip is an opaque rendered document; the core only stores it.
type TurnoutSlip struct {
	ContentType string    `json:"content_type"`
	Document    []byte    `json:"document"`
	GeneratedAt time.Time `json:"generated_at"`
}

// TurnoutContext is the populated view the slip generator renders from.
type TurnoutContext struct {
	Incident   *Incident
	Alert      *Alert
	Reporter   *Reporter
	Station    *Station
	Department *Department
	Unit       *Unit
}
