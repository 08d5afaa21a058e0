package domain

import "github.com/google/uuid"

type ReporterType string

const (
	ReporterUser          ReporterType = "User"
	ReporterFirePersonnel ReporterType = "FirePersonnel"
)

type Reporter struct {
	ID    uuid.UUID    `json:"id"`
	Type  ReporterType `json:"type"`
	Name  string       `json:"name"`
	Phone string       `json:"phone,omitempty"`
	Email string       `json:"email,omitempty"`
}
