package domain

import (
	"time"

	"github.com/google/uuid"
)

// Unit is a duty crew. At most one unit per department may be on duty.
type Unit struct {
	ID           uuid.UUID  `json:"id"`
	DepartmentID uuid.UUID  `json:"department_id"`
	Name         string     `json:"name"`
	IsActive     bool       `json:"is_active"`
	ActivatedAt  *time.Time `json:"activated_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type SweptUnit struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	DepartmentID uuid.UUID `json:"department_id"`
	ActivatedAt  time.Time `json:"activated_at"`
}

type SweepResult struct {
	Count int         `json:"count"`
	Units []SweptUnit `json:"units"`
}
