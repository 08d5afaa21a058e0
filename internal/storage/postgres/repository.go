package postgres

import (
	"fireDispatch/internal/domain"
)

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	defaultLimit = 20
	maxLimit     = 100
)

func pageBounds(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > maxLimit {
		limit = defaultLimit
	}
	return limit, (page - 1) * limit
}

func alertStatusStrings(in []domain.AlertStatus) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = string(s)
	}
	return out
}

func incidentStatusStrings(in []domain.IncidentStatus) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = string(s)
	}
	return out
}
