package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"fireDispatch/internal/domain"
	"fireDispatch/pkg/e"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// StationResolver turns a StationTarget into a station id.
// Priority: explicit id, place id, coordinates, fuzzy name.
type StationResolver struct {
	stations StationRepository
	cache    StationDirectoryCache
	logger   *slog.Logger
	radiusKm float64
	cacheTTL time.Duration
}

func NewStationResolver(stations StationRepository, cache StationDirectoryCache, logger *slog.Logger, radiusKm float64, cacheTTL time.Duration) *StationResolver {
	if radiusKm <= 0 {
		radiusKm = 5
	}
	if cacheTTL <= 0 {
		cacheTTL = 10 * time.Minute
	}
	return &StationResolver{
		stations: stations,
		cache:    cache,
		logger:   logger,
		radiusKm: radiusKm,
		cacheTTL: cacheTTL,
	}
}

func (r *StationResolver) Resolve(ctx context.Context, target domain.StationTarget) (uuid.UUID, error) {
	if target.IsEmpty() {
		return uuid.Nil, e.Invalid("station is required")
	}
	if target.ID != nil {
		return *target.ID, nil
	}

	if target.PlaceID != "" {
		st, err := r.stations.GetByPlaceID(ctx, target.PlaceID)
		switch {
		case err == nil:
			return st.ID, nil
		case !errors.Is(err, e.ErrNotFound):
			return uuid.Nil, err
		}
	}

	if c := target.Coordinates; c != nil {
		st, err := r.stations.FindNearest(ctx, c.Lat, c.Lng, r.radiusKm)
		switch {
		case err == nil:
			return st.ID, nil
		case !errors.Is(err, e.ErrNotFound):
			return uuid.Nil, err
		}
	}

	if target.Name != "" {
		refs, err := r.directory(ctx)
		if err != nil {
			return uuid.Nil, err
		}
		if id, ok := matchStationName(refs, target.Name); ok {
			return id, nil
		}
	}

	return uuid.Nil, e.NotFound("station could not be resolved")
}

func (r *StationResolver) directory(ctx context.Context) ([]domain.StationRef, error) {
	if r.cache != nil {
		refs, err := r.cache.GetRefs(ctx)
		if err != nil {
			r.logger.Warn("station directory cache read failed", slog.Any("error", err))
		} else if len(refs) > 0 {
			return refs, nil
		}
	}

	refs, err := r.stations.ListRefs(ctx)
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		if err := r.cache.SetRefs(ctx, refs, r.cacheTTL); err != nil {
			r.logger.Warn("station directory cache write failed", slog.Any("error", err))
		}
	}
	return refs, nil
}

// matchStationName prefers an exact normalized match, then the shortest
// name that contains (or is contained in) the query. Containment needs at
// least minContainedLen characters on the contained side.
func matchStationName(refs []domain.StationRef, name string) (uuid.UUID, bool) {
	q := normalizeName(name)
	if q == "" {
		return uuid.Nil, false
	}

	var (
		best    uuid.UUID
		bestLen = -1
	)
	for _, ref := range refs {
		n := normalizeName(ref.Name)
		if n == "" {
			continue
		}
		if n == q {
			return ref.ID, true
		}
		if containsName(n, q) || containsName(q, n) {
			if bestLen == -1 || len(n) < bestLen {
				best, bestLen = ref.ID, len(n)
			}
		}
	}
	return best, bestLen != -1
}

// minContainedLen keeps one- and two-letter names from matching any query
// that happens to contain them.
const minContainedLen = 3

func containsName(s, sub string) bool {
	return utf8.RuneCountInString(sub) >= minContainedLen && strings.Contains(s, sub)
}

func normalizeName(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	res, _, err := transform.String(t, s)
	if err != nil {
		res = s
	}
	res = strings.ToLower(res)
	res = strings.NewReplacer("-", " ", "_", " ", ".", " ").Replace(res)
	res = strings.Join(strings.Fields(res), " ")
	res = strings.TrimSuffix(res, " fire station")
	res = strings.TrimSuffix(res, " station")
	return res
}
