// Package filter composes the visibility scope with the structural listing
// filters. It works on restaurants already loaded by the caller and never
// touches the store.
package filter

import (
	"fmt"
	"sort"
	"strings"

	"dishlist/backend/internal/models"
	"dishlist/backend/internal/tagsync"
	"dishlist/backend/internal/visibility"
)

// Scope selects restaurants by their relation to the viewer.
type Scope string

const (
	// ScopeAll keeps everything the viewer may see.
	ScopeAll Scope = "all"
	// ScopeMine keeps the viewer's own restaurants.
	ScopeMine Scope = "mine"
	// ScopeFriends keeps visible restaurants owned by the viewer's friends.
	ScopeFriends Scope = "friends"
)

// ScopeSet is a union of scopes. An empty set matches nothing.
type ScopeSet map[Scope]struct{}

// NewScopeSet builds a set from scopes.
func NewScopeSet(scopes ...Scope) ScopeSet {
	set := make(ScopeSet, len(scopes))
	for _, s := range scopes {
		set[s] = struct{}{}
	}
	return set
}

// Has reports whether s is selected.
func (s ScopeSet) Has(scope Scope) bool {
	_, ok := s[scope]
	return ok
}

// ParseScopes parses a comma separated scope list such as "mine,friends".
// Blank items are skipped, so "" yields the empty set.
func ParseScopes(raw string) (ScopeSet, error) {
	set := ScopeSet{}
	for _, item := range strings.Split(raw, ",") {
		item = strings.ToLower(strings.TrimSpace(item))
		if item == "" {
			continue
		}
		scope := Scope(item)
		switch scope {
		case ScopeAll, ScopeMine, ScopeFriends:
			set[scope] = struct{}{}
		default:
			return nil, fmt.Errorf("unknown scope %q", item)
		}
	}
	return set, nil
}

// SortKey selects the output order.
type SortKey string

const (
	// SortNone keeps the input order.
	SortNone SortKey = ""
	// SortRating orders by final evaluation, best first; unrated last.
	SortRating SortKey = "rating"
	// SortName orders by name, case-insensitively.
	SortName SortKey = "name"
	// SortDate orders by creation time, newest first.
	SortDate SortKey = "date"
)

// Valid reports whether k is a known sort key.
func (k SortKey) Valid() bool {
	switch k {
	case SortNone, SortRating, SortName, SortDate:
		return true
	}
	return false
}

// Config is a listing request. A nil or zero field places no constraint,
// except Scopes, where an empty set matches nothing.
type Config struct {
	Scopes       ScopeSet
	City         *string
	Neighborhood *string
	Status       *models.RestaurantStatus
	MinRating    *float64
	NameContains string
	Tags         []string
	Sort         SortKey
}

// DefaultConfig shows everything visible in input order.
func DefaultConfig() Config {
	return Config{Scopes: NewScopeSet(ScopeAll)}
}

// Apply returns the candidates that pass the scope and every structural
// filter, ordered by cfg.Sort. Ties keep their input order.
func Apply(resolver *visibility.Resolver, candidates []models.Restaurant, cfg Config) []models.Restaurant {
	required := tagsync.NormalizeAll(cfg.Tags)
	needle := strings.ToLower(strings.TrimSpace(strings.ReplaceAll(cfg.NameContains, "*", "")))

	out := make([]models.Restaurant, 0, len(candidates))
	for i := range candidates {
		r := &candidates[i]
		if !inScope(resolver, r, cfg.Scopes) {
			continue
		}
		if !matches(r, cfg, needle, required) {
			continue
		}
		out = append(out, *r)
	}

	sortRestaurants(out, cfg.Sort)
	return out
}

func inScope(resolver *visibility.Resolver, r *models.Restaurant, scopes ScopeSet) bool {
	if len(scopes) == 0 || !resolver.CanView(r) {
		return false
	}
	if scopes.Has(ScopeAll) {
		return true
	}
	if scopes.Has(ScopeMine) && resolver.IsOwner(r.OwnerID) {
		return true
	}
	return scopes.Has(ScopeFriends) && resolver.IsFriend(r.OwnerID)
}

func matches(r *models.Restaurant, cfg Config, needle string, required []string) bool {
	if cfg.City != nil && r.City != *cfg.City {
		return false
	}
	if cfg.Neighborhood != nil && r.Neighborhood != *cfg.Neighborhood {
		return false
	}
	if cfg.Status != nil && r.Status != *cfg.Status {
		return false
	}
	if cfg.MinRating != nil {
		rating, rated := r.FinalEvaluation()
		if !rated || rating < *cfg.MinRating {
			return false
		}
	}
	if needle != "" && !strings.Contains(strings.ToLower(r.Name), needle) {
		return false
	}
	return hasAllTags(r, required)
}

func hasAllTags(r *models.Restaurant, required []string) bool {
	if len(required) == 0 {
		return true
	}
	attached := make(map[string]struct{}, len(r.Tags))
	for _, name := range r.TagNames() {
		attached[tagsync.Normalize(name)] = struct{}{}
	}
	for _, name := range required {
		if _, ok := attached[name]; !ok {
			return false
		}
	}
	return true
}

func sortRestaurants(list []models.Restaurant, key SortKey) {
	switch key {
	case SortRating:
		sort.SliceStable(list, func(i, j int) bool {
			ri, okI := list[i].FinalEvaluation()
			rj, okJ := list[j].FinalEvaluation()
			if okI != okJ {
				return okI
			}
			return ri > rj
		})
	case SortName:
		sort.SliceStable(list, func(i, j int) bool {
			return strings.ToLower(list[i].Name) < strings.ToLower(list[j].Name)
		})
	case SortDate:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		})
	}
}
