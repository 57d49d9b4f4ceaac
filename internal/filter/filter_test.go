package filter_test

import (
	"testing"
	"time"

	"dishlist/backend/internal/filter"
	"dishlist/backend/internal/models"
	"dishlist/backend/internal/visibility"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	viewer   uint = 1
	friend   uint = 2
	stranger uint = 3
)

func restaurant(id, owner uint, name string, privacy models.PrivacyLevel) models.Restaurant {
	return models.Restaurant{
		Model:        gorm.Model{ID: id, CreatedAt: time.Date(2024, 1, int(id), 0, 0, 0, 0, time.UTC)},
		OwnerID:      owner,
		Name:         name,
		City:         "Lisbon",
		Neighborhood: "Alfama",
		Status:       models.StatusTriedIt,
		PrivacyLevel: privacy,
	}
}

func rated(r models.Restaurant, score int) models.Restaurant {
	r.Evaluation = &models.Evaluation{Location: score, Service: score, PriceQuality: score, FoodQuality: score, Atmosphere: score}
	return r
}

func tagged(r models.Restaurant, names ...string) models.Restaurant {
	for _, name := range names {
		r.Tags = append(r.Tags, &models.Tag{Name: name})
	}
	return r
}

func ids(list []models.Restaurant) []uint {
	out := make([]uint, 0, len(list))
	for _, r := range list {
		out = append(out, r.ID)
	}
	return out
}

func catalog() []models.Restaurant {
	return []models.Restaurant{
		restaurant(1, viewer, "Mine Public", models.PrivacyPublic),
		restaurant(2, viewer, "Mine Private", models.PrivacyPrivate),
		restaurant(3, friend, "Friend Friends", models.PrivacyFriendsOnly),
		restaurant(4, friend, "Friend Private", models.PrivacyPrivate),
		restaurant(5, stranger, "Stranger Public", models.PrivacyPublic),
		restaurant(6, stranger, "Stranger Friends", models.PrivacyFriendsOnly),
	}
}

func resolver() *visibility.Resolver {
	return visibility.NewResolver(viewer, []uint{friend})
}

func TestParseScopes(t *testing.T) {
	set, err := filter.ParseScopes("Mine, friends,")
	require.NoError(t, err)
	assert.True(t, set.Has(filter.ScopeMine))
	assert.True(t, set.Has(filter.ScopeFriends))
	assert.False(t, set.Has(filter.ScopeAll))

	empty, err := filter.ParseScopes("")
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = filter.ParseScopes("everyone")
	assert.Error(t, err)
}

func TestApply_Scopes(t *testing.T) {
	tests := []struct {
		name   string
		scopes filter.ScopeSet
		want   []uint
	}{
		{"all", filter.NewScopeSet(filter.ScopeAll), []uint{1, 2, 3, 5}},
		{"mine", filter.NewScopeSet(filter.ScopeMine), []uint{1, 2}},
		{"friends", filter.NewScopeSet(filter.ScopeFriends), []uint{3}},
		{"mine and friends", filter.NewScopeSet(filter.ScopeMine, filter.ScopeFriends), []uint{1, 2, 3}},
		{"empty", filter.NewScopeSet(), []uint{}},
		{"nil", nil, []uint{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filter.Apply(resolver(), catalog(), filter.Config{Scopes: tt.scopes})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApply_StructuralFilters(t *testing.T) {
	porto := restaurant(7, viewer, "Porto Grill", models.PrivacyPublic)
	porto.City = "Porto"
	porto.Neighborhood = "Ribeira"
	porto.Status = models.StatusWantToGo

	candidates := append(catalog(), porto)
	city := "Porto"
	neighborhood := "Alfama"
	status := models.StatusWantToGo

	cfg := filter.DefaultConfig()
	cfg.City = &city
	assert.Equal(t, []uint{7}, ids(filter.Apply(resolver(), candidates, cfg)))

	cfg = filter.DefaultConfig()
	cfg.Neighborhood = &neighborhood
	assert.Equal(t, []uint{1, 2, 3, 5}, ids(filter.Apply(resolver(), candidates, cfg)))

	cfg = filter.DefaultConfig()
	cfg.Status = &status
	assert.Equal(t, []uint{7}, ids(filter.Apply(resolver(), candidates, cfg)))

	cfg = filter.DefaultConfig()
	cfg.NameContains = "*PUBLIC"
	assert.Equal(t, []uint{1, 5}, ids(filter.Apply(resolver(), candidates, cfg)))
}

func TestApply_MinRatingExcludesUnrated(t *testing.T) {
	candidates := []models.Restaurant{
		rated(restaurant(1, viewer, "a", models.PrivacyPublic), 4),
		restaurant(2, viewer, "b", models.PrivacyPublic),
		rated(restaurant(3, viewer, "c", models.PrivacyPublic), 2),
		rated(restaurant(4, viewer, "d", models.PrivacyPublic), 0),
	}

	floor := 4.0
	cfg := filter.DefaultConfig()
	cfg.MinRating = &floor
	assert.Equal(t, []uint{1}, ids(filter.Apply(resolver(), candidates, cfg)))

	zero := 0.0
	cfg.MinRating = &zero
	assert.Equal(t, []uint{1, 3, 4}, ids(filter.Apply(resolver(), candidates, cfg)), "unrated never passes, even a zero floor")
}

func TestApply_RequiresAllTags(t *testing.T) {
	candidates := []models.Restaurant{
		tagged(restaurant(1, viewer, "a", models.PrivacyPublic), "date", "family"),
		tagged(restaurant(2, viewer, "b", models.PrivacyPublic), "date"),
		restaurant(3, viewer, "c", models.PrivacyPublic),
	}

	cfg := filter.DefaultConfig()
	cfg.Tags = []string{" Date", "family"}
	assert.Equal(t, []uint{1}, ids(filter.Apply(resolver(), candidates, cfg)))

	cfg.Tags = []string{}
	assert.Equal(t, []uint{1, 2, 3}, ids(filter.Apply(resolver(), candidates, cfg)))
}

func TestApply_SortIsStable(t *testing.T) {
	candidates := []models.Restaurant{
		rated(restaurant(1, viewer, "beta", models.PrivacyPublic), 3),
		restaurant(2, viewer, "Alpha", models.PrivacyPublic),
		rated(restaurant(3, viewer, "alpha", models.PrivacyPublic), 5),
		rated(restaurant(4, viewer, "gamma", models.PrivacyPublic), 3),
		restaurant(5, viewer, "delta", models.PrivacyPublic),
	}

	cfg := filter.DefaultConfig()
	assert.Equal(t, []uint{1, 2, 3, 4, 5}, ids(filter.Apply(resolver(), candidates, cfg)))

	cfg.Sort = filter.SortRating
	assert.Equal(t, []uint{3, 1, 4, 2, 5}, ids(filter.Apply(resolver(), candidates, cfg)))

	cfg.Sort = filter.SortName
	assert.Equal(t, []uint{2, 3, 1, 5, 4}, ids(filter.Apply(resolver(), candidates, cfg)))

	cfg.Sort = filter.SortDate
	assert.Equal(t, []uint{5, 4, 3, 2, 1}, ids(filter.Apply(resolver(), candidates, cfg)))
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	candidates := catalog()
	cfg := filter.DefaultConfig()
	cfg.Sort = filter.SortName

	filter.Apply(resolver(), candidates, cfg)
	assert.Equal(t, []uint{1, 2, 3, 4, 5, 6}, ids(candidates))
}

func TestSummarize(t *testing.T) {
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)

	a := rated(restaurant(1, viewer, "a", models.PrivacyPublic), 4)
	a.UpdatedAt = now.AddDate(0, 0, -3)
	b := rated(restaurant(2, viewer, "b", models.PrivacyPublic), 3)
	b.Evaluation.Atmosphere = 2
	b.City = "Porto"
	b.UpdatedAt = now.AddDate(0, -1, 0)
	c := restaurant(3, viewer, "c", models.PrivacyPublic)
	c.UpdatedAt = now

	stats := filter.Summarize([]models.Restaurant{a, b, c}, now)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.RatedCount)
	assert.Equal(t, 3.4, stats.AverageRating)
	assert.Equal(t, 2, stats.UniqueCities)
	assert.Equal(t, 2, stats.ThisMonthCount)

	assert.Equal(t, filter.Stats{}, filter.Summarize(nil, now))
}
