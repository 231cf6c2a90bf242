package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestRepo(t *testing.T) *GormRepository {
	t.Helper()
	r, err := Open("file::memory:?cache=shared&" + t.Name())
	require.NoError(t, err)
	return r
}

func names(ps []Product) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Name)
	}
	return out
}

func TestFilterLooseMatchesSubstring(t *testing.T) {
	r := openTestRepo(t)

	got, err := r.Filter("lipstick", []string{"matte"}, MatchLoose)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Помада матовая Ruby", got[0].Name)
	assert.Equal(t, "lipstick", got[0].Category)
}

func TestFilterEmptyTokensReturnsWholeCategory(t *testing.T) {
	r := openTestRepo(t)

	got, err := r.Filter("lipstick", nil, MatchLoose)
	require.NoError(t, err)
	// Catalog insertion order.
	assert.Equal(t, []string{"Помада матовая Ruby", "Помада глянцевая Pearl", "Помада жидкая Velvet"}, names(got))
}

func TestFilterLooseCrossGroupCollision(t *testing.T) {
	r := openTestRepo(t)

	// "medium" appears both in longevity and in the price group; the loose
	// strategy deliberately does not distinguish.
	got, err := r.Filter("lipstick", []string{"medium"}, MatchLoose)
	require.NoError(t, err)
	assert.Equal(t, []string{"Помада глянцевая Pearl", "Помада жидкая Velvet"}, names(got))
}

func TestFilterStrictMatchesGroupValue(t *testing.T) {
	r := openTestRepo(t)

	got, err := r.Filter("lipstick", []string{"longevity_medium"}, MatchStrict)
	require.NoError(t, err)
	assert.Equal(t, []string{"Помада глянцевая Pearl"}, names(got))

	// List-valued groups contain each element.
	got, err = r.Filter("perfume", []string{"season_autumn"}, MatchStrict)
	require.NoError(t, err)
	assert.Equal(t, []string{"Парфюм Tropical Night"}, names(got))
}

func TestFilterUnknownCategoryIsEmptyNotError(t *testing.T) {
	r := openTestRepo(t)

	got, err := r.Filter("nail_polish", []string{"matte"}, MatchLoose)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFilterUnmatchedTokenIsEmpty(t *testing.T) {
	r := openTestRepo(t)

	got, err := r.Filter("lipstick", []string{"mattte"}, MatchLoose)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTopByRating(t *testing.T) {
	r := openTestRepo(t)

	got, err := r.TopByRating("mascara", 2)
	require.NoError(t, err)
	// 4.8, 4.6, 4.3, 4.2 → top two.
	assert.Equal(t, []string{"Тушь для ресниц Volume", "Тушь для ресниц Dramatic"}, names(got))
}

func TestByPrice(t *testing.T) {
	r := openTestRepo(t)

	asc, err := r.ByPrice("perfume", 2, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"Парфюм Citrus Fresh", "Парфюм Rose Garden"}, names(asc))

	desc, err := r.ByPrice("perfume", 2, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"Парфюм Tropical Night", "Парфюм Rose Garden"}, names(desc))
}

func TestRandomSampleCapsAtAvailable(t *testing.T) {
	r := openTestRepo(t)

	got, err := r.RandomSample("perfume", 10)
	require.NoError(t, err)
	require.Len(t, got, 3, "catalog has exactly 3 perfumes")

	seen := map[int64]bool{}
	for _, p := range got {
		assert.Equal(t, "perfume", p.Category)
		assert.False(t, seen[p.ID], "no duplicates")
		seen[p.ID] = true
	}
}

func TestCountByCategory(t *testing.T) {
	r := openTestRepo(t)

	counts, err := r.CountByCategory()
	require.NoError(t, err)
	assert.Equal(t, int64(4), counts["mascara"])
	assert.Equal(t, int64(3), counts["lipstick"])
	assert.Equal(t, int64(3), counts["perfume"])
}

func TestAttrsDecodesDocument(t *testing.T) {
	p := Product{Attributes: `{"type":"matte","season":["summer","autumn"]}`}
	attrs := p.Attrs()
	assert.Equal(t, "matte", attrs["type"])

	broken := Product{Attributes: `{not json`}
	assert.Empty(t, broken.Attrs())
}

func TestRefreshRestoresBaseline(t *testing.T) {
	r := openTestRepo(t)

	require.NoError(t, r.db.Delete(&Product{}, "category = ?", "lipstick").Error)
	require.NoError(t, r.db.Model(&Product{}).Where("id = ?", 1).
		Update("rating", 1.0).Error)

	require.NoError(t, r.Refresh(context.Background()))

	counts, err := r.CountByCategory()
	require.NoError(t, err)
	assert.Equal(t, int64(3), counts["lipstick"])

	var p Product
	require.NoError(t, r.db.First(&p, 1).Error)
	assert.Greater(t, p.Rating, 1.0, "hand-edited row reset to the baseline")
}
