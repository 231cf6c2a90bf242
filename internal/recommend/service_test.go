package recommend

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"goldapple-bot/internal/catalog"
)

type fakeRepo struct {
	products []catalog.Product
	tokens   []string
	err      error
}

func (f *fakeRepo) Filter(category string, tokens []string, _ catalog.MatchStrategy) ([]catalog.Product, error) {
	f.tokens = tokens
	if f.err != nil {
		return nil, f.err
	}
	var out []catalog.Product
	for _, p := range f.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeRepo) TopByRating(string, int) ([]catalog.Product, error) {
	return f.products, f.err
}

func (f *fakeRepo) ByPrice(string, int, bool) ([]catalog.Product, error) {
	return f.products, f.err
}

func (f *fakeRepo) RandomSample(string, int) ([]catalog.Product, error) {
	return f.products, f.err
}

func (f *fakeRepo) CountByCategory() (map[string]int64, error) {
	return map[string]int64{"lipstick": 3}, f.err
}

func TestByCriteriaStripsGroupPrefix(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	svc.ByCriteria("lipstick", []string{"type_matte", "price_premium"})
	assert.Equal(t, []string{"matte", "premium"}, repo.tokens)
}

func TestByCriteriaDegradesToEmptyOnStorageError(t *testing.T) {
	repo := &fakeRepo{err: errors.New("db gone")}
	svc := NewService(repo)

	assert.Empty(t, svc.ByCriteria("lipstick", nil))
	assert.Empty(t, svc.TopByRating("lipstick", 5))
	assert.Empty(t, svc.ByPrice("lipstick", 5, true))
	assert.Empty(t, svc.RandomSample("lipstick", 3))
	assert.Empty(t, svc.CategoryCounts())
}

func TestCriteriaStoreToggle(t *testing.T) {
	s := NewCriteriaStore(time.Minute)

	assert.Equal(t, []string{"type_matte"}, s.Toggle(1, "type_matte"))
	assert.Equal(t, []string{"type_matte", "color_red"}, s.Toggle(1, "color_red"))
	// Toggling again removes.
	assert.Equal(t, []string{"color_red"}, s.Toggle(1, "type_matte"))

	// Selections are per user.
	assert.Empty(t, s.Selected(2))

	s.Reset(1)
	assert.Empty(t, s.Selected(1))
}

func TestOptionLabelFallsBackToRawValue(t *testing.T) {
	assert.Equal(t, "Матовая", OptionLabel("lipstick", "type", "matte"))
	assert.Equal(t, "definition", OptionLabel("mascara", "effect", "definition"))
	assert.Equal(t, "x", OptionLabel("unknown", "type", "x"))
}

func TestFormatProduct(t *testing.T) {
	p := catalog.Product{
		Name: "Помада матовая Ruby", Category: "lipstick", Price: 2300, Rating: 4.5,
		Attributes: `{"type":"matte","color":"red"}`,
	}
	out := FormatProduct(p)
	assert.Contains(t, out, "<b>Помада матовая Ruby</b>")
	assert.Contains(t, out, "Цена: 2300 ₽")
	assert.Contains(t, out, "Тип: Матовая")
	assert.Contains(t, out, "Цвет: Красные оттенки")
}

func TestFormatListNumbersItems(t *testing.T) {
	ps := []catalog.Product{
		{Name: "A", Category: "lipstick"},
		{Name: "B", Category: "lipstick"},
	}
	out := FormatList(ps)
	assert.Contains(t, out, "<b>1.</b>")
	assert.Contains(t, out, "<b>2.</b>")
}
