package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// GormRepository is the SQLite-backed product store.
type GormRepository struct {
	db *gorm.DB
}

// Open connects to the SQLite database at path, migrates the products table
// and seeds the demo catalog when the table is empty.
func Open(path string) (*GormRepository, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open catalog db: %w", err)
	}
	if err := db.AutoMigrate(&Product{}); err != nil {
		return nil, fmt.Errorf("migrate products: %w", err)
	}
	r := &GormRepository{db: db}
	if err := r.seedIfEmpty(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *GormRepository) Filter(category string, tokens []string, strategy MatchStrategy) ([]Product, error) {
	if strategy == MatchStrict {
		return r.filterStrict(category, tokens)
	}
	q := r.db.Where("category = ?", category)
	for _, t := range tokens {
		q = q.Where("attributes LIKE ?", "%"+t+"%")
	}
	var out []Product
	if err := q.Order("id").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("filter %s: %w", category, err)
	}
	return out, nil
}

// filterStrict expects tokens of the form "group_value" and requires the
// decoded attribute group to carry exactly that value (or contain it when
// the group holds a list).
func (r *GormRepository) filterStrict(category string, tokens []string) ([]Product, error) {
	var all []Product
	if err := r.db.Where("category = ?", category).Order("id").Find(&all).Error; err != nil {
		return nil, fmt.Errorf("filter strict %s: %w", category, err)
	}
	var out []Product
	for _, p := range all {
		if productMatchesAll(p, tokens) {
			out = append(out, p)
		}
	}
	return out, nil
}

func productMatchesAll(p Product, tokens []string) bool {
	attrs := p.Attrs()
	for _, t := range tokens {
		group, value, ok := strings.Cut(t, "_")
		if !ok {
			return false
		}
		if !attrHasValue(attrs[group], value) {
			return false
		}
	}
	return true
}

func attrHasValue(attr interface{}, value string) bool {
	switch v := attr.(type) {
	case string:
		return v == value
	case []interface{}:
		for _, item := range v {
			if s, ok := item.(string); ok && s == value {
				return true
			}
		}
	}
	return false
}

func (r *GormRepository) TopByRating(category string, limit int) ([]Product, error) {
	var out []Product
	err := r.db.Where("category = ?", category).
		Order("rating DESC, id ASC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("top by rating %s: %w", category, err)
	}
	return out, nil
}

func (r *GormRepository) ByPrice(category string, limit int, ascending bool) ([]Product, error) {
	order := "price DESC, id ASC"
	if ascending {
		order = "price ASC, id ASC"
	}
	var out []Product
	err := r.db.Where("category = ?", category).
		Order(order).
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("by price %s: %w", category, err)
	}
	return out, nil
}

func (r *GormRepository) RandomSample(category string, limit int) ([]Product, error) {
	var out []Product
	err := r.db.Where("category = ?", category).
		Order("RANDOM()").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("random sample %s: %w", category, err)
	}
	return out, nil
}

func (r *GormRepository) CountByCategory() (map[string]int64, error) {
	type row struct {
		Category string
		N        int64
	}
	var rows []row
	err := r.db.Model(&Product{}).
		Select("category, count(*) as n").
		Group("category").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count by category: %w", err)
	}
	out := make(map[string]int64, len(rows))
	for _, rw := range rows {
		out[rw.Category] = rw.N
	}
	return out, nil
}

// Refresh re-applies the seed set: rows deleted or edited by hand are
// restored to the catalog baseline. Rows outside the seed set are kept.
func (r *GormRepository) Refresh(ctx context.Context) error {
	products := seedProducts()
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&products).Error
	if err != nil {
		return fmt.Errorf("refresh products: %w", err)
	}
	return nil
}

func (r *GormRepository) seedIfEmpty() error {
	var n int64
	if err := r.db.Model(&Product{}).Count(&n).Error; err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if n > 0 {
		return nil
	}
	if err := r.db.Create(seedProducts()).Error; err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	return nil
}

func mustJSON(v map[string]interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}
