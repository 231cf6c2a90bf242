// Package catalog queries the product store backing recommendations.
package catalog

import "encoding/json"

// Product is one sellable item. Attributes holds the raw JSON document of
// attribute groups, e.g. {"type":"matte","season":["summer","autumn"]}.
type Product struct {
	ID         int64   `gorm:"primaryKey"`
	Name       string  `gorm:"column:name"`
	Category   string  `gorm:"column:category"`
	Price      float64 `gorm:"column:price"`
	Rating     float64 `gorm:"column:rating"`
	Attributes string  `gorm:"column:attributes"`
}

func (Product) TableName() string { return "products" }

// Attrs decodes the attribute document. Malformed JSON yields an empty map,
// matching how the store has always treated broken rows.
func (p Product) Attrs() map[string]interface{} {
	out := make(map[string]interface{})
	if p.Attributes == "" {
		return out
	}
	if err := json.Unmarshal([]byte(p.Attributes), &out); err != nil {
		return map[string]interface{}{}
	}
	return out
}

// MatchStrategy selects how criteria tokens are applied to attributes.
type MatchStrategy int

const (
	// MatchLoose matches each token as a substring of the serialized
	// attribute document. A token like "medium" can hit any group sharing
	// that value; this imprecision is the historical behavior and stays the
	// default.
	MatchLoose MatchStrategy = iota
	// MatchStrict matches tokens of the form "group_value" against decoded
	// attribute groups exactly.
	MatchStrict
)

// Repository is the read surface of the product store.
type Repository interface {
	// Filter returns products of the category matching every token, in
	// natural (id) order. Empty tokens means the whole category; an unknown
	// category is an empty result, not an error.
	Filter(category string, tokens []string, strategy MatchStrategy) ([]Product, error)
	// TopByRating returns up to limit products sorted by rating descending,
	// ties broken by insertion order.
	TopByRating(category string, limit int) ([]Product, error)
	// ByPrice returns up to limit products sorted by price.
	ByPrice(category string, limit int, ascending bool) ([]Product, error)
	// RandomSample returns up to limit random products without replacement.
	RandomSample(category string, limit int) ([]Product, error)
	// CountByCategory reports how many products each category holds.
	CountByCategory() (map[string]int64, error)
}
