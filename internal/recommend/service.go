// Package recommend answers product recommendation queries over the catalog.
package recommend

import (
	"strings"

	"goldapple-bot/internal/catalog"
	"goldapple-bot/internal/logger"
)

// Service wraps the catalog repository with the degrade-to-empty error
// policy: storage failures are logged and surfaced as "nothing found",
// never propagated.
type Service struct {
	repo catalog.Repository
}

func NewService(repo catalog.Repository) *Service {
	return &Service{repo: repo}
}

// ByCriteria returns products of the category matching every selected
// criteria key. Keys are "group_value"; matching is the loose substring
// strategy over the value part, so a value shared across groups matches
// either group. Empty selection returns the whole category.
func (s *Service) ByCriteria(category string, criteriaKeys []string) []catalog.Product {
	tokens := make([]string, 0, len(criteriaKeys))
	for _, k := range criteriaKeys {
		if _, value, ok := strings.Cut(k, "_"); ok {
			tokens = append(tokens, value)
		} else {
			tokens = append(tokens, k)
		}
	}
	out, err := s.repo.Filter(category, tokens, catalog.MatchLoose)
	if err != nil {
		logger.Errorf("recommendation filter failed: category=%s err=%v", category, err)
		return nil
	}
	return out
}

// TopByRating returns the highest-rated products of the category.
func (s *Service) TopByRating(category string, limit int) []catalog.Product {
	out, err := s.repo.TopByRating(category, limit)
	if err != nil {
		logger.Errorf("top-by-rating lookup failed: category=%s err=%v", category, err)
		return nil
	}
	return out
}

// ByPrice returns products of the category ordered by price.
func (s *Service) ByPrice(category string, limit int, ascending bool) []catalog.Product {
	out, err := s.repo.ByPrice(category, limit, ascending)
	if err != nil {
		logger.Errorf("by-price lookup failed: category=%s err=%v", category, err)
		return nil
	}
	return out
}

// RandomSample returns up to limit random products of the category.
func (s *Service) RandomSample(category string, limit int) []catalog.Product {
	out, err := s.repo.RandomSample(category, limit)
	if err != nil {
		logger.Errorf("random sample failed: category=%s err=%v", category, err)
		return nil
	}
	return out
}

// CategoryCounts reports catalog sizes per category, empty on failure.
func (s *Service) CategoryCounts() map[string]int64 {
	counts, err := s.repo.CountByCategory()
	if err != nil {
		logger.Errorf("category count failed: %v", err)
		return map[string]int64{}
	}
	return counts
}
