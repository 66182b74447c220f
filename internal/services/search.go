// backend/internal/services/search.go
package services

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tinysprout/garbha/backend/internal/catalog"
	"github.com/tinysprout/garbha/backend/internal/repository"
	"github.com/tinysprout/garbha/backend/internal/search"
)

// SearchService runs relevance search over the story library and blends
// catalog suggestions with popular-query analytics.
type SearchService struct {
	repoManager *repository.RepositoryManager
	logger      *logrus.Logger
}

func NewSearchService(repoManager *repository.RepositoryManager, logger *logrus.Logger) *SearchService {
	return &SearchService{
		repoManager: repoManager,
		logger:      logger,
	}
}

// Search scores the query against the story catalog. Pure and synchronous;
// an empty query yields no results.
func (s *SearchService) Search(query string) []search.Result {
	results := search.Search(query, catalog.Stories.Items())

	s.logger.WithFields(logrus.Fields{
		"query":   query,
		"results": len(results),
	}).Debug("Library search completed")

	return results
}

// Suggestions returns up to limit completions: catalog titles, categories
// and concepts first, then popular queries from analytics as filler.
func (s *SearchService) Suggestions(query string, limit int) []string {
	suggestions := search.Suggest(query, catalog.Stories.Items(), limit)
	if len(suggestions) >= limit || s.repoManager == nil {
		return suggestions
	}

	popular, err := s.repoManager.PopularQuery.GetTop(limit)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to load popular queries for suggestions")
		return suggestions
	}

	queryLower := strings.ToLower(strings.TrimSpace(query))
	seen := make(map[string]bool, len(suggestions))
	for _, sg := range suggestions {
		seen[strings.ToLower(sg)] = true
	}
	for _, p := range popular {
		if len(suggestions) >= limit {
			break
		}
		if !strings.Contains(strings.ToLower(p.QueryText), queryLower) {
			continue
		}
		if seen[strings.ToLower(p.QueryText)] {
			continue
		}
		seen[strings.ToLower(p.QueryText)] = true
		suggestions = append(suggestions, p.QueryText)
	}
	return suggestions
}
