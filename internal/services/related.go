package services

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/tinysprout/garbha/backend/internal/catalog"
	"github.com/tinysprout/garbha/backend/internal/progress"
	"github.com/tinysprout/garbha/backend/internal/related"
)

// DefaultRelatedLimit is the usual "related topics" card count.
const DefaultRelatedLimit = 3

// RelatedService recommends stories similar to a source story, biased
// toward ones the profile has not completed yet.
type RelatedService struct {
	exercises *progress.ExerciseStore
	logger    *logrus.Logger
}

func NewRelatedService(exercises *progress.ExerciseStore, logger *logrus.Logger) *RelatedService {
	return &RelatedService{
		exercises: exercises,
		logger:    logger,
	}
}

// Related returns the top related stories for the source. A story counts
// as completed when any of its exercises has a completion record. An
// unknown story ID yields an empty list, not an error.
func (s *RelatedService) Related(ctx context.Context, profileID, storyID string, limit int) []related.Item {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	completed := map[string]bool{}
	if s.exercises != nil {
		for _, rec := range s.exercises.CompletionHistory(ctx, profileID) {
			completed[rec.TopicID] = true
		}
	}

	items := related.RelatedTo(storyID, catalog.Stories, completed, limit)

	s.logger.WithFields(logrus.Fields{
		"story":   storyID,
		"results": len(items),
	}).Debug("Related stories computed")

	return items
}
