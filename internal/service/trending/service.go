package trending

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/captionkit-backend/internal/domain"
)

// Service serves the static trending dataset and per-niche suggestions.
type Service struct {
	log *slog.Logger
}

// NewService creates a new trending service.
func NewService(log *slog.Logger) *Service {
	return &Service{
		log: log.With("service", "trending"),
	}
}

// Categories returns the accepted category filter values, "all" first.
func (s *Service) Categories() []string {
	return append([]string(nil), categories...)
}

// List returns the trending hashtags of category in dataset order. Empty and
// "all" return everything; any other value outside Categories is a
// validation error.
func (s *Service) List(ctx context.Context, category string) ([]domain.TrendingHashtag, error) {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		category = CategoryAll
	}
	if !isCategory(category) {
		return nil, domain.NewValidationError("category", "unknown category")
	}

	out := make([]domain.TrendingHashtag, 0, len(hashtags))
	for _, h := range hashtags {
		if category == CategoryAll || h.Category.String() == category {
			out = append(out, h)
		}
	}

	s.log.DebugContext(ctx, "trending hashtags listed",
		slog.String("category", category),
		slog.Int("count", len(out)),
	)
	return out, nil
}

// Suggestions returns the Trending, Popular and Niche hashtag groups for niche.
// Niches without their own groups get the general ones.
func (s *Service) Suggestions(niche string) (domain.Niche, []domain.HashtagGroup) {
	resolved := domain.ResolveNiche(niche)
	sets, ok := suggestions[resolved]
	if !ok {
		resolved = domain.NicheGeneral
		sets = suggestions[domain.NicheGeneral]
	}

	names := [3]string{GroupTrending, GroupPopular, GroupNiche}
	groups := make([]domain.HashtagGroup, len(names))
	for i, name := range names {
		groups[i] = domain.HashtagGroup{
			Name:     name,
			Hashtags: append([]string(nil), sets[i]...),
		}
	}
	return resolved, groups
}

func isCategory(c string) bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}
