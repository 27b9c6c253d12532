// Package feeds pulls content inspiration from niche RSS feeds for the
// calendar's idea list.
package feeds

import (
	"context"
	"sort"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/lumina/creatorhub/internal/config"
	"github.com/lumina/creatorhub/internal/domain"
	"github.com/lumina/creatorhub/internal/pkg/logger"
)

// defaultNicheFeeds are used when the config supplies none. Keys match the
// engine's niche names.
var defaultNicheFeeds = map[string][]string{
	"fitness":   {"https://www.nerdfitness.com/blog/feed/"},
	"beauty":    {"https://www.byrdie.com/rss"},
	"tech":      {"https://techcrunch.com/feed/"},
	"finance":   {"https://www.nerdwallet.com/blog/feed/"},
	"business":  {"https://feeds.hbr.org/harvardbusiness"},
	"lifestyle": {"https://www.apartmenttherapy.com/main.rss"},
	"gaming":    {"https://www.polygon.com/rss/index.xml"},
}

// Service fetches and normalizes feed items per niche. It implements
// calendar.InspirationSource.
type Service struct {
	parser   *gofeed.Parser
	maxItems int
	feeds    map[string][]string
}

// NewService creates a feed service from configuration.
func NewService(cfg *config.FeedsConfig) *Service {
	parser := gofeed.NewParser()
	parser.UserAgent = "creatorhub/1.0"

	feeds := cfg.NicheFeeds
	if len(feeds) == 0 {
		feeds = defaultNicheFeeds
	}
	maxItems := cfg.MaxItems
	if maxItems <= 0 {
		maxItems = 10
	}
	return &Service{parser: parser, maxItems: maxItems, feeds: feeds}
}

// FetchForNiche pulls the configured feeds for a niche and returns the
// newest items across them. Unreachable feeds are skipped so one dead blog
// doesn't empty the idea list.
func (s *Service) FetchForNiche(ctx context.Context, niche string, max int) ([]domain.InspirationItem, error) {
	urls := s.feeds[strings.ToLower(strings.TrimSpace(niche))]
	if len(urls) == 0 {
		urls = s.feeds["lifestyle"]
	}
	if max <= 0 || max > s.maxItems {
		max = s.maxItems
	}

	var items []domain.InspirationItem
	for _, url := range urls {
		feed, err := s.parser.ParseURLWithContext(url, ctx)
		if err != nil {
			logger.Warn("feed fetch failed", "url", url, "error", err.Error())
			continue
		}
		for _, item := range feed.Items {
			items = append(items, normalizeItem(feed.Title, item))
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].PublishedAt, items[j].PublishedAt
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.After(*b)
	})

	if len(items) > max {
		items = items[:max]
	}
	return items, nil
}

func normalizeItem(source string, item *gofeed.Item) domain.InspirationItem {
	out := domain.InspirationItem{
		Title:  strings.TrimSpace(item.Title),
		Link:   item.Link,
		Source: source,
	}
	if item.PublishedParsed != nil {
		out.PublishedAt = item.PublishedParsed
	} else if item.UpdatedParsed != nil {
		out.PublishedAt = item.UpdatedParsed
	}
	return out
}
