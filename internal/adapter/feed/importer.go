package feed

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"news-quiz/internal/logger"
	"news-quiz/internal/service"

	"github.com/mmcdole/gofeed"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// Fetcher reads an RSS/Atom feed and turns its items into article uploads.
type Fetcher struct {
	parser *gofeed.Parser
}

// NewFetcher builds a Fetcher. A nil client gets a 30s timeout default.
func NewFetcher(client *http.Client) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	fp := gofeed.NewParser()
	fp.Client = client
	return &Fetcher{parser: fp}
}

// Fetch downloads the feed at url and maps every usable item to an
// ArticleInput tagged with categoryID.
func (f *Fetcher) Fetch(ctx context.Context, url string, categoryID int64) ([]service.ArticleInput, error) {
	parsed, err := f.parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed %s: %w", url, err)
	}

	inputs := make([]service.ArticleInput, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		in, ok := toArticleInput(parsed, item, categoryID)
		if !ok {
			logger.Get().Debug("Skipping feed item without id or title", zap.String("link", item.Link))
			continue
		}
		inputs = append(inputs, in)
	}
	logger.Get().Info("Feed fetched",
		zap.String("url", url),
		zap.Int("items", len(parsed.Items)),
		zap.Int("usable", len(inputs)))
	return inputs, nil
}

func toArticleInput(feed *gofeed.Feed, item *gofeed.Item, categoryID int64) (service.ArticleInput, bool) {
	id := strings.TrimSpace(item.GUID)
	if id == "" {
		id = strings.TrimSpace(item.Link)
	}
	title := strings.TrimSpace(item.Title)
	if id == "" || title == "" {
		return service.ArticleInput{}, false
	}

	description := item.Content
	if strings.TrimSpace(description) == "" {
		description = item.Description
	}

	in := service.ArticleInput{
		ArticleID:   id,
		CategoryID:  categoryID,
		ImageURL:    imageURL(item),
		Title:       title,
		Description: description,
		Source:      strings.TrimSpace(feed.Title),
	}
	switch {
	case item.PublishedParsed != nil:
		in.Date = item.PublishedParsed.UTC().Format(dateLayout)
	case item.UpdatedParsed != nil:
		in.Date = item.UpdatedParsed.UTC().Format(dateLayout)
	}
	return in, true
}

func imageURL(item *gofeed.Item) string {
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}
	for _, enc := range item.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image/") {
			return enc.URL
		}
	}
	return ""
}
