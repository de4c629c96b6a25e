package wordpress

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"github.com/pfsn365/transfer-portal-tracker-sub001/internal/upstream"
	"github.com/pfsn365/transfer-portal-tracker-sub001/pkg/models"
)

// Excerpts are cut to this many runes
const maxExcerptRunes = 280

// WordPress appends "The post X appeared first on Y." to feed descriptions
var feedFooter = regexp.MustCompile(`^The post .+ appeared first on .+\.$`)

// Client reads a WordPress RSS feed
type Client struct {
	url  string
	http *upstream.Client
}

// New creates a feed client
func New(feedURL string, http *upstream.Client) *Client {
	return &Client{url: feedURL, http: http}
}

// FetchArticles downloads and parses the feed
func (c *Client) FetchArticles(ctx context.Context) ([]models.NewsArticle, error) {
	body, err := c.http.Get(ctx, c.url)
	if err != nil {
		return nil, fmt.Errorf("fetching news feed: %w", err)
	}

	feed, err := gofeed.NewParser().Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing news feed: %w", err)
	}
	return ItemsToArticles(feed.Items), nil
}

// ItemsToArticles converts parsed feed items, skipping items with no link
func ItemsToArticles(items []*gofeed.Item) []models.NewsArticle {
	out := make([]models.NewsArticle, 0, len(items))
	for _, item := range items {
		if item == nil || item.Link == "" {
			continue
		}

		a := models.NewsArticle{
			Title:      strings.TrimSpace(item.Title),
			Link:       item.Link,
			Excerpt:    excerpt(item.Description),
			Categories: item.Categories,
			Image:      imageURL(item),
		}
		if item.PublishedParsed != nil {
			a.Published = item.PublishedParsed.UTC()
		}
		switch {
		case item.Author != nil:
			a.Author = item.Author.Name
		case len(item.Authors) > 0 && item.Authors[0] != nil:
			a.Author = item.Authors[0].Name
		}
		out = append(out, a)
	}
	return out
}

// excerpt strips markup from a description and truncates it on a word
// boundary
func excerpt(html string) string {
	if html == "" {
		return ""
	}

	text := html
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(html)); err == nil {
		text = doc.Text()
	}
	text = strings.Join(strings.Fields(text), " ")
	text = stripFooter(text)

	if utf8.RuneCountInString(text) <= maxExcerptRunes {
		return text
	}
	runes := []rune(text)[:maxExcerptRunes]
	cut := string(runes)
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, ",.;: ") + "…"
}

func stripFooter(text string) string {
	i := strings.LastIndex(text, "The post ")
	if i < 0 || !feedFooter.MatchString(text[i:]) {
		return text
	}
	return strings.TrimSpace(text[:i])
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
	if media, ok := item.Extensions["media"]; ok {
		for _, key := range []string{"content", "thumbnail"} {
			for _, ext := range media[key] {
				if u := ext.Attrs["url"]; u != "" {
					return u
				}
			}
		}
	}
	return ""
}
