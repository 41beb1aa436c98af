package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rssBody = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>Daily News</title>
  <link>https://news.example.com</link>
  <description>News</description>
  <item>
    <title>Rates go up</title>
    <link>https://news.example.com/a/1</link>
    <guid>news-1</guid>
    <description>&lt;p&gt;The central bank raised rates.&lt;/p&gt;</description>
    <pubDate>Mon, 02 Jun 2025 09:30:00 +0000</pubDate>
    <enclosure url="https://img.example.com/1.jpg" type="image/jpeg" length="100"/>
  </item>
  <item>
    <title>No guid here</title>
    <link>https://news.example.com/a/2</link>
  </item>
  <item>
    <title></title>
    <guid>news-3</guid>
  </item>
</channel>
</rss>`

func TestFetcher_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(rssBody))
	}))
	defer srv.Close()

	inputs, err := NewFetcher(srv.Client()).Fetch(context.Background(), srv.URL, 4)
	require.NoError(t, err)
	require.Len(t, inputs, 2)

	first := inputs[0]
	assert.Equal(t, "news-1", first.ArticleID)
	assert.Equal(t, int64(4), first.CategoryID)
	assert.Equal(t, "Rates go up", first.Title)
	assert.Equal(t, "<p>The central bank raised rates.</p>", first.Description)
	assert.Equal(t, "Daily News", first.Source)
	assert.Equal(t, "2025-06-02", first.Date)
	assert.Equal(t, "https://img.example.com/1.jpg", first.ImageURL)

	assert.Equal(t, "https://news.example.com/a/2", inputs[1].ArticleID)
	assert.Empty(t, inputs[1].Date)
}

func TestFetcher_FetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewFetcher(nil).Fetch(context.Background(), srv.URL, 1)
	assert.Error(t, err)
}
