package newsapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/risk-sense/internal/models"
	"github.com/pribylovaa/risk-sense/internal/providers"
)

var fixedNow = time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

func TestArticles_NormalizesResponse(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/everything", r.URL.Path)
		require.Equal(t, "key-1", r.Header.Get("X-Api-Key"))

		q := r.URL.Query()
		require.Equal(t, "United States renewable energy", q.Get("q"))
		require.Equal(t, "relevancy", q.Get("sortBy"))
		require.Equal(t, "en", q.Get("language"))
		require.Equal(t, "10", q.Get("pageSize"))

		_, _ = w.Write([]byte(`{"status":"ok","articles":[
			{"source":{"name":"Reuters"},"title":"Solar startup raises funds","description":"Digital grid innovation",
			 "url":"https://example.com/a","urlToImage":"https://example.com/a.png","publishedAt":"2024-03-20T08:00:00Z"},
			{"source":{"name":"AP"},"title":"Wind farms","description":null,
			 "url":"https://example.com/b","publishedAt":"2024-03-01T08:00:00Z"}
		]}`))
	}))
	defer srv.Close()

	c := New(srv.Client(), Config{APIKey: "key-1", BaseURL: srv.URL}).WithClock(func() time.Time { return fixedNow })

	got, err := c.Articles(context.Background(), "United States", "renewable energy")
	require.NoError(t, err)
	require.Equal(t, []models.NewsItem{
		{
			Title:       "Solar startup raises funds",
			Source:      "Reuters",
			Date:        "Today",
			Description: "Digital grid innovation",
			URL:         "https://example.com/a",
			ImageURL:    "https://example.com/a.png",
			Tags:        []string{"Technology"},
		},
		{
			Title:       "Wind farms",
			Source:      "AP",
			Date:        "2 weeks ago",
			Description: "No description available",
			URL:         "https://example.com/b",
			Tags:        []string{"Renewable"},
		},
	}, got)
}

func TestArticles_Empty(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok","totalResults":0,"articles":[]}`))
	}))
	defer srv.Close()

	got, err := New(srv.Client(), Config{APIKey: "k", BaseURL: srv.URL}).Articles(context.Background(), "Chad", "mining")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestArticles_MissingKey_NotConfigured(t *testing.T) {
	t.Parallel()

	c := New(nil, Config{})
	require.False(t, c.Configured())

	_, err := c.Articles(context.Background(), "Chad", "mining")
	require.ErrorIs(t, err, providers.ErrNotConfigured)
}

func TestArticles_UpstreamError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"status":"error","code":"apiKeyInvalid"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := New(srv.Client(), Config{APIKey: "bad", BaseURL: srv.URL}).Articles(context.Background(), "Chad", "mining")
	require.True(t, providers.IsProviderError(err))
}

func TestRelativeDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{"hours", 5 * time.Hour, "Today"},
		{"future", -2 * time.Hour, "Today"},
		{"one_day", 30 * time.Hour, "Yesterday"},
		{"days", 6*24*time.Hour + time.Hour, "6 days ago"},
		{"one_week", 7 * 24 * time.Hour, "1 weeks ago"},
		{"weeks", 29 * 24 * time.Hour, "4 weeks ago"},
		{"absolute", 45 * 24 * time.Hour, "Feb 4, 2024"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, RelativeDate(fixedNow.Add(-tc.ago), fixedNow))
		})
	}
}

func TestTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		desc  string
		query string
		want  []string
	}{
		{"several_sets", "GDP growth slows", "New housing policy announced", "", []string{"Economy", "Monetary Policy", "Real Estate"}},
		{"case_insensitive", "EXPORT Tariffs", "", "", []string{"Trade"}},
		{"substring_match", "Jobless claims", "", "", []string{"Employment"}},
		{"fallback_longest_word", "Wind farms", "", "solar wind energy", []string{"Energy"}},
		{"fallback_tie_first", "Wind farms", "", "mine coal oils", []string{"Mine"}},
		{"fallback_general", "Wind farms", "", "ai in us", []string{"General"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Tags(tc.title, tc.desc, tc.query))
		})
	}
}
