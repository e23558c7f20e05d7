// Package genius implements source.LyricsSource on the Genius API.
//
// Genius only exposes search over its API; lyrics themselves live in the
// song page HTML, so a lookup is a /search call followed by a scrape of the
// first hit's page.
package genius

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"playlens/internal/source"
)

const serviceName = "genius"

const defaultBaseURL = "https://api.genius.com"

// Client fetches lyrics from Genius. Lookups can be throttled and cached on
// disk so re-runs over the same playlist don't hammer the service.
type Client struct {
	token    string
	baseURL  string
	http     *http.Client
	cacheDir string
	throttle time.Duration
	log      *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithCacheDir caches fetched lyrics as text files under dir.
func WithCacheDir(dir string) Option {
	return func(c *Client) { c.cacheDir = dir }
}

// WithThrottle sleeps d before every network lookup.
func WithThrottle(d time.Duration) Option {
	return func(c *Client) { c.throttle = d }
}

// WithBaseURL overrides the API endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New returns a Genius client. The token is not validated here; a missing
// or rejected token surfaces as *source.AuthError when Lyrics is called.
func New(token string, log *zap.Logger, opts ...Option) *Client {
	c := &Client{
		token:   token,
		baseURL: defaultBaseURL,
		http:    http.DefaultClient,
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lyrics returns the lyrics text for title by artist. A song Genius doesn't
// know is source.ErrLyricsNotFound; credential problems are
// *source.AuthError and anything network-shaped is *source.FetchError.
func (c *Client) Lyrics(ctx context.Context, title, artist string) (string, error) {
	if c.token == "" {
		return "", &source.AuthError{
			Service: serviceName,
			Err:     fmt.Errorf("GENIUS_ACCESS_TOKEN must be set"),
		}
	}

	if lyrics, ok := c.fromCache(title, artist); ok {
		c.log.Debug("lyrics cache hit", zap.String("title", title), zap.String("artist", artist))
		return lyrics, nil
	}

	if c.throttle > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(c.throttle):
		}
	}

	songURL, err := c.search(ctx, title, artist)
	if err != nil {
		return "", err
	}

	lyrics, err := c.scrape(ctx, songURL)
	if err != nil {
		return "", err
	}

	c.toCache(title, artist, lyrics)
	return lyrics, nil
}

// searchResponse is the subset of the Genius /search payload we read.
type searchResponse struct {
	Response struct {
		Hits []struct {
			Type   string `json:"type"`
			Result struct {
				URL           string `json:"url"`
				Title         string `json:"title"`
				PrimaryArtist struct {
					Name string `json:"name"`
				} `json:"primary_artist"`
			} `json:"result"`
		} `json:"hits"`
	} `json:"response"`
}

// search returns the song-page URL of the first song hit for title+artist.
func (c *Client) search(ctx context.Context, title, artist string) (string, error) {
	query := url.Values{}
	query.Set("q", title+" "+artist)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+query.Encode(), nil)
	if err != nil {
		return "", &source.FetchError{Service: serviceName, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &source.FetchError{Service: serviceName, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", &source.AuthError{Service: serviceName, Err: fmt.Errorf("search returned %s", resp.Status)}
	case resp.StatusCode != http.StatusOK:
		return "", &source.FetchError{Service: serviceName, Err: fmt.Errorf("search returned %s", resp.Status)}
	}

	var results searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return "", &source.FetchError{Service: serviceName, Err: fmt.Errorf("search decode error: %w", err)}
	}

	for _, hit := range results.Response.Hits {
		if hit.Type != "" && hit.Type != "song" {
			continue
		}
		if hit.Result.URL != "" {
			return hit.Result.URL, nil
		}
	}

	return "", fmt.Errorf("%q by %q: %w", title, artist, source.ErrLyricsNotFound)
}

// scrape pulls the lyrics text out of a Genius song page.
func (c *Client) scrape(ctx context.Context, songURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, songURL, nil)
	if err != nil {
		return "", &source.FetchError{Service: serviceName, Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &source.FetchError{Service: serviceName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &source.FetchError{Service: serviceName, Err: fmt.Errorf("song page returned %s", resp.Status)}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", &source.FetchError{Service: serviceName, Err: fmt.Errorf("song page parse error: %w", err)}
	}

	var parts []string
	doc.Find("div[data-lyrics-container='true']").Each(func(i int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			parts = append(parts, text)
		}
	})

	if len(parts) == 0 {
		return "", fmt.Errorf("%s has no lyrics container: %w", songURL, source.ErrLyricsNotFound)
	}
	return strings.Join(parts, "\n"), nil
}

func (c *Client) cachePath(title, artist string) string {
	return filepath.Join(c.cacheDir, sanitize(artist)+"-"+sanitize(title)+".txt")
}

func (c *Client) fromCache(title, artist string) (string, bool) {
	if c.cacheDir == "" {
		return "", false
	}
	bs, err := os.ReadFile(c.cachePath(title, artist))
	if err != nil {
		return "", false
	}
	return string(bs), true
}

func (c *Client) toCache(title, artist, lyrics string) {
	if c.cacheDir == "" {
		return
	}
	if err := os.MkdirAll(c.cacheDir, 0o755); err != nil {
		c.log.Warn("lyrics cache unavailable", zap.Error(err))
		return
	}
	if err := os.WriteFile(c.cachePath(title, artist), []byte(lyrics), 0o644); err != nil {
		c.log.Warn("lyrics cache write failed", zap.Error(err))
	}
}

var filenameRE = regexp.MustCompile(`[^-\w\s]`)

// sanitize makes an OS-safe, case-insensitive file slug.
func sanitize(text string) string {
	clean := filenameRE.ReplaceAllString(text, "")
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(clean), " ", "_"))
}
