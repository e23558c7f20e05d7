package genius

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"playlens/internal/source"
)

const songPage = `<html><body>
<div data-lyrics-container="true">Hello darkness my old friend</div>
<div data-lyrics-container="true">I've come to talk with you again</div>
</body></html>`

// newServer returns a test server answering /search with a single hit whose
// song page is served by the same server at /songs/1.
func newServer(t *testing.T, searchStatus int, hits bool) *httptest.Server {
	t.Helper()
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/search":
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
			if searchStatus != http.StatusOK {
				w.WriteHeader(searchStatus)
				return
			}
			if !hits {
				fmt.Fprint(w, `{"response":{"hits":[]}}`)
				return
			}
			fmt.Fprintf(w, `{"response":{"hits":[
				{"type":"song","result":{"url":"%s/songs/1","title":"Song A","primary_artist":{"name":"Artist1"}}}
			]}}`, srv.URL)
		case "/songs/1":
			fmt.Fprint(w, songPage)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newClient(srv *httptest.Server, opts ...Option) *Client {
	opts = append([]Option{WithBaseURL(srv.URL), WithHTTPClient(srv.Client())}, opts...)
	return New("test-token", zap.NewNop(), opts...)
}

func TestLyrics(t *testing.T) {
	srv := newServer(t, http.StatusOK, true)
	c := newClient(srv)

	lyrics, err := c.Lyrics(context.Background(), "Song A", "Artist1")
	require.NoError(t, err)
	assert.Contains(t, lyrics, "Hello darkness my old friend")
	assert.Contains(t, lyrics, "talk with you again")
}

func TestLyricsNotFound(t *testing.T) {
	srv := newServer(t, http.StatusOK, false)
	c := newClient(srv)

	_, err := c.Lyrics(context.Background(), "Unknown", "Nobody")
	assert.ErrorIs(t, err, source.ErrLyricsNotFound)
}

func TestLyricsAuthErrors(t *testing.T) {
	srv := newServer(t, http.StatusUnauthorized, false)

	var authErr *source.AuthError

	// rejected token
	_, err := newClient(srv).Lyrics(context.Background(), "Song A", "Artist1")
	require.ErrorAs(t, err, &authErr)

	// missing token fails before any request is made
	empty := New("", zap.NewNop(), WithBaseURL(srv.URL))
	_, err = empty.Lyrics(context.Background(), "Song A", "Artist1")
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "genius", authErr.Service)
}

func TestLyricsFetchError(t *testing.T) {
	srv := newServer(t, http.StatusInternalServerError, false)

	_, err := newClient(srv).Lyrics(context.Background(), "Song A", "Artist1")
	var fetchErr *source.FetchError
	assert.ErrorAs(t, err, &fetchErr)
}

func TestLyricsCache(t *testing.T) {
	srv := newServer(t, http.StatusOK, true)
	dir := t.TempDir()
	c := newClient(srv, WithCacheDir(dir))

	_, err := c.Lyrics(context.Background(), "Song A!", "Artist 1")
	require.NoError(t, err)

	path := filepath.Join(dir, "artist_1-song_a.txt")
	bs, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(bs), "Hello darkness")

	// second lookup is served from disk even if the server goes away
	srv.Close()
	lyrics, err := c.Lyrics(context.Background(), "Song A!", "Artist 1")
	require.NoError(t, err)
	assert.Contains(t, lyrics, "Hello darkness")
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "artist_1", sanitize("Artist 1"))
	assert.Equal(t, "song_a", sanitize("Song A!"))
	assert.Equal(t, "", sanitize("!?"))
}
