// Package spotify implements source.PlaylistSource on the Spotify Web API.
//
// Credentials come from the app's configuration (client ID + secret); the
// adapter uses the client-credentials grant, so no user login or browser
// round-trip is involved.
package spotify

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"go.uber.org/zap"
	"golang.org/x/oauth2/clientcredentials"

	"playlens/internal/playlist"
	"playlens/internal/source"
)

const serviceName = "spotify"

// pageSize is the Spotify API maximum for playlist item pages.
const pageSize = 100

// Client is a read-only Spotify playlist source.
type Client struct {
	api *spotify.Client
	log *zap.Logger
}

// New authenticates against Spotify with the client-credentials grant and
// returns a playlist source. Missing or rejected credentials yield
// *source.AuthError.
func New(ctx context.Context, clientID, clientSecret string, log *zap.Logger) (*Client, error) {
	if clientID == "" || clientSecret == "" {
		return nil, &source.AuthError{
			Service: serviceName,
			Err:     fmt.Errorf("SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET must be set"),
		}
	}

	creds := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}
	token, err := creds.Token(ctx)
	if err != nil {
		return nil, &source.AuthError{Service: serviceName, Err: err}
	}

	httpClient := spotifyauth.New().Client(ctx, token)
	return &Client{api: spotify.New(httpClient), log: log}, nil
}

// Playlist fetches every track of the playlist identified by urlOrID, in
// service order, tagged tag. Durations are converted from milliseconds to
// seconds and multiple artists are joined with ", ". Non-track items
// (podcast episodes) are skipped.
func (c *Client) Playlist(ctx context.Context, urlOrID, tag string) (playlist.Playlist, error) {
	id, err := PlaylistID(urlOrID)
	if err != nil {
		return playlist.Playlist{}, &source.FetchError{Service: serviceName, Err: err}
	}

	var tracks []playlist.Track
	offset := 0
	for {
		page, err := c.api.GetPlaylistItems(
			ctx,
			spotify.ID(id),
			spotify.Limit(pageSize),
			spotify.Offset(offset),
		)
		if err != nil {
			return playlist.Playlist{}, &source.FetchError{Service: serviceName, Err: err}
		}

		for _, item := range page.Items {
			full := item.Track.Track
			if full == nil {
				continue
			}
			tracks = append(tracks, fromFullTrack(full))
		}

		if len(page.Items) < pageSize {
			break
		}
		offset += pageSize
	}

	c.log.Info("fetched spotify playlist",
		zap.String("playlist_id", id),
		zap.String("tag", tag),
		zap.Int("tracks", len(tracks)))

	return playlist.New(tag, tracks), nil
}

// fromFullTrack converts Spotify track metadata into the internal model.
func fromFullTrack(t *spotify.FullTrack) playlist.Track {
	names := make([]string, len(t.Artists))
	for i, a := range t.Artists {
		names[i] = a.Name
	}
	return playlist.Track{
		Title:    t.Name,
		Artist:   strings.Join(names, ", "),
		Album:    t.Album.Name,
		Duration: int(t.TimeDuration().Seconds()),
	}
}

// PlaylistID extracts the playlist ID from an open.spotify.com URL, a
// spotify:playlist: URI, or a bare ID.
func PlaylistID(urlOrID string) (string, error) {
	s := strings.TrimSpace(urlOrID)
	if s == "" {
		return "", fmt.Errorf("empty playlist identifier")
	}

	if rest, ok := strings.CutPrefix(s, "spotify:playlist:"); ok {
		if rest == "" {
			return "", fmt.Errorf("playlist URI %q has no ID", urlOrID)
		}
		return rest, nil
	}

	if strings.Contains(s, "://") {
		u, err := url.Parse(s)
		if err != nil {
			return "", fmt.Errorf("invalid playlist URL %q: %w", urlOrID, err)
		}
		parts := strings.Split(strings.Trim(u.Path, "/"), "/")
		if len(parts) != 2 || parts[0] != "playlist" || parts[1] == "" {
			return "", fmt.Errorf("%q is not a spotify playlist link", urlOrID)
		}
		return parts[1], nil
	}

	return s, nil
}
