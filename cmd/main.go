package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh/spinner"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"playlens/internal/analyze"
	"playlens/internal/config"
	"playlens/internal/genius"
	"playlens/internal/logger"
	"playlens/internal/parse"
	"playlens/internal/playlist"
	"playlens/internal/render"
	"playlens/internal/spotify"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFile)
	defer log.Sync()

	app := &cli.App{
		Name:  "playlens",
		Usage: "playlens analyzes playlists: artist and duration statistics, intersections, and lyrics word clouds.",
		Commands: []*cli.Command{
			statsCommand(cfg, log),
			intersectCommand(cfg, log),
			wordcloudCommand(cfg, log),
			printCommand(cfg, log),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func inputFlags(prefix string) []cli.Flag {
	name := func(s string) string {
		if prefix == "" {
			return s
		}
		return s + "-" + prefix
	}
	return []cli.Flag{
		&cli.StringFlag{Name: name("file"), Usage: "playlist text file to analyze"},
		&cli.StringFlag{Name: name("url"), Usage: "spotify playlist URL or ID to analyze"},
		&cli.StringFlag{Name: name("tag"), Value: "playlist" + suffixOr(prefix), Usage: "label used in titles and artifact names"},
	}
}

func suffixOr(prefix string) string {
	if prefix == "" {
		return ""
	}
	return "_" + prefix
}

func outFlag(cfg *config.Config) cli.Flag {
	return &cli.StringFlag{Name: "out", Value: cfg.OutputDir, Usage: "directory image artifacts are written to"}
}

// loadPlaylist builds a playlist from either a file or a Spotify URL,
// wrapping the network fetch in a spinner.
func loadPlaylist(ctx context.Context, cfg *config.Config, log *zap.Logger, file, url, tag string) (playlist.Playlist, error) {
	switch {
	case file != "" && url != "":
		return playlist.Playlist{}, fmt.Errorf("pass either a file or a url, not both")
	case file != "":
		return parse.File(file, tag)
	case url != "":
		client, err := spotify.New(ctx, cfg.SpotifyClientID, cfg.SpotifyClientSecret, log)
		if err != nil {
			return playlist.Playlist{}, err
		}
		var p playlist.Playlist
		fetch := func(ctx context.Context) error {
			p, err = client.Playlist(ctx, url, tag)
			return err
		}
		if err := spinner.New().Title("Fetching playlist...").Context(ctx).ActionWithErr(fetch).Run(); err != nil {
			return playlist.Playlist{}, err
		}
		return p, nil
	default:
		return playlist.Playlist{}, fmt.Errorf("pass --file or --url")
	}
}

func newAnalyzer(cfg *config.Config, log *zap.Logger, withLyrics bool, outDir string) (*analyze.Analyzer, *render.Images) {
	images := render.NewImages(outDir, cfg.WordCloudFont)
	if !withLyrics {
		return analyze.New(images, nil, log), images
	}
	lyrics := genius.New(cfg.GeniusAccessToken, log, genius.WithCacheDir(cfg.LyricsCacheDir))
	return analyze.New(images, lyrics, log), images
}

func statsCommand(cfg *config.Config, log *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Render artist frequency charts and the duration boxplot",
		Flags: append(inputFlags(""), outFlag(cfg)),
		Action: func(c *cli.Context) error {
			p, err := loadPlaylist(c.Context, cfg, log, c.String("file"), c.String("url"), c.String("tag"))
			if err != nil {
				return err
			}

			a, _ := newAnalyzer(cfg, log, false, c.String("out"))
			for _, draw := range []func(playlist.Playlist) (string, error){
				a.ArtistFrequencyBar,
				a.ArtistFrequencyDist,
				a.DurationBox,
			} {
				out, err := draw(p)
				if err != nil {
					return err
				}
				fmt.Println("wrote", out)
			}
			return nil
		},
	}
}

func intersectCommand(cfg *config.Config, log *zap.Logger) *cli.Command {
	flags := append(append(inputFlags("a"), inputFlags("b")...), outFlag(cfg))
	return &cli.Command{
		Name:  "intersect",
		Usage: "Compute the tracks two playlists share and render a Venn diagram",
		Flags: flags,
		Action: func(c *cli.Context) error {
			p1, err := loadPlaylist(c.Context, cfg, log, c.String("file-a"), c.String("url-a"), c.String("tag-a"))
			if err != nil {
				return err
			}
			p2, err := loadPlaylist(c.Context, cfg, log, c.String("file-b"), c.String("url-b"), c.String("tag-b"))
			if err != nil {
				return err
			}

			a, _ := newAnalyzer(cfg, log, false, c.String("out"))
			common, artifact, err := a.Intersect(p1, p2)
			if err != nil {
				return err
			}

			fmt.Printf("%d shared tracks:\n", common.Len())
			for _, t := range common.Tracks {
				fmt.Println(t)
			}
			fmt.Println("wrote", artifact)
			return nil
		},
	}
}

func wordcloudCommand(cfg *config.Config, log *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "wordcloud",
		Usage: "Fetch lyrics for every track and render a word cloud",
		Flags: append(inputFlags(""), outFlag(cfg)),
		Action: func(c *cli.Context) error {
			a, images := newAnalyzer(cfg, log, true, c.String("out"))
			if !images.HasFont() {
				log.Warn("word-cloud font not found, falling back to the built-in face",
					zap.String("font", cfg.WordCloudFont))
			}

			p, err := loadPlaylist(c.Context, cfg, log, c.String("file"), c.String("url"), c.String("tag"))
			if err != nil {
				return err
			}
			var report analyze.WordCloudReport
			build := func(ctx context.Context) error {
				report, err = a.WordCloud(ctx, p)
				return err
			}
			if err := spinner.New().Title("Fetching lyrics...").Context(c.Context).ActionWithErr(build).Run(); err != nil {
				return err
			}

			if len(report.Skipped) > 0 {
				fmt.Printf("no lyrics found for %d of %d tracks:\n", len(report.Skipped), p.Len())
				for _, t := range report.Skipped {
					fmt.Println("  ", t)
				}
			}
			fmt.Println("wrote", report.Artifact)
			return nil
		},
	}
}

func printCommand(cfg *config.Config, log *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "print",
		Usage: "Print every track of a playlist",
		Flags: inputFlags(""),
		Action: func(c *cli.Context) error {
			p, err := loadPlaylist(c.Context, cfg, log, c.String("file"), c.String("url"), c.String("tag"))
			if err != nil {
				return err
			}
			for _, t := range p.Tracks {
				fmt.Println(t)
			}
			return nil
		},
	}
}
