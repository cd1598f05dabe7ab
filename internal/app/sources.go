// Package app assembles the catalog source, player and controller from the
// user's settings.
package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/ytget/video-catalog/internal/catalog"
	"github.com/ytget/video-catalog/internal/config"
	applog "github.com/ytget/video-catalog/internal/log"
	"github.com/ytget/video-catalog/internal/probe"
)

var (
	// ErrNoCatalogFile is returned when the file source has no path configured
	ErrNoCatalogFile = errors.New("no catalog file configured")
	// ErrNoPlaylist is returned when the playlist source has no playlist configured
	ErrNoPlaylist = errors.New("no playlist configured")
)

// BuildSource creates the catalog source selected in settings
func BuildSource(settings *config.Settings) (catalog.Source, error) {
	kind := settings.GetCatalogSource()
	logger := applog.WithComponent("app")

	switch kind {
	case config.SourceFile:
		path := settings.GetCatalogFile()
		if path == "" {
			return nil, ErrNoCatalogFile
		}
		source := catalog.NewFileSource(path)
		if settings.GetProbeDurations() {
			ffprobe := probe.NewFFprobe()
			if ffprobe.Available() {
				source.SetDurationProber(ffprobe)
			} else {
				logger.Warn().Msg("ffprobe not found, durations stay unknown")
			}
		}
		logger.Info().Str("path", path).Msg("using file catalog")
		return source, nil

	case config.SourcePlaylist:
		source := catalog.NewPlaylistSource(settings.GetPlaylistID())
		if source.PlaylistID() == "" {
			return nil, ErrNoPlaylist
		}
		logger.Info().Str("playlist", source.PlaylistID()).Msg("using playlist catalog")
		return source, nil

	case config.SourceDemo:
		delay := time.Duration(settings.GetFetchDelayMS()) * time.Millisecond
		logger.Info().Dur("delay", delay).Msg("using demo catalog")
		return catalog.NewStaticSource(catalog.DemoEntries(), delay), nil
	}

	return nil, fmt.Errorf("unknown catalog source %q", kind)
}
