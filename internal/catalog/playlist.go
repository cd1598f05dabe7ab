package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/ytget/ytdlp/v2"

	applog "github.com/ytget/video-catalog/internal/log"
	"github.com/ytget/video-catalog/internal/model"
)

// Playlist source constants
const (
	DefaultPlaylistTimeout  = 60 * time.Second
	PlaylistParam           = "list="
	ParamSeparator          = "&"
	YouTubeVideoURLTemplate = "https://www.youtube.com/watch?v=%s"
	YouTubeThumbTemplate    = "https://i.ytimg.com/vi/%s/hqdefault.jpg"
)

// PlaylistItem is a minimal playlist entry
type PlaylistItem struct {
	VideoID string
	Title   string
}

// PlaylistLister lists the items of a playlist
type PlaylistLister func(ctx context.Context, playlistID string) ([]PlaylistItem, error)

// PlaylistSource builds catalog entries from a YouTube playlist
type PlaylistSource struct {
	playlistID string
	timeout    time.Duration
	list       PlaylistLister
	logger     zerolog.Logger
}

// NewPlaylistSource creates a playlist source. The argument may be a playlist
// URL or a bare playlist ID.
func NewPlaylistSource(playlist string) *PlaylistSource {
	return &PlaylistSource{
		playlistID: ExtractPlaylistID(playlist),
		timeout:    DefaultPlaylistTimeout,
		list:       listWithYTDLP,
		logger:     applog.WithComponent("catalog"),
	}
}

// SetTimeout sets the timeout for listing operations
func (s *PlaylistSource) SetTimeout(timeout time.Duration) {
	s.timeout = timeout
}

// SetLister replaces the playlist backend
func (s *PlaylistSource) SetLister(list PlaylistLister) {
	s.list = list
}

// PlaylistID returns the resolved playlist ID
func (s *PlaylistSource) PlaylistID() string {
	return s.playlistID
}

// Fetch lists the playlist and maps its items to entries
func (s *PlaylistSource) Fetch(ctx context.Context) ([]model.CatalogEntry, error) {
	if s.playlistID == "" {
		return nil, fmt.Errorf("no playlist configured")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	items, err := s.list(ctx, s.playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	entries := make([]model.CatalogEntry, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if it.VideoID == "" {
			continue
		}
		// playlists may repeat a video; the catalog keeps its first position
		if _, dup := seen[it.VideoID]; dup {
			s.logger.Debug().Str("video_id", it.VideoID).Msg("skipping repeated playlist item")
			continue
		}
		seen[it.VideoID] = struct{}{}

		entry := model.CatalogEntry{
			ID:        it.VideoID,
			Title:     it.Title,
			Thumbnail: fmt.Sprintf(YouTubeThumbTemplate, it.VideoID),
			StreamURL: fmt.Sprintf(YouTubeVideoURLTemplate, it.VideoID),
		}
		if entry.Title == "" {
			entry.Title = it.VideoID
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// ExtractPlaylistID extracts the playlist ID from a URL, or returns the input
// unchanged when it already is an ID.
func ExtractPlaylistID(playlist string) string {
	playlist = strings.TrimSpace(playlist)
	if !strings.Contains(playlist, PlaylistParam) {
		if strings.Contains(playlist, "/") {
			return ""
		}
		return playlist
	}
	parts := strings.SplitN(playlist, PlaylistParam, 2)
	id := parts[1]
	if idx := strings.Index(id, ParamSeparator); idx >= 0 {
		id = id[:idx]
	}
	return id
}

// listWithYTDLP lists playlist items with the ytdlp library
func listWithYTDLP(ctx context.Context, playlistID string) ([]PlaylistItem, error) {
	d := ytdlp.New()
	items, err := d.GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, err
	}

	out := make([]PlaylistItem, 0, len(items))
	for _, it := range items {
		out = append(out, PlaylistItem{VideoID: it.VideoID, Title: it.Title})
	}
	return out, nil
}
