package catalog

import (
	"context"
	"time"

	"github.com/ytget/video-catalog/internal/model"
)

// DefaultFetchDelay simulates the network round trip of the demo catalog
const DefaultFetchDelay = 300 * time.Millisecond

// StaticSource serves an injected list of entries after a delay
type StaticSource struct {
	entries []model.CatalogEntry
	delay   time.Duration
}

// NewStaticSource creates a static source. The entries are copied.
func NewStaticSource(entries []model.CatalogEntry, delay time.Duration) *StaticSource {
	return &StaticSource{
		entries: cloneEntries(entries),
		delay:   delay,
	}
}

// Fetch waits for the configured delay and returns a copy of the entries
func (s *StaticSource) Fetch(ctx context.Context) ([]model.CatalogEntry, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}
	return cloneEntries(s.entries), nil
}

// DemoEntries returns a fresh copy of the built-in demo catalog
func DemoEntries() []model.CatalogEntry {
	return []model.CatalogEntry{
		{
			ID:          "bbb-hls",
			Title:       "Big Buck Bunny (HLS)",
			Description: "Short animated film used as a demo stream.",
			Thumbnail:   "https://i.imgur.com/8GVG6Zp.jpeg",
			StreamURL:   "https://test-streams.mux.dev/x36xhzz/x36xhzz.m3u8",
			FallbackURL: "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4",
			Duration:    596,
		},
		{
			ID:          "sintel-mp4",
			Title:       "Sintel (MP4)",
			Description: "Open movie — MP4 fallback.",
			Thumbnail:   "https://i.imgur.com/DvpvklR.png",
			StreamURL:   "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/Sintel.mp4",
			Duration:    888,
		},
		{
			ID:          "tears-hls",
			Title:       "Tears of Steel (HLS)",
			Description: "Open movie — HLS stream.",
			Thumbnail:   "https://i.imgur.com/fHyEMsl.png",
			StreamURL:   "https://test-streams.mux.dev/tears-of-steel/playlist.m3u8",
			FallbackURL: "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/TearsOfSteel.mp4",
			Duration:    734,
		},
		{
			ID:          "elephants-mp4",
			Title:       "Elephant Dream (MP4)",
			Description: "Open movie — MP4 demo.",
			Thumbnail:   "https://i.imgur.com/Yo3j8kG.png",
			StreamURL:   "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ElephantsDream.mp4",
			Duration:    653,
		},
		{
			ID:          "bbb-mp4",
			Title:       "Big Buck Bunny (MP4)",
			Description: "MP4 fallback of BBB.",
			Thumbnail:   "https://i.imgur.com/8GVG6Zp.jpeg",
			StreamURL:   "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4",
			Duration:    596,
		},
		{
			ID:          "for-bigger-joyrides",
			Title:       "For Bigger Joyrides (MP4)",
			Description: "Short demo clip.",
			Thumbnail:   "https://i.imgur.com/DvpvklR.png",
			StreamURL:   "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerJoyrides.mp4",
			Duration:    75,
		},
	}
}

func cloneEntries(entries []model.CatalogEntry) []model.CatalogEntry {
	if entries == nil {
		return nil
	}
	out := make([]model.CatalogEntry, len(entries))
	copy(out, entries)
	return out
}
