package catalog

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	applog "github.com/ytget/video-catalog/internal/log"
	"github.com/ytget/video-catalog/internal/model"
)

// catalogDocument is the on-disk layout: a top-level "items" list
type catalogDocument struct {
	Items []model.CatalogEntry `yaml:"items"`
}

// FileSource reads the catalog from a YAML file
type FileSource struct {
	path   string
	prober DurationProber
	logger zerolog.Logger
}

// NewFileSource creates a source for the given YAML file
func NewFileSource(path string) *FileSource {
	return &FileSource{
		path:   path,
		logger: applog.WithComponent("catalog"),
	}
}

// SetDurationProber enables lookups for entries without a duration
func (s *FileSource) SetDurationProber(prober DurationProber) {
	s.prober = prober
}

// Path returns the catalog file path
func (s *FileSource) Path() string {
	return s.path
}

// Fetch reads and decodes the catalog file
func (s *FileSource) Fetch(ctx context.Context) ([]model.CatalogEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file %s: %w", s.path, err)
	}

	var doc catalogDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog file %s: %w", s.path, err)
	}

	if s.prober != nil {
		s.probeDurations(ctx, doc.Items)
	}
	return doc.Items, nil
}

// probeDurations fills unknown durations from the media itself. The fallback
// is tried when the primary source cannot be read.
func (s *FileSource) probeDurations(ctx context.Context, entries []model.CatalogEntry) {
	for i := range entries {
		e := &entries[i]
		if e.Duration != 0 {
			continue
		}
		if ctx.Err() != nil {
			return
		}

		var err error
		for _, source := range []string{e.StreamURL, e.FallbackURL} {
			if source == "" {
				continue
			}
			var seconds int
			if seconds, err = s.prober.ProbeDuration(ctx, source); err == nil {
				e.Duration = seconds
				break
			}
		}
		if err != nil {
			s.logger.Warn().Err(err).Str("entry_id", e.ID).Msg("duration probe failed")
		}
	}
}

// WriteFile encodes entries in the layout FileSource reads
func WriteFile(path string, entries []model.CatalogEntry) error {
	data, err := yaml.Marshal(catalogDocument{Items: entries})
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write catalog file %s: %w", path, err)
	}
	return nil
}
