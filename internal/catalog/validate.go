package catalog

import (
	"errors"
	"fmt"

	"github.com/ytget/video-catalog/internal/model"
)

// ErrCatalogLoad wraps every failure to produce a catalog
var ErrCatalogLoad = errors.New("failed to load catalog")

// Validate checks the invariants every source must satisfy
func Validate(entries []model.CatalogEntry) error {
	seen := make(map[string]struct{}, len(entries))
	for i, e := range entries {
		if e.ID == "" {
			return fmt.Errorf("%w: entry %d has no id", ErrCatalogLoad, i)
		}
		if _, dup := seen[e.ID]; dup {
			return fmt.Errorf("%w: duplicate entry id %q", ErrCatalogLoad, e.ID)
		}
		seen[e.ID] = struct{}{}

		if e.StreamURL == "" {
			return fmt.Errorf("%w: entry %q has no stream url", ErrCatalogLoad, e.ID)
		}
		if e.Duration < 0 {
			return fmt.Errorf("%w: entry %q has negative duration %d", ErrCatalogLoad, e.ID, e.Duration)
		}
	}
	return nil
}
