package catalog

import (
	"context"

	"github.com/ytget/video-catalog/internal/model"
)

// Source fetches the full catalog. It either resolves with every entry or fails.
type Source interface {
	Fetch(ctx context.Context) ([]model.CatalogEntry, error)
}

// DurationProber resolves the duration of a source in whole seconds
type DurationProber interface {
	ProbeDuration(ctx context.Context, source string) (int, error)
}
