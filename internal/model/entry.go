package model

// CatalogEntry is one playable catalog item
type CatalogEntry struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
	StreamURL   string `json:"streamUrl" yaml:"streamUrl"`
	FallbackURL string `json:"mp4Fallback,omitempty" yaml:"mp4Fallback,omitempty"`
	Duration    int    `json:"duration" yaml:"duration"` // whole seconds
}

// HasFallback reports whether the entry carries a usable alternate source.
// A fallback equal to the primary source is not usable.
func (e CatalogEntry) HasFallback() bool {
	return e.FallbackURL != "" && e.FallbackURL != e.StreamURL
}

// DurationLabel returns the formatted duration, e.g. "9:56"
func (e CatalogEntry) DurationLabel() string {
	return FormatDuration(e.Duration)
}

// FindEntry returns the entry with the given ID
func FindEntry(entries []CatalogEntry, id string) (CatalogEntry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return CatalogEntry{}, false
}
