package navigation

import "github.com/ytget/video-catalog/internal/model"

// ScreenKind identifies the variant of a Screen
type ScreenKind string

const (
	ScreenHome    ScreenKind = "home"
	ScreenDetails ScreenKind = "details"
	ScreenPlayer  ScreenKind = "player"
)

// String returns the string representation of ScreenKind
func (k ScreenKind) String() string {
	return string(k)
}

// Screen is one of Home, Details or Player. The unexported method closes
// the set.
type Screen interface {
	Kind() ScreenKind
	screen()
}

// Home is the catalog grid
type Home struct{}

// Details shows a single entry
type Details struct {
	ItemID string
}

// Player plays a source with an optional alternate
type Player struct {
	StreamURL   string
	Title       string
	FallbackURL string
}

func (Home) Kind() ScreenKind    { return ScreenHome }
func (Details) Kind() ScreenKind { return ScreenDetails }
func (Player) Kind() ScreenKind  { return ScreenPlayer }

func (Home) screen()    {}
func (Details) screen() {}
func (Player) screen()  {}

// PlayerFor builds the player screen for an entry
func PlayerFor(entry model.CatalogEntry) Player {
	return Player{
		StreamURL:   entry.StreamURL,
		Title:       entry.Title,
		FallbackURL: entry.FallbackURL,
	}
}

// DetailsFor builds the details screen for an entry
func DetailsFor(entry model.CatalogEntry) Details {
	return Details{ItemID: entry.ID}
}
