package messages

// Error is sent when an async operation fails.
type Error struct {
	Err     error
	Context string
	Logged  bool
}

func (e Error) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// JumpToSlide asks the carousel to go to a slide by index.
type JumpToSlide struct {
	Index int
}

// SearchCancelled is sent when the search prompt is dismissed.
type SearchCancelled struct{}

// SlideChanged reports the carousel's active slide after a navigation.
type SlideChanged struct {
	Index int
	Total int
}

// DeckChanged is sent by the file watcher when the deck on disk changed.
type DeckChanged struct {
	Path string
}

// ConfigChanged is sent by the file watcher when the config file changed.
type ConfigChanged struct {
	Path string
}

// Copied is sent after slide text was written to the clipboard.
type Copied struct {
	Title string
}
