package common

// Icons used throughout the application
var Icons = struct {
	Prev      string
	Next      string
	Play      string
	Pause     string
	Dot       string
	DotActive string
	More      string
	Success   string
	Error     string
}{
	Prev:      "‹",
	Next:      "›",
	Play:      "▶",
	Pause:     "⏸",
	Dot:       "○",
	DotActive: "●",
	More:      "…",
	Success:   "✓",
	Error:     "✗",
}
