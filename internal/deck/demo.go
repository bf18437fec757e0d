package deck

// Demo returns the built-in deck shown when no deck path is given.
func Demo() *Deck {
	return New("Carousel", StyleDark, []*Slide{
		NewSlide("Welcome", "Slides rotate every few seconds.\nHover over the carousel to hold the current slide.", false),
		NewSlide("Navigate", "Use the arrow keys, the ‹ › buttons or the dots below.\nPress space to pause or resume autoplay.", false),
		NewSlide("Drag", "Press on a slide and drag sideways.\nRelease past a fifth of the width to move one slide.", false),
		NewSlide("Decks", "Run `carousel deck.yaml` to show your own slides.\n\n"+
			"- a YAML file with a `slides` list\n"+
			"- a markdown file split by `---`\n"+
			"- a directory of `*.md` files", true),
	})
}
