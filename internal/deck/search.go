package deck

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Match is one search hit.
type Match struct {
	Index int
	Title string
	Score int
}

// Search fuzzy-matches query against slide titles, best match first.
func (d *Deck) Search(query string) []Match {
	query = strings.TrimSpace(query)
	if query == "" || d.Len() == 0 {
		return nil
	}
	found := fuzzy.Find(query, d.Titles())
	matches := make([]Match, len(found))
	for i, f := range found {
		matches[i] = Match{Index: f.Index, Title: f.Str, Score: f.Score}
	}
	return matches
}

// Best returns the index of the best match for query.
func (d *Deck) Best(query string) (int, bool) {
	matches := d.Search(query)
	if len(matches) == 0 {
		return 0, false
	}
	return matches[0].Index, true
}
