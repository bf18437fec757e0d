package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/andyrewlee/carousel/internal/ui/common"
)

// Frame sizes outside these bounds produce unreadable or enormous PNGs.
const (
	minFrameWidth  = 20
	minFrameHeight = 6
	maxFrameCells  = 1000
)

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var deckExtensions = map[string]bool{
	".yaml":     true,
	".yml":      true,
	".md":       true,
	".markdown": true,
}

// ValidateDeckPath checks that path names a deck: a directory or a YAML or
// markdown file. It returns the path with a leading ~ expanded.
func ValidateDeckPath(path string) (string, error) {
	path = strings.TrimSpace(path)

	if path == "" {
		return "", &ValidationError{Field: "deck", Message: "path cannot be empty"}
	}

	// Expand home directory
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", &ValidationError{Field: "deck", Message: "cannot resolve home directory"}
		}
		switch {
		case path == "~":
			path = home
		case strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\"):
			path = filepath.Join(home, path[2:])
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &ValidationError{Field: "deck", Message: fmt.Sprintf("%s does not exist", path)}
		}
		return "", &ValidationError{Field: "deck", Message: fmt.Sprintf("cannot access %s: %v", path, err)}
	}

	if info.IsDir() {
		return path, nil
	}
	if !deckExtensions[strings.ToLower(filepath.Ext(path))] {
		return "", &ValidationError{Field: "deck", Message: "deck must be a directory or a .yaml, .yml, .md or .markdown file"}
	}
	return path, nil
}

// ValidateTheme accepts an empty name (use the configured theme) or one of
// the built-in themes.
func ValidateTheme(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	names := make([]string, 0, 4)
	for _, t := range common.AvailableThemes() {
		if string(t.ID) == id {
			return nil
		}
		names = append(names, string(t.ID))
	}
	return &ValidationError{
		Field:   "theme",
		Message: fmt.Sprintf("unknown theme '%s' (available: %s)", id, strings.Join(names, ", ")),
	}
}

// ValidateFrameSize checks an export frame size in terminal cells.
func ValidateFrameSize(width, height int) error {
	if width < minFrameWidth || height < minFrameHeight {
		return &ValidationError{
			Field:   "size",
			Message: fmt.Sprintf("frame must be at least %dx%d, got %dx%d", minFrameWidth, minFrameHeight, width, height),
		}
	}
	if width > maxFrameCells || height > maxFrameCells {
		return &ValidationError{Field: "size", Message: fmt.Sprintf("frame larger than %d cells", maxFrameCells)}
	}
	return nil
}
