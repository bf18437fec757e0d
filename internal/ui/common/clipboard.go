package common

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

// ErrNothingToCopy is returned for slide text that is blank after trimming.
var ErrNothingToCopy = errors.New("nothing to copy")

// Clipboard backends, replaced in tests.
var (
	clipboardOS    = runtime.GOOS
	pbcopy         = runPbcopy
	writeClipboard = clipboard.WriteAll
)

// CopyToClipboard puts slide text on the system clipboard. Surrounding
// whitespace is dropped. On macOS pbcopy is tried first and the portable
// writer only runs when it fails.
func CopyToClipboard(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrNothingToCopy
	}
	if clipboardOS == "darwin" && pbcopy(text) == nil {
		return nil
	}
	if err := writeClipboard(text); err != nil {
		return fmt.Errorf("system clipboard: %w", err)
	}
	return nil
}

func runPbcopy(text string) error {
	cmd := exec.Command("pbcopy")
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}
