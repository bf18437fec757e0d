package common

import (
	"errors"
	"strings"
	"testing"
)

func stubClipboard(t *testing.T, goos string, pb, write func(string) error) {
	t.Helper()
	oldOS, oldPb, oldWrite := clipboardOS, pbcopy, writeClipboard
	clipboardOS, pbcopy, writeClipboard = goos, pb, write
	t.Cleanup(func() { clipboardOS, pbcopy, writeClipboard = oldOS, oldPb, oldWrite })
}

func TestCopyToClipboardTrimsSlideText(t *testing.T) {
	var got string
	stubClipboard(t, "linux",
		func(string) error { t.Fatal("pbcopy used off macOS"); return nil },
		func(s string) error { got = s; return nil })

	if err := CopyToClipboard("\n  Welcome\n\nBody text  \n"); err != nil {
		t.Fatalf("CopyToClipboard: %v", err)
	}
	if got != "Welcome\n\nBody text" {
		t.Fatalf("copied %q", got)
	}
}

func TestCopyToClipboardRefusesBlankText(t *testing.T) {
	stubClipboard(t, "linux", nil, func(string) error {
		t.Fatal("blank text reached the clipboard")
		return nil
	})
	if err := CopyToClipboard(" \n\t"); !errors.Is(err, ErrNothingToCopy) {
		t.Fatalf("err = %v, want ErrNothingToCopy", err)
	}
}

func TestCopyToClipboardFallsBackFromPbcopy(t *testing.T) {
	var portable int
	stubClipboard(t, "darwin",
		func(string) error { return errors.New("pbcopy missing") },
		func(string) error { portable++; return nil })
	if err := CopyToClipboard("slide"); err != nil {
		t.Fatalf("CopyToClipboard: %v", err)
	}
	if portable != 1 {
		t.Fatalf("portable writer calls = %d, want 1", portable)
	}

	stubClipboard(t, "darwin",
		func(string) error { return nil },
		func(string) error { t.Fatal("portable writer used after pbcopy succeeded"); return nil })
	if err := CopyToClipboard("slide"); err != nil {
		t.Fatalf("CopyToClipboard: %v", err)
	}
}

func TestCopyToClipboardWrapsBackendError(t *testing.T) {
	backend := errors.New("no xclip")
	stubClipboard(t, "linux", nil, func(string) error { return backend })
	err := CopyToClipboard("slide")
	if !errors.Is(err, backend) || !strings.Contains(err.Error(), "system clipboard") {
		t.Fatalf("err = %v", err)
	}
}
