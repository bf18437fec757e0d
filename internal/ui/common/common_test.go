package common

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/carousel/internal/messages"
)

func TestHitAt(t *testing.T) {
	regions := []HitRegion{
		{ID: "prev", X: 0, Y: 5, Width: 6, Height: 1},
		{ID: "next", X: 20, Y: 5, Width: 6, Height: 1},
	}
	if r, ok := HitAt(regions, 22, 5); !ok || r.ID != "next" {
		t.Fatalf("HitAt(22,5) = %+v, %v", r, ok)
	}
	if _, ok := HitAt(regions, 6, 5); ok {
		t.Fatal("x at region end should be outside")
	}
	if _, ok := HitAt(regions, 0, 4); ok {
		t.Fatal("row above should be outside")
	}
}

func TestSafeCmdRecoversPanic(t *testing.T) {
	cmd := SafeCmd(func() tea.Msg { panic("boom") })
	msg := cmd()
	errMsg, ok := msg.(messages.Error)
	if !ok {
		t.Fatalf("expected messages.Error, got %T", msg)
	}
	if errMsg.Context != "command" || !strings.Contains(errMsg.Err.Error(), "boom") {
		t.Fatalf("unexpected error: %+v", errMsg)
	}
}

func TestSafeBatchDropsNil(t *testing.T) {
	if SafeBatch(nil, nil) != nil {
		t.Fatal("expected nil for all-nil batch")
	}
	single := SafeBatch(nil, func() tea.Msg { return "ok" })
	if got := single(); got != "ok" {
		t.Fatalf("single command result = %v", got)
	}
}

func TestToastReplacedToastIgnoresStaleDismiss(t *testing.T) {
	m := NewToastModel()
	m.ShowInfo("first")
	staleSeq := m.seq
	m.ShowSuccess("second")

	m, _ = m.Update(ToastDismissed{seq: staleSeq})
	if !m.Visible() {
		t.Fatal("stale dismissal hid the newer toast")
	}
	if !strings.Contains(m.View(), "second") {
		t.Fatalf("view = %q", m.View())
	}

	m, _ = m.Update(ToastDismissed{seq: m.seq})
	if m.Visible() || m.View() != "" {
		t.Fatal("expected toast dismissed")
	}
}

func TestGetThemeFallsBack(t *testing.T) {
	if got := GetTheme("missing").ID; got != ThemeTokyoNight {
		t.Fatalf("fallback theme = %q", got)
	}
	if got := GetTheme(ThemeNord).ID; got != ThemeNord {
		t.Fatalf("GetTheme(nord) = %q", got)
	}
}
