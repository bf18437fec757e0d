package config

import (
	"testing"
	"time"
)

func TestOverridesApply(t *testing.T) {
	cfg := defaultConfigAt(PathsAt(t.TempDir()))
	off := false

	Overrides{
		AutoPlay:      &off,
		AutoPlayDelay: 10 * time.Millisecond,
		Theme:         "nord",
	}.Apply(cfg)

	if cfg.Carousel.AutoPlay {
		t.Fatal("autoplay override not applied")
	}
	if cfg.Carousel.AutoPlayDelay != minAutoPlayDelay {
		t.Fatalf("delay = %v, want floor %v", cfg.Carousel.AutoPlayDelay, minAutoPlayDelay)
	}
	if !cfg.Carousel.PauseOnHover {
		t.Fatal("unset override changed pause_on_hover")
	}
	if cfg.UI.Theme != "nord" {
		t.Fatalf("theme = %q", cfg.UI.Theme)
	}
}

func TestEmptyOverridesKeepConfig(t *testing.T) {
	cfg := defaultConfigAt(PathsAt(t.TempDir()))
	want := *cfg
	Overrides{}.Apply(cfg)
	if cfg.Carousel != want.Carousel || cfg.UI != want.UI {
		t.Fatalf("config changed: %+v", cfg)
	}
	Overrides{}.Apply(nil)
}
