package config

import "time"

// Overrides are command-line settings layered over the config file. They
// are re-applied whenever the file is reloaded.
type Overrides struct {
	AutoPlay      *bool
	AutoPlayDelay time.Duration
	PauseOnHover  *bool
	Theme         string
}

// Apply writes the set overrides into cfg.
func (o Overrides) Apply(cfg *Config) {
	if cfg == nil {
		return
	}
	if o.AutoPlay != nil {
		cfg.Carousel.AutoPlay = *o.AutoPlay
	}
	if o.AutoPlayDelay != 0 {
		cfg.Carousel.AutoPlayDelay = NormalizeDelay(o.AutoPlayDelay)
	}
	if o.PauseOnHover != nil {
		cfg.Carousel.PauseOnHover = *o.PauseOnHover
	}
	if o.Theme != "" {
		cfg.UI.Theme = o.Theme
	}
}
