package marquee

import (
	"encoding/json"
	"fmt"
	"math"
)

// PreloaderConfig holds the preloader's copy and timings. Durations and
// overlaps are in seconds; an overlap pulls an entry earlier than the end
// of the one before it.
type PreloaderConfig struct {
	Brand    string `json:"brand"`
	Subtitle string `json:"subtitle"`

	// Phase 1: brand reveal
	CharStagger      float64 `json:"charStagger"`
	CharDuration     float64 `json:"charDuration"`
	LineDuration     float64 `json:"lineDuration"`
	LineOverlap      float64 `json:"lineOverlap"`
	SubtitleDuration float64 `json:"subtitleDuration"`
	SubtitleOverlap  float64 `json:"subtitleOverlap"`

	// Phase 2: counter
	CounterFadeDuration float64 `json:"counterFadeDuration"`
	CounterFadeOverlap  float64 `json:"counterFadeOverlap"`
	CounterDuration     float64 `json:"counterDuration"`
	CounterOverlap      float64 `json:"counterOverlap"`

	// Phase 3: hold and flash
	Hold          float64 `json:"hold"`
	FlashOpacity  float64 `json:"flashOpacity"`
	FlashDuration float64 `json:"flashDuration"`

	// Phase 4: exit
	ContentFadeDuration float64 `json:"contentFadeDuration"`
	CurtainDuration     float64 `json:"curtainDuration"`
	CurtainOverlap      float64 `json:"curtainOverlap"`
}

// DefaultPreloaderConfig returns the stock preloader.
func DefaultPreloaderConfig() PreloaderConfig {
	return PreloaderConfig{
		Brand:    "LEAGUE",
		Subtitle: "1V1",

		CharStagger:      0.04,
		CharDuration:     0.5,
		LineDuration:     0.45,
		LineOverlap:      0.2,
		SubtitleDuration: 0.35,
		SubtitleOverlap:  0.15,

		CounterFadeDuration: 0.3,
		CounterFadeOverlap:  0.3,
		CounterDuration:     1.6,
		CounterOverlap:      0.1,

		Hold:          0.15,
		FlashOpacity:  0.04,
		FlashDuration: 0.04,

		ContentFadeDuration: 0.25,
		CurtainDuration:     0.8,
		CurtainOverlap:      0.05,
	}
}

// LoadPreloaderConfig parses JSON over the defaults, so a document only
// needs the fields it changes, and validates the result.
func LoadPreloaderConfig(jsonData []byte) (PreloaderConfig, error) {
	cfg := DefaultPreloaderConfig()
	if err := json.Unmarshal(jsonData, &cfg); err != nil {
		return PreloaderConfig{}, fmt.Errorf("parse preloader config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return PreloaderConfig{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid field, wrapping ErrInvalidConfig.
func (c PreloaderConfig) Validate() error {
	if c.Brand == "" {
		return fmt.Errorf("preloader config: brand is empty: %w", ErrInvalidConfig)
	}
	fields := []struct {
		name string
		v    float64
	}{
		{"charStagger", c.CharStagger},
		{"charDuration", c.CharDuration},
		{"lineDuration", c.LineDuration},
		{"lineOverlap", c.LineOverlap},
		{"subtitleDuration", c.SubtitleDuration},
		{"subtitleOverlap", c.SubtitleOverlap},
		{"counterFadeDuration", c.CounterFadeDuration},
		{"counterFadeOverlap", c.CounterFadeOverlap},
		{"counterDuration", c.CounterDuration},
		{"counterOverlap", c.CounterOverlap},
		{"hold", c.Hold},
		{"flashDuration", c.FlashDuration},
		{"contentFadeDuration", c.ContentFadeDuration},
		{"curtainDuration", c.CurtainDuration},
		{"curtainOverlap", c.CurtainOverlap},
	}
	for _, f := range fields {
		if f.v < 0 || math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("preloader config: %s = %v: %w", f.name, f.v, ErrInvalidConfig)
		}
	}
	if c.FlashOpacity < 0 || c.FlashOpacity > 1 || math.IsNaN(c.FlashOpacity) {
		return fmt.Errorf("preloader config: flashOpacity = %v out of [0, 1]: %w", c.FlashOpacity, ErrInvalidConfig)
	}
	return nil
}

// SiteConfig configures BuildSite.
type SiteConfig struct {
	Preloader PreloaderConfig `json:"preloader"`

	// SmoothScroll enables spring-smoothed wheel scrolling stepped at TPS
	// ticks per second.
	SmoothScroll bool    `json:"smoothScroll"`
	TPS          int     `json:"tps"`
	SpringFreq   float64 `json:"springFrequency"`
	SpringDamp   float64 `json:"springDamping"`

	// NavScrollThreshold is the scroll offset past which the navbar shows
	// its scrolled state.
	NavScrollThreshold float64 `json:"navScrollThreshold"`

	// SkipPreloader marks the page ready at mount instead of running the
	// preloader.
	SkipPreloader bool `json:"skipPreloader"`
}

// DefaultSiteConfig returns the stock site.
func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		Preloader:          DefaultPreloaderConfig(),
		SmoothScroll:       true,
		TPS:                60,
		SpringFreq:         6,
		SpringDamp:         1,
		NavScrollThreshold: 80,
	}
}

// LoadSiteConfig parses JSON over the defaults and validates the result.
func LoadSiteConfig(jsonData []byte) (SiteConfig, error) {
	cfg := DefaultSiteConfig()
	if err := json.Unmarshal(jsonData, &cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("parse site config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return SiteConfig{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid field, wrapping ErrInvalidConfig.
func (c SiteConfig) Validate() error {
	if err := c.Preloader.Validate(); err != nil {
		return err
	}
	if c.SmoothScroll && (c.TPS <= 0 || c.SpringFreq <= 0 || c.SpringDamp < 0) {
		return fmt.Errorf("site config: smooth scroll needs tps > 0, springFrequency > 0, springDamping >= 0: %w", ErrInvalidConfig)
	}
	if c.NavScrollThreshold < 0 {
		return fmt.Errorf("site config: navScrollThreshold = %v: %w", c.NavScrollThreshold, ErrInvalidConfig)
	}
	return nil
}
