package module

import "lipi/internal/platform/config"

// Options holds configuration settings for the results module
type Options struct {
	HardLimit      int
	DefaultCeiling float64
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	rf := cfg.Prefix("CORE_RESULTS_")
	return Options{
		HardLimit:      rf.MayInt("HARD_LIMIT", 500),
		DefaultCeiling: rf.MayFloat64("LOW_CONFIDENCE_CEILING", 0.5),
	}
}
