package module

import "lipi/internal/platform/config"

// Options holds configuration settings for the classify module
type Options struct {
	Version  int
	Workers  int
	PageSize int
	DryRun   bool
}

// FromConfig extracts Options from the given config.Conf
func FromConfig(cfg config.Conf) Options {
	cf := cfg.Prefix("CORE_CLASSIFY_")
	return Options{
		Version:  cf.MayInt("VERSION", 0), // 0 = classifier.Version
		Workers:  cf.MayInt("WORKERS", 2),
		PageSize: cf.MayInt("PAGE_SIZE", 5000),
		DryRun:   cf.MayBool("DRY_RUN", false),
	}
}
