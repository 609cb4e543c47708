package module

import "lipi/internal/platform/config"

// Options holds configuration settings for the backfill module
type Options struct {
	BatchSize int
	Version   int
	Gzip      bool
}

// FromConfig extracts Options from the given config.Conf
func FromConfig(cfg config.Conf) Options {
	cf := cfg.Prefix("CORE_BACKFILL_")
	return Options{
		BatchSize: cf.MayInt("BATCH_SIZE", 500),
		Version:   cf.MayInt("VERSION", 0), // 0 = classifier.Version
		Gzip:      cf.MayBool("GZIP", false),
	}
}
