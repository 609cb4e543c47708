package module

import (
	"lipi/internal/platform/config"
)

// Options configures the entries module
type Options struct {
	HardLimit    int
	MaxTextBytes int
	// TxTimeout bounds each entries transaction server-side via
	// SET LOCAL statement_timeout; empty disables the hook
	TxTimeout string
}

// FromConfig reads options from config.Conf
func FromConfig(cfg config.Conf) Options {
	ef := cfg.Prefix("CORE_ENTRIES_")
	return Options{
		HardLimit:    ef.MayInt("HARD_LIMIT", 5000),
		MaxTextBytes: ef.MayInt("MAX_TEXT_BYTES", 16<<10),
		TxTimeout:    ef.MayString("TX_TIMEOUT", "5s"),
	}
}
