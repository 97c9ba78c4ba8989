package configs

import "time"

// Scheduler defines configuration for cron-driven campaign execution. When
// enabled, campaigns carrying a cron schedule are started automatically.
type Scheduler struct {
	// Enabled toggles the scheduler.
	Enabled bool `env:"ENABLED" envDefault:"false"`

	// RefreshInterval controls how often the campaign schedule list is
	// reloaded from the store.
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL" envDefault:"1m"`
}
