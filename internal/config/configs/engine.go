package configs

import "time"

// Engine defines configuration for the campaign execution engine. A run
// consists of TotalSteps sequential steps with an UpdateInterval pause
// between them; the run is aborted with an error once it exceeds
// TotalSteps * UpdateInterval * TimeoutFactor of wall time.
type Engine struct {
	// TotalSteps is the fixed number of steps per execution run.
	TotalSteps int `env:"TOTAL_STEPS" envDefault:"10"`

	// UpdateInterval is the pause before each step. It is the cooperative
	// yield point where pause and cancellation are observed.
	UpdateInterval time.Duration `env:"UPDATE_INTERVAL" envDefault:"1s"`

	// KPITracking enables KPI derivation on run completion.
	KPITracking bool `env:"KPI_TRACKING" envDefault:"true"`

	// TimeoutFactor bounds total run time as a multiple of the nominal
	// duration. Pausing a run counts toward the budget.
	TimeoutFactor int `env:"TIMEOUT_FACTOR" envDefault:"10"`
}

// RunTimeout returns the wall-clock budget for one execution run.
func (c Engine) RunTimeout() time.Duration {
	return time.Duration(c.TotalSteps*c.TimeoutFactor) * c.UpdateInterval
}
