package problem

import "fmt"

// Conventions carries the process-wide input conventions. It is passed
// explicitly into index construction so the verifier stays a pure function
// of its input documents plus configuration.
//
// The interval convention is not configurable: every span is half-open
// [begin, end), fixed once in core/interval and shared by visibility
// containment and maintenance exclusion.
type Conventions struct {
	// TimeUnit names the unit of every timestamp and duration in the input
	// documents. All arithmetic is unit-agnostic integer math; the value is
	// only echoed in report rendering.
	TimeUnit string `json:"time_unit"`
}

// SetDefaults applies sane defaults.
func (c *Conventions) SetDefaults() {
	if c.TimeUnit == "" {
		c.TimeUnit = "seconds"
	}
}

// Validate checks mandatory fields.
func (c Conventions) Validate() error {
	if c.TimeUnit == "" {
		return fmt.Errorf("time unit is required")
	}
	return nil
}
