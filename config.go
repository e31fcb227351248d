// SPDX-License-Identifier: EPL-2.0

package audthin

import (
	"fmt"

	"github.com/ik5/audthin/decimate"
	"github.com/ik5/audthin/output"
)

// DefaultTargetRate is the output rate in Hz when none is configured.
const DefaultTargetRate = 150

// Config describes one extraction run.
type Config struct {
	// TargetRate is the output rate in Hz.
	TargetRate int
	// Strict rejects a TargetRate above the source rate.
	Strict bool
	// Mono averages channels before picking.
	Mono bool
	// Stream picks while decoding instead of decoding the whole file first.
	Stream bool

	Output output.Options
}

// DefaultConfig returns a Config at DefaultTargetRate with default output.
func DefaultConfig() Config {
	return Config{
		TargetRate: DefaultTargetRate,
		Output:     output.DefaultOptions(),
	}
}

// Validate checks the parts of c that do not depend on the input.
func (c Config) Validate() error {
	if c.TargetRate <= 0 {
		return fmt.Errorf("%w: %d", decimate.ErrInvalidTargetRate, c.TargetRate)
	}
	return nil
}

func (c Config) decimateOptions() []decimate.Option {
	if c.Strict {
		return []decimate.Option{decimate.WithStrict()}
	}
	return nil
}
