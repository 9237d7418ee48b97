package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/hashicorp/go-multierror"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "COMMUNITIES_"

// ApplyEnv overrides fields from COMMUNITIES_* environment variables.
// Every malformed value is reported; well-formed ones are still applied.
func (c *Config) ApplyEnv() error {
	var result *multierror.Error

	str := func(name string, dst *string) {
		if v, ok := os.LookupEnv(EnvPrefix + name); ok {
			*dst = v
		}
	}
	integer := func(name string, dst *int) {
		if v, ok := os.LookupEnv(EnvPrefix + name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				result = multierror.Append(result, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = n
		}
	}
	boolean := func(name string, dst *bool) {
		if v, ok := os.LookupEnv(EnvPrefix + name); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				result = multierror.Append(result, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = b
		}
	}

	str("INPUT", &c.Input)
	integer("VERTICES", &c.Graph.Vertices)
	boolean("DIRECTED", &c.Graph.Directed)
	boolean("REMAP", &c.Graph.Remap)
	str("ALGORITHM", &c.Algorithm)
	integer("CLIQUE_SIZE", &c.CPM.CliqueSize)
	integer("MAX_SWEEPS", &c.LPA.MaxSweeps)
	boolean("JSON", &c.Output.JSON)
	integer("TOP", &c.Output.Top)
	str("METRICS_FILE", &c.Output.MetricsFile)
	str("LOG_LEVEL", &c.Logging.Level)

	if v, ok := os.LookupEnv(EnvPrefix + "SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%sSEED: %w", EnvPrefix, err))
		} else {
			c.LPA.Seed = seed
		}
	}

	return result.ErrorOrNil()
}
