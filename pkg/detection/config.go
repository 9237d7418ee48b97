package detection

import (
	"errors"
	"fmt"

	"github.com/dd0wney/cluso-communities/pkg/algorithms"
	"github.com/dd0wney/cluso-communities/pkg/logging"
	"github.com/dd0wney/cluso-communities/pkg/metrics"
	"github.com/dd0wney/cluso-communities/pkg/validation"
	"github.com/hashicorp/go-multierror"
	"github.com/juju/clock"
)

// Config encapsulates the settings for configuring a Detector.
type Config struct {
	// Size k of the maximal cliques that percolate.
	CliqueSize int
	// Seed for the label propagation visitation order.
	Seed int64
	// Hard ceiling on label propagation sweeps.
	MaxSweeps int
	// Reject graphs without vertices instead of returning a trivial run.
	RequireVertices bool
	// A clock instance for timing runs. Default wall-clock will be used.
	Clock clock.Clock
	// Collectors for run metrics. A private registry is used if not specified.
	Metrics *metrics.Registry
	// The logger to use. Logging is discarded if not specified.
	Logger logging.Logger
}

// DefaultConfig returns the configuration of the reference runs
func DefaultConfig() Config {
	return Config{
		CliqueSize: algorithms.DefaultCPMOptions().CliqueSize,
		Seed:       algorithms.DefaultPropagationOptions().Seed,
		MaxSweeps:  algorithms.DefaultPropagationOptions().MaxSweeps,
	}
}

// Validate checks the settings and fills in defaults for optional
// collaborators. Every invalid value is reported.
func (cfg *Config) Validate() error {
	var err error
	if verr := validation.ValidateCliqueSize(cfg.CliqueSize); verr != nil {
		err = multierror.Append(err, verr)
	}
	if cfg.MaxSweeps < 1 || cfg.MaxSweeps > validation.MaxSweeps {
		err = multierror.Append(err, fmt.Errorf("invalid value for max sweeps: %d", cfg.MaxSweeps))
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.WallClock
	}
	if cfg.Metrics == nil {
		cfg.Metrics = metrics.NewRegistry()
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.NewNopLogger()
	}
	return err
}

// ErrUnknownAlgorithm is returned by Run for an unsupported algorithm
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Algorithm selects a community detection method
type Algorithm string

// Supported algorithms
const (
	CPM        Algorithm = algorithms.AlgorithmCPM
	LPA        Algorithm = algorithms.AlgorithmLPA
	Components Algorithm = algorithms.AlgorithmComponents
)

// ParseAlgorithm converts a name to an Algorithm
func ParseAlgorithm(name string) (Algorithm, error) {
	switch a := Algorithm(name); a {
	case CPM, LPA, Components:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}
