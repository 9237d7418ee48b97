package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dd0wney/cluso-communities/pkg/algorithms"
	"github.com/dd0wney/cluso-communities/pkg/config"
	"github.com/dd0wney/cluso-communities/pkg/detection"
	"github.com/dd0wney/cluso-communities/pkg/edgelist"
	"github.com/dd0wney/cluso-communities/pkg/graph"
	"github.com/dd0wney/cluso-communities/pkg/logging"
	"github.com/dd0wney/cluso-communities/pkg/report"
)

// Exit codes
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// parseFlags layers defaults, the config file, COMMUNITIES_* variables and
// explicitly set flags, in that order
func parseFlags(args []string, stderr io.Writer) (*config.Config, error) {
	fs := flag.NewFlagSet("communities", flag.ContinueOnError)
	fs.SetOutput(stderr)

	defaults := config.Default()
	var (
		configPath  = fs.String("config", "", "YAML configuration file")
		input       = fs.String("input", "", "Edge list file (.sz for snappy-compressed)")
		vertices    = fs.Int("vertices", 0, "Number of vertices; ids must lie in [0, vertices)")
		directed    = fs.Bool("directed", false, "Treat each line as a directed arc")
		remap       = fs.Bool("remap", false, "Assign dense ids to arbitrary input ids")
		algorithm   = fs.String("algorithm", defaults.Algorithm, "Algorithm: cpm, lpa, components or degrees")
		k           = fs.Int("k", defaults.CPM.CliqueSize, "Clique size for clique percolation")
		seed        = fs.Int64("seed", defaults.LPA.Seed, "Seed for the label propagation order")
		maxSweeps   = fs.Int("max-sweeps", defaults.LPA.MaxSweeps, "Sweep ceiling for label propagation")
		jsonOut     = fs.Bool("json", false, "Write the run as JSON instead of a table")
		metricsFile = fs.String("metrics-file", "", "Write Prometheus metrics to this textfile")
		logLevel    = fs.String("log-level", defaults.Logging.Level, "Log level: DEBUG, INFO, WARN or ERROR")
		top         = fs.Int("top", defaults.Output.Top, "Largest communities to list, 0 for all")
	)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = *input
		case "vertices":
			cfg.Graph.Vertices = *vertices
		case "directed":
			cfg.Graph.Directed = *directed
		case "remap":
			cfg.Graph.Remap = *remap
		case "algorithm":
			cfg.Algorithm = *algorithm
		case "k":
			cfg.CPM.CliqueSize = *k
		case "seed":
			cfg.LPA.Seed = *seed
		case "max-sweeps":
			cfg.LPA.MaxSweeps = *maxSweeps
		case "json":
			cfg.Output.JSON = *jsonOut
		case "metrics-file":
			cfg.Output.MetricsFile = *metricsFile
		case "log-level":
			cfg.Logging.Level = *logLevel
		case "top":
			cfg.Output.Top = *top
		}
	})

	return cfg, cfg.Validate()
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "❌ Invalid configuration: %v\n", err)
		return exitUsage
	}

	logger := logging.NewJSONLogger(stderr, logging.ParseLevel(cfg.Logging.Level))
	d, err := detection.NewDetector(detection.Config{
		CliqueSize:      cfg.CPM.CliqueSize,
		Seed:            cfg.LPA.Seed,
		MaxSweeps:       cfg.LPA.MaxSweeps,
		RequireVertices: true,
		Logger:          logger,
	})
	if err != nil {
		fmt.Fprintf(stderr, "❌ %v\n", err)
		return exitUsage
	}

	code := execute(cfg, d, logger, stdout, stderr)

	if cfg.Output.MetricsFile != "" {
		if err := d.Metrics().WriteTextfile(cfg.Output.MetricsFile); err != nil {
			logger.Error("failed to write metrics", logging.Path(cfg.Output.MetricsFile), logging.Error(err))
			return exitFailure
		}
	}
	return code
}

func execute(cfg *config.Config, d *detection.Detector, logger logging.Logger, stdout, stderr io.Writer) int {
	g, mapping, err := load(cfg, d)
	if err != nil {
		fmt.Fprintf(stderr, "❌ Failed to load %s: %v\n", cfg.Input, err)
		return exitFailure
	}

	if cfg.Algorithm == config.AlgorithmDegrees {
		if err := report.RenderDegrees(stdout, graph.DegreeStatistics(g), algorithms.CountTriangles(g)); err != nil {
			logger.Error("failed to write report", logging.Error(err))
			return exitFailure
		}
		return exitOK
	}

	algorithm, err := detection.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		fmt.Fprintf(stderr, "❌ %v\n", err)
		return exitUsage
	}

	result, err := d.Run(g, algorithm)
	if err != nil {
		fmt.Fprintf(stderr, "❌ %v\n", err)
		return exitFailure
	}

	opts := report.DefaultOptions()
	opts.Top = cfg.Output.Top
	opts.Mapping = mapping

	if cfg.Output.JSON {
		err = report.WriteJSON(stdout, result, opts)
	} else {
		err = report.RenderRun(stdout, result, opts)
	}
	if err != nil {
		logger.Error("failed to write report", logging.Error(err))
		return exitFailure
	}
	return exitOK
}

// load reads the configured edge list. The mapping is nil unless ids are
// remapped.
func load(cfg *config.Config, d *detection.Detector) (*graph.Graph, *edgelist.Mapping, error) {
	f, err := edgelist.OpenFile(cfg.Input)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	if cfg.Graph.Remap {
		return d.LoadRemapped(f, cfg.Graph.Directed)
	}
	g, err := d.LoadGraph(f, cfg.Graph.Vertices, cfg.Graph.Directed)
	return g, nil, err
}
