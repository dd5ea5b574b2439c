package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/dijkstra"
)

// envPrefix namespaces environment overrides, e.g. SHORTESTPATH_SOURCE=3.
const envPrefix = "SHORTESTPATH"

// Config holds the resolved settings of one invocation.
type Config struct {
	Source      int
	Destination int
	LogLevel    string

	// MaxDistance and InfEdgeThreshold are applied only when set.
	MaxDistance      *int64
	InfEdgeThreshold *int64
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// NewRootCommand builds the shortestpath command with its own viper
// instance. Settings resolve in the order flag > environment > config file > default.
func NewRootCommand() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "shortestpath",
		Short: "Shortest path between two vertices of the sample graph",
		Long: `shortestpath builds the fixed six-vertex, nine-edge sample graph and
prints a minimum-weight path between two of its vertices using Dijkstra's
algorithm. By default it queries vertex 0 to vertex 4.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), loadConfig(v))
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "optional YAML config file")
	flags.IntP("source", "s", 0, "source vertex")
	flags.IntP("destination", "d", 4, "destination vertex")
	flags.String("log-level", "warn", "log level (trace, debug, info, warn, error)")
	flags.Int64("max-distance", 0, "do not explore beyond this distance")
	flags.Int64("inf-edge-threshold", 0, "treat edges at least this heavy as impassable")
	bindFlags(v, flags)

	return cmd
}

// bindFlags exposes every flag except --config to viper under its own name.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" {
			return
		}
		_ = v.BindPFlag(f.Name, f)
	})
}

func initConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile == "" {
		return nil
	}
	v.SetConfigFile(cfgFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", cfgFile, err)
	}

	return nil
}

func loadConfig(v *viper.Viper) Config {
	cfg := Config{
		Source:      v.GetInt("source"),
		Destination: v.GetInt("destination"),
		LogLevel:    v.GetString("log-level"),
	}
	// IsSet ignores flag defaults, so these stay nil unless the user asked.
	if v.IsSet("max-distance") {
		d := v.GetInt64("max-distance")
		cfg.MaxDistance = &d
	}
	if v.IsSet("inf-edge-threshold") {
		t := v.GetInt64("inf-edge-threshold")
		cfg.InfEdgeThreshold = &t
	}

	return cfg
}

func run(stdout, stderr io.Writer, cfg Config) error {
	level := hclog.LevelFromString(cfg.LogLevel)
	if level == hclog.NoLevel {
		return fmt.Errorf("unknown log level %q", cfg.LogLevel)
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "shortestpath",
		Level:  level,
		Output: stderr,
	})

	g := SampleGraph(core.WithLogger(logger))
	if err := g.Validate(); err != nil {
		return err
	}
	stats := g.Stats()
	logger.Debug("graph built", "vertices", stats.VertexCount, "edges", stats.EdgeCount)

	for _, end := range []struct {
		name string
		id   int
	}{{"source", cfg.Source}, {"destination", cfg.Destination}} {
		if !g.HasVertex(end.id) {
			return fmt.Errorf("%s: %w: %d not in [0, %d)", end.name, core.ErrVertexOutOfRange, end.id, g.VertexCount())
		}
	}

	opts, err := queryOptions(cfg)
	if err != nil {
		return err
	}

	path, ok := g.ShortestPath(cfg.Source, cfg.Destination, opts...)
	if !ok {
		fmt.Fprintf(stdout, "No path found from %d to %d.\n", cfg.Source, cfg.Destination)

		return nil
	}

	weight, _ := g.PathWeight(path)
	logger.Info("shortest path", "source", cfg.Source, "destination", cfg.Destination, "weight", weight)

	fmt.Fprintf(stdout, "Shortest path from %d to %d:\n", cfg.Source, cfg.Destination)
	for _, v := range path {
		fmt.Fprintf(stdout, "%d ", v)
	}
	fmt.Fprintln(stdout)

	return nil
}

// queryOptions translates the optional limits into dijkstra options,
// rejecting values the option constructors would panic on.
func queryOptions(cfg Config) ([]dijkstra.Option, error) {
	var opts []dijkstra.Option
	if cfg.MaxDistance != nil {
		if *cfg.MaxDistance < 0 {
			return nil, fmt.Errorf("%w: %d", dijkstra.ErrBadMaxDistance, *cfg.MaxDistance)
		}
		opts = append(opts, dijkstra.WithMaxDistance(*cfg.MaxDistance))
	}
	if cfg.InfEdgeThreshold != nil {
		if *cfg.InfEdgeThreshold <= 0 {
			return nil, fmt.Errorf("%w: %d", dijkstra.ErrBadInfThreshold, *cfg.InfEdgeThreshold)
		}
		opts = append(opts, dijkstra.WithInfEdgeThreshold(*cfg.InfEdgeThreshold))
	}

	return opts, nil
}
