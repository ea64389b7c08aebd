package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wgraph/collections"
	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/internal/console"
)

var (
	version = "dev"     // semantic version (e.g., "v1.2.3")
	commit  = "none"    // git commit SHA
	date    = "unknown" // build timestamp
)

// SetVersion sets the version information displayed by --version and the
// version command. It is called by main with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// graphFlags holds the persistent flags that shape the graph.
type graphFlags struct {
	file       string
	buckets    int
	loadFactor float64
	hash       string
}

// Execute runs the wgraph CLI with the process's standard streams.
func Execute(ctx context.Context) error {
	return newRootCmd(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// newRootCmd builds the command tree. Streams are injected for tests.
func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var (
		verbose bool
		flags   graphFlags
	)

	root := &cobra.Command{
		Use:           "wgraph",
		Short:         "wgraph builds and queries weighted undirected graphs",
		Long:          `wgraph is a small graph workbench: add vertices and weighted edges, then print adjacency and shortest-path matrices or traversal orders.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(stderr, level)))
		},
	}

	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate(fmt.Sprintf("wgraph %s\ncommit: %s\nbuilt: %s\n", version, commit, date))

	pf := root.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVarP(&flags.file, "graph", "g", "", "preload a TOML graph description")
	pf.IntVar(&flags.buckets, "buckets", collections.DefaultMapCapacity, "bucket count of every hash table")
	pf.Float64Var(&flags.loadFactor, "load-factor", 0, "rehash tables above this load (0 keeps them static)")
	pf.StringVar(&flags.hash, "hash", "string", "vertex hash function: string or xxhash")

	root.AddCommand(newRunCmd(&flags))
	root.AddCommand(newShellCmd(&flags))
	root.AddCommand(newVersionCmd())

	return root
}

// newSession builds the graph described by flags and wraps it in a console
// session writing to cmd's output stream.
func newSession(cmd *cobra.Command, flags *graphFlags) (*console.Session, error) {
	logger := loggerFromContext(cmd.Context())

	opts := []core.GraphOption{
		core.WithBucketCount(flags.buckets),
		core.WithLoadFactor(flags.loadFactor),
		core.WithLogger(logger.WithPrefix("graph")),
	}

	var file *console.GraphFile
	if flags.file != "" {
		f, err := console.LoadFile(flags.file)
		if err != nil {
			return nil, err
		}
		file = f
		opts = append(opts, f.Options()...)
	}

	var hasher collections.Hasher[string]
	switch flags.hash {
	case "string":
		hasher = collections.StringHash
	case "xxhash":
		hasher = collections.XXHasher[string]()
	default:
		return nil, fmt.Errorf("unknown hash %q (want string or xxhash)", flags.hash)
	}

	g, err := core.NewGraphWithHasher(hasher, opts...)
	if err != nil {
		return nil, err
	}
	if file != nil {
		if err := file.Apply(g); err != nil {
			return nil, fmt.Errorf("%s: %w", flags.file, err)
		}
		stats := g.Stats()
		logger.Debug("graph file loaded", "path", flags.file, "vertices", stats.VertexCount, "edges", stats.EdgeCount)
	}

	return console.NewSession(g, cmd.OutOrStdout(), logger), nil
}
