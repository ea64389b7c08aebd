package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/wgraph/builder"
	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/prim_kruskal"
	"github.com/katalvlaran/wgraph/render"
)

// ErrUsage marks errors caused by user input. The graph is left untouched.
var ErrUsage = errors.New("usage error")

func usagef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}

// Command describes one console command for help output and completion.
type Command struct {
	Name  string
	Args  string
	Usage string
}

// Commands lists every command the Session understands, in help order.
var Commands = []Command{
	{"vertex", "V", "add a vertex"},
	{"edge", "A B W", "add an edge with integer weight W"},
	{"rmvertex", "V", "remove a vertex and its edges"},
	{"rmedge", "A B", "remove an edge"},
	{"matrix", "", "print the adjacency matrix"},
	{"floyd", "", "print all-pairs shortest paths (Floyd-Warshall)"},
	{"bellman", "V", "print shortest paths from V (Bellman-Ford)"},
	{"dijkstra", "V", "print shortest paths from V (Dijkstra)"},
	{"mst", "[V]", "minimum spanning tree (Kruskal, or Prim from V)"},
	{"dfs", "V", "depth-first traversal from V"},
	{"bfs", "V", "breadth-first traversal from V"},
	{"info", "", "print counts and adjacency lists"},
	{"load", "FILE", "merge a TOML graph description"},
	{"gen", "KIND ARGS", "merge a generated topology (path cycle star wheel complete grid random)"},
	{"clear", "", "remove all vertices and edges"},
	{"help", "", "list commands"},
}

// Session executes command lines against one graph.
type Session struct {
	graph  *core.Graph[string]
	out    io.Writer
	logger *log.Logger
}

// NewSession returns a Session over g writing results to out.
// A nil logger discards log output.
func NewSession(g *core.Graph[string], out io.Writer, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Session{graph: g, out: out, logger: logger}
}

// Graph returns the session's graph.
func (s *Session) Graph() *core.Graph[string] {
	return s.graph
}

// Execute runs one command line. Blank lines and lines starting with '#' are
// ignored. Command names are case-insensitive; vertex names are not.
func (s *Session) Execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}
	name, args := strings.ToLower(fields[0]), fields[1:]
	s.logger.Debug("execute", "command", name, "args", args)

	switch name {
	case "vertex":
		return s.addVertex(args)
	case "edge":
		return s.addEdge(args)
	case "rmvertex":
		return s.removeVertex(args)
	case "rmedge":
		return s.removeEdge(args)
	case "matrix":
		return s.whenNotEmpty(func() error { return s.print(render.AdjacencyMatrix(s.graph)) })
	case "floyd":
		return s.whenNotEmpty(func() error { return s.print(render.FloydWarshall(s.graph)) })
	case "bellman":
		return s.distances(args, render.BellmanFord[string])
	case "dijkstra":
		return s.distances(args, render.Dijkstra[string])
	case "mst":
		return s.spanningTree(args)
	case "dfs":
		return s.traverse(args, render.DFS[string])
	case "bfs":
		return s.traverse(args, render.BFS[string])
	case "info":
		return s.print(render.Summary(s.graph))
	case "load":
		return s.load(args)
	case "gen":
		return s.generate(args)
	case "clear":
		s.graph.Clear()
		return s.print("Graph cleared\n")
	case "help":
		return s.help()
	default:
		return usagef("unknown command %q (try help)", fields[0])
	}
}

// ExecuteAll runs lines in order, stopping at the first error.
// The returned error names the failing line number.
func (s *Session) ExecuteAll(lines []string) error {
	for i, line := range lines {
		if err := s.Execute(line); err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
	}

	return nil
}

func (s *Session) addVertex(args []string) error {
	if len(args) != 1 {
		return usagef("enter a vertex name")
	}
	v := args[0]
	if s.graph.HasVertex(v) {
		return usagef("vertex %s already exists", v)
	}
	if err := s.graph.AddVertex(v); err != nil {
		return err
	}

	return s.printf("Added vertex: %s\n", v)
}

func (s *Session) addEdge(args []string) error {
	if len(args) != 3 {
		return usagef("fill in both vertices and the weight of the edge")
	}
	from, to := args[0], args[1]
	weight, err := strconv.Atoi(args[2])
	if err != nil {
		return usagef("weight must be a number")
	}
	for _, v := range []string{from, to} {
		if !s.graph.HasVertex(v) {
			return usagef("vertex %s does not exist", v)
		}
	}
	if err := s.graph.AddEdge(from, to, weight); err != nil {
		return err
	}

	return s.printf("Added edge: %s - %s (weight: %d)\n", from, to, weight)
}

func (s *Session) removeVertex(args []string) error {
	if len(args) != 1 {
		return usagef("enter the name of the vertex to remove")
	}
	if !s.graph.RemoveVertex(args[0]) {
		return usagef("vertex %s does not exist", args[0])
	}

	return s.printf("Removed vertex: %s\n", args[0])
}

func (s *Session) removeEdge(args []string) error {
	if len(args) != 2 {
		return usagef("fill in both vertices of the edge")
	}
	if !s.graph.RemoveEdge(args[0], args[1]) {
		return usagef("edge %s - %s does not exist", args[0], args[1])
	}

	return s.printf("Removed edge: %s - %s\n", args[0], args[1])
}

func (s *Session) distances(args []string, fn func(*core.Graph[string], string) (string, error)) error {
	return s.whenNotEmpty(func() error {
		if len(args) != 1 {
			return usagef("enter the start vertex")
		}
		if !s.graph.HasVertex(args[0]) {
			return usagef("vertex %s does not exist", args[0])
		}
		out, err := fn(s.graph, args[0])
		if err != nil {
			return err
		}
		return s.print(out)
	})
}

func (s *Session) spanningTree(args []string) error {
	return s.whenNotEmpty(func() error {
		var (
			out string
			err error
		)
		switch len(args) {
		case 0:
			out, err = render.Kruskal(s.graph)
		case 1:
			if !s.graph.HasVertex(args[0]) {
				return usagef("vertex %s does not exist", args[0])
			}
			out, err = render.Prim(s.graph, args[0])
		default:
			return usagef("mst takes at most one start vertex")
		}
		if errors.Is(err, prim_kruskal.ErrDisconnected) {
			return usagef("graph is disconnected, no spanning tree")
		}
		if err != nil {
			return err
		}
		return s.print(out)
	})
}

func (s *Session) traverse(args []string, fn func(io.Writer, *core.Graph[string], string) error) error {
	return s.whenNotEmpty(func() error {
		if len(args) != 1 {
			return usagef("enter the start vertex")
		}
		return fn(s.out, s.graph, args[0])
	})
}

func (s *Session) load(args []string) error {
	if len(args) != 1 {
		return usagef("enter the path of a graph file")
	}
	f, err := LoadFile(args[0])
	if err != nil {
		return usagef("%v", err)
	}
	before := s.graph.Stats()
	if err := f.Apply(s.graph); err != nil {
		return usagef("%s: %v", args[0], err)
	}
	after := s.graph.Stats()
	s.logger.Info("loaded graph file", "path", args[0],
		"vertices", after.VertexCount-before.VertexCount, "edges", after.EdgeCount-before.EdgeCount)

	return s.printf("Loaded %s: %d vertices, %d edges\n", args[0], after.VertexCount, after.EdgeCount)
}

// generate merges a builder topology into the graph. Ring-like kinds use
// spreadsheet-column IDs (A, B, ..., AA) with weight 1; grid uses "r,c";
// random draws weights 1..9 from the given seed.
func (s *Session) generate(args []string) error {
	const usage = "gen path|cycle|star|wheel|complete N, gen grid ROWS COLS, gen random N P SEED"
	if len(args) < 2 {
		return usagef(usage)
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return usagef("size must be a number")
	}

	opts := []builder.BuilderOption{builder.WithIDScheme(builder.ExcelColumnIDFn)}
	var ctor builder.Constructor
	switch kind, rest := strings.ToLower(args[0]), args[2:]; {
	case len(rest) == 0 && kind == "path":
		ctor = builder.Path(n)
	case len(rest) == 0 && kind == "cycle":
		ctor = builder.Cycle(n)
	case len(rest) == 0 && kind == "star":
		ctor = builder.Star(n)
	case len(rest) == 0 && kind == "wheel":
		ctor = builder.Wheel(n)
	case len(rest) == 0 && kind == "complete":
		ctor = builder.Complete(n)
	case len(rest) == 1 && kind == "grid":
		cols, err := strconv.Atoi(rest[0])
		if err != nil {
			return usagef("columns must be a number")
		}
		ctor = builder.Grid(n, cols)
	case len(rest) == 2 && kind == "random":
		p, err := strconv.ParseFloat(rest[0], 64)
		if err != nil {
			return usagef("probability must be a number")
		}
		seed, err := strconv.ParseInt(rest[1], 10, 64)
		if err != nil {
			return usagef("seed must be a number")
		}
		ctor = builder.RandomSparse(n, p)
		opts = append(opts, builder.WithSeed(seed), builder.WithWeightFn(builder.UniformWeightFn(1, 9)))
	default:
		return usagef(usage)
	}

	if err := builder.Build(s.graph, opts, ctor); err != nil {
		return usagef("%v", err)
	}
	st := s.graph.Stats()
	s.logger.Debug("generated topology", "kind", args[0], "vertices", st.VertexCount, "edges", st.EdgeCount)

	return s.printf("Generated %s: %d vertices, %d edges\n", strings.ToLower(args[0]), st.VertexCount, st.EdgeCount)
}

func (s *Session) help() error {
	var sb strings.Builder
	for _, c := range Commands {
		fmt.Fprintf(&sb, "  %-18s %s\n", strings.TrimSpace(c.Name+" "+c.Args), c.Usage)
	}

	return s.print(sb.String())
}

func (s *Session) whenNotEmpty(fn func() error) error {
	if s.graph.VertexCount() == 0 {
		return usagef("graph is empty, add vertices first")
	}

	return fn()
}

func (s *Session) print(text string) error {
	_, err := io.WriteString(s.out, text)
	return err
}

func (s *Session) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(s.out, format, args...)
	return err
}
