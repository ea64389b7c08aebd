package console

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/wgraph/core"
)

// GraphFile is the decoded form of a TOML graph description.
type GraphFile struct {
	Buckets    int        `toml:"buckets"`
	LoadFactor float64    `toml:"load_factor"`
	Vertices   []string   `toml:"vertices"`
	Edges      []EdgeSpec `toml:"edges"`
}

// EdgeSpec is one [[edges]] table.
type EdgeSpec struct {
	From   string `toml:"from"`
	To     string `toml:"to"`
	Weight int    `toml:"weight"`
}

// LoadFile reads and decodes the graph description at path.
func LoadFile(path string) (*GraphFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseFile(data)
}

// ParseFile decodes a TOML graph description. Unknown keys are rejected.
func ParseFile(data []byte) (*GraphFile, error) {
	var f GraphFile
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("decode graph file: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return nil, fmt.Errorf("decode graph file: unknown key %q", undec[0].String())
	}

	return &f, nil
}

// Options returns the GraphOptions the file asks for; zero values fall back to
// the caller's defaults.
func (f *GraphFile) Options() []core.GraphOption {
	var opts []core.GraphOption
	if f.Buckets != 0 {
		opts = append(opts, core.WithBucketCount(f.Buckets))
	}
	if f.LoadFactor != 0 {
		opts = append(opts, core.WithLoadFactor(f.LoadFactor))
	}

	return opts
}

// Apply adds the file's vertices, then its edges, to g. Edges may introduce
// vertices not listed under vertices. It stops at the first invalid entry;
// entries before it stay applied.
func (f *GraphFile) Apply(g *core.Graph[string]) error {
	for i, v := range f.Vertices {
		if err := g.AddVertex(v); err != nil {
			return fmt.Errorf("vertices[%d]: %w", i, err)
		}
	}
	for i, e := range f.Edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return fmt.Errorf("edges[%d] %q-%q: %w", i, e.From, e.To, err)
		}
	}

	return nil
}
