// Package edgefile reads graphs from edge-list files.
//
// Two formats are supported. The text format holds one edge per line as
// "from to [weight]", split on whitespace. A line with a single field
// declares an isolated node, and blank lines and lines starting with '#'
// are ignored. The TOML format holds an optional top-level nodes array plus
// [[edge]] tables with from, to and an optional weight. Missing weights
// default to 1.
package edgefile

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/TrevorS/unionfind"
)

// Supported formats.
const (
	FormatText = "text"
	FormatTOML = "toml"
)

// DefaultWeight is used for edges that do not state one.
const DefaultWeight = 1.0

// Graph is a parsed edge list. Nodes lists every node once, in order of
// first appearance.
type Graph struct {
	Nodes []string
	Edges []unionfind.Edge[string]

	seen map[string]bool
}

func newGraph() *Graph {
	return &Graph{seen: make(map[string]bool)}
}

func (g *Graph) addNode(name string) {
	if g.seen[name] {
		return
	}
	g.seen[name] = true
	g.Nodes = append(g.Nodes, name)
}

func (g *Graph) addEdge(from, to string, weight float64) {
	g.addNode(from)
	g.addNode(to)
	g.Edges = append(g.Edges, unionfind.Edge[string]{From: from, To: to, Weight: weight})
}

// Load reads the file at path. An empty format is inferred from the file
// extension: ".toml" selects TOML, anything else text.
func Load(path, format string) (*Graph, error) {
	if format == "" {
		format = FormatText
		if strings.EqualFold(filepath.Ext(path), ".toml") {
			format = FormatTOML
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening edge file: %w", err)
	}
	defer f.Close()

	switch format {
	case FormatText:
		return Parse(f)
	case FormatTOML:
		return ParseTOML(f)
	default:
		return nil, fmt.Errorf("edgefile: unknown format %q", format)
	}
}

// Parse reads the text format.
func Parse(r io.Reader) (*Graph, error) {
	g := newGraph()
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch len(fields) {
		case 1:
			g.addNode(fields[0])
		case 2:
			g.addEdge(fields[0], fields[1], DefaultWeight)
		case 3:
			w, err := parseWeight(fields[2])
			if err != nil {
				return nil, fmt.Errorf("edgefile: line %d: %w", lineNo, err)
			}
			g.addEdge(fields[0], fields[1], w)
		default:
			return nil, fmt.Errorf("edgefile: line %d: expected \"from to [weight]\", got %d fields", lineNo, len(fields))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading edge file: %w", err)
	}
	return g, nil
}

func parseWeight(s string) (float64, error) {
	w, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid weight %q", s)
	}
	if math.IsNaN(w) {
		return 0, fmt.Errorf("invalid weight %q", s)
	}
	return w, nil
}

type tomlDoc struct {
	Nodes []string   `toml:"nodes"`
	Edges []tomlEdge `toml:"edge"`
}

type tomlEdge struct {
	From   string   `toml:"from"`
	To     string   `toml:"to"`
	Weight *float64 `toml:"weight"`
}

// ParseTOML reads the TOML format.
func ParseTOML(r io.Reader) (*Graph, error) {
	var doc tomlDoc
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("edgefile: decoding toml: %w", err)
	}

	g := newGraph()
	for _, n := range doc.Nodes {
		if n == "" {
			return nil, fmt.Errorf("edgefile: empty node name")
		}
		g.addNode(n)
	}
	for i, e := range doc.Edges {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("edgefile: edge %d: from and to are required", i)
		}
		w := DefaultWeight
		if e.Weight != nil {
			if math.IsNaN(*e.Weight) {
				return nil, fmt.Errorf("edgefile: edge %d: invalid weight NaN", i)
			}
			w = *e.Weight
		}
		g.addEdge(e.From, e.To, w)
	}
	return g, nil
}
