package cli

import (
	"context"
	"errors"
	"log"

	"github.com/TrevorS/unionfind"
	"github.com/TrevorS/unionfind/internal/config"
	"github.com/TrevorS/unionfind/internal/edgefile"
	"github.com/TrevorS/unionfind/internal/edgestore"
)

var errNoInput = errors.New("no input: pass --input FILE or --dsn DSN")

// graphInput is an edge list with its node universe.
type graphInput struct {
	Nodes []string
	Edges []unionfind.Edge[string]
}

// loadGraph reads the graph from SQL when a DSN is configured, otherwise
// from the input file.
func loadGraph(ctx context.Context, cfg config.Config) (*graphInput, error) {
	switch {
	case cfg.DB.DSN != "":
		store, err := edgestore.Open(ctx, cfg.DB.Driver, cfg.DB.DSN)
		if err != nil {
			return nil, err
		}
		defer store.Close()

		nodes, edges, err := store.LoadEdges(ctx, cfg.DB.Table)
		if err != nil {
			return nil, err
		}
		logf(cfg, "ufind: loaded %d nodes, %d edges from %s table %s", len(nodes), len(edges), cfg.DB.Driver, cfg.DB.Table)
		return &graphInput{Nodes: nodes, Edges: edges}, nil

	case cfg.Input != "":
		g, err := edgefile.Load(cfg.Input, cfg.Format)
		if err != nil {
			return nil, err
		}
		logf(cfg, "ufind: loaded %d nodes, %d edges from %s", len(g.Nodes), len(g.Edges), cfg.Input)
		return &graphInput{Nodes: g.Nodes, Edges: g.Edges}, nil

	default:
		return nil, errNoInput
	}
}

// buildSet registers every node and applies every edge.
func (g *graphInput) buildSet() (*unionfind.DisjointSet[string], error) {
	ds := unionfind.New[string]()
	for _, n := range g.Nodes {
		if err := ds.Add(n); err != nil {
			return nil, err
		}
	}
	for _, e := range g.Edges {
		if _, err := ds.Union(e.From, e.To); err != nil {
			return nil, err
		}
	}
	return ds, nil
}

func logf(cfg config.Config, format string, args ...any) {
	if cfg.Verbose {
		log.Printf(format, args...)
	}
}
