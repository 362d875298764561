// Package edgestore loads edge lists from SQL tables and writes component
// assignments back. It supports SQLite (modernc.org/sqlite) and PostgreSQL
// (lib/pq).
package edgestore

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/TrevorS/unionfind"
)

// Supported drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Store wraps a database connection.
type Store struct {
	db     *sql.DB
	driver string
}

// Open connects to the database. For SQLite the DSN is a file path.
func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	switch driver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("edgestore: unsupported driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if driver == DriverSQLite {
		// One connection keeps in-memory databases coherent.
		db.SetMaxOpenConns(1)
		if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
			db.Close()
			return nil, fmt.Errorf("setting busy timeout: %w", err)
		}
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return &Store{db: db, driver: driver}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func checkIdent(table string) error {
	if !identRe.MatchString(table) {
		return fmt.Errorf("edgestore: invalid table name %q", table)
	}
	return nil
}

// rebind rewrites '?' placeholders for drivers that number them.
func (s *Store) rebind(query string) string {
	if s.driver != DriverPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// CreateEdgeTable creates an edge table if it does not exist.
func (s *Store) CreateEdgeTable(ctx context.Context, table string) error {
	if err := checkIdent(table); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS `+table+` (
		from_node TEXT NOT NULL,
		to_node   TEXT NOT NULL,
		weight    DOUBLE PRECISION
	)`)
	if err != nil {
		return fmt.Errorf("creating table %s: %w", table, err)
	}
	return nil
}

// InsertEdges appends edges to table in one transaction.
func (s *Store) InsertEdges(ctx context.Context, table string, edges []unionfind.Edge[string]) error {
	if err := checkIdent(table); err != nil {
		return err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, s.rebind(`INSERT INTO `+table+` (from_node, to_node, weight) VALUES (?, ?, ?)`))
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range edges {
		if _, err := stmt.ExecContext(ctx, e.From, e.To, e.Weight); err != nil {
			return fmt.Errorf("inserting edge %s-%s: %w", e.From, e.To, err)
		}
	}
	return tx.Commit()
}

// LoadEdges reads every row of table. Nodes are returned in order of first
// appearance. A NULL weight reads as 1.
func (s *Store) LoadEdges(ctx context.Context, table string) ([]string, []unionfind.Edge[string], error) {
	if err := checkIdent(table); err != nil {
		return nil, nil, err
	}
	rows, err := s.db.QueryContext(ctx, `SELECT from_node, to_node, weight FROM `+table)
	if err != nil {
		return nil, nil, fmt.Errorf("querying %s: %w", table, err)
	}
	defer rows.Close()

	seen := make(map[string]bool)
	var nodes []string
	addNode := func(n string) {
		if !seen[n] {
			seen[n] = true
			nodes = append(nodes, n)
		}
	}

	var edges []unionfind.Edge[string]
	for rows.Next() {
		var (
			e      unionfind.Edge[string]
			weight sql.NullFloat64
		)
		if err := rows.Scan(&e.From, &e.To, &weight); err != nil {
			return nil, nil, fmt.Errorf("scanning edge: %w", err)
		}
		e.Weight = 1
		if weight.Valid {
			e.Weight = weight.Float64
		}
		addNode(e.From)
		addNode(e.To)
		edges = append(edges, e)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}
	return nodes, edges, nil
}

// SaveComponents replaces the contents of table with one (node, component)
// row per node. Component numbers are the indices into comps.
func (s *Store) SaveComponents(ctx context.Context, table string, comps [][]string) error {
	if err := checkIdent(table); err != nil {
		return err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS `+table+` (
		node      TEXT PRIMARY KEY,
		component INTEGER NOT NULL
	)`); err != nil {
		return fmt.Errorf("creating table %s: %w", table, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
		return fmt.Errorf("clearing table %s: %w", table, err)
	}

	stmt, err := tx.PrepareContext(ctx, s.rebind(`INSERT INTO `+table+` (node, component) VALUES (?, ?)`))
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for id, members := range comps {
		for _, node := range members {
			if _, err := stmt.ExecContext(ctx, node, id); err != nil {
				return fmt.Errorf("saving node %s: %w", node, err)
			}
		}
	}
	return tx.Commit()
}

// LoadComponents reads a table written by SaveComponents as a node to
// component map.
func (s *Store) LoadComponents(ctx context.Context, table string) (map[string]int, error) {
	if err := checkIdent(table); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `SELECT node, component FROM `+table)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", table, err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var (
			node string
			id   int
		)
		if err := rows.Scan(&node, &id); err != nil {
			return nil, fmt.Errorf("scanning component: %w", err)
		}
		out[node] = id
	}
	return out, rows.Err()
}
