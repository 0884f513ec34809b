// Package graph persists validated records and hierarchy edges to Neo4j.
// The writer trusts the validation verdict as the sole gate for node
// persistence and rejects any proposed edge the hierarchy convention does
// not declare legal.
package graph

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/campuskg/hallgraph/internal/catalog"
	"github.com/campuskg/hallgraph/internal/hierarchy"
	"github.com/campuskg/hallgraph/internal/metrics"
)

// ErrIllegalEdge is returned by WriteEdge for edges the hierarchy
// convention does not allow between the given types.
var ErrIllegalEdge = errors.New("illegal hierarchy edge")

// Node is one validated record ready to persist. Properties are the
// decoded field values; TypeName becomes the node label.
type Node struct {
	ID         string
	TypeName   string
	Properties map[string]any
}

// Edge is a directed, typed relationship between two persisted nodes.
type Edge struct {
	Kind     hierarchy.EdgeKind
	FromID   string
	FromType string
	ToID     string
	ToType   string
}

// Writer persists nodes and edges to Neo4j.
type Writer struct {
	driver   neo4j.DriverWithContext
	database string
	catalog  *catalog.Catalog
	logger   *slog.Logger
}

// NewWriter connects to Neo4j and verifies connectivity. The catalog is
// used to confirm that node labels are registered type names before they
// are interpolated into Cypher.
func NewWriter(ctx context.Context, uri, username, password, database string, cat *catalog.Catalog, logger *slog.Logger) (*Writer, error) {
	if logger == nil {
		logger = slog.Default()
	}
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, fmt.Errorf("graph: creating driver: %w", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("graph: verifying connectivity: %w", err)
	}
	return &Writer{
		driver:   driver,
		database: database,
		catalog:  cat,
		logger:   logger,
	}, nil
}

// WriteNode persists a validated record as a node labeled by its type
// name. Node labels cannot be Cypher parameters, so the type name is
// checked against the catalog before interpolation; an unregistered type
// returns catalog.ErrUnknownType.
func (w *Writer) WriteNode(ctx context.Context, node Node) error {
	if _, err := w.catalog.Lookup(node.TypeName); err != nil {
		return err
	}

	query := fmt.Sprintf("MERGE (n:`%s` {id: $id}) SET n += $props", node.TypeName)
	params := map[string]any{
		"id":    node.ID,
		"props": node.Properties,
	}
	if err := w.write(ctx, query, params); err != nil {
		return fmt.Errorf("graph: writing node %s (%s): %w", node.ID, node.TypeName, err)
	}

	metrics.Inc(metrics.NodesWritten)
	w.logger.Debug("wrote node", "id", node.ID, "type", node.TypeName)
	return nil
}

// WriteEdge persists a directed edge after checking it against the
// hierarchy convention. Illegal edges return ErrIllegalEdge and are never
// persisted; scalar parent-name fields on the records involved are not
// consulted, since edges are the authoritative representation.
func (w *Writer) WriteEdge(ctx context.Context, edge Edge) error {
	if !hierarchy.IsLegalEdge(edge.FromType, edge.ToType, edge.Kind) {
		metrics.Inc(metrics.EdgesRejected)
		return fmt.Errorf("%w: %s -[%s]-> %s", ErrIllegalEdge, edge.FromType, edge.Kind, edge.ToType)
	}

	query := fmt.Sprintf(
		"MATCH (a:`%s` {id: $from}) MATCH (b:`%s` {id: $to}) MERGE (a)-[:`%s`]->(b)",
		edge.FromType, edge.ToType, edge.Kind,
	)
	params := map[string]any{
		"from": edge.FromID,
		"to":   edge.ToID,
	}
	if err := w.write(ctx, query, params); err != nil {
		return fmt.Errorf("graph: writing edge %s -[%s]-> %s: %w", edge.FromID, edge.Kind, edge.ToID, err)
	}

	metrics.Inc(metrics.EdgesWritten)
	w.logger.Debug("wrote edge", "from", edge.FromID, "kind", edge.Kind, "to", edge.ToID)
	return nil
}

// write runs a single Cypher statement in a managed write transaction.
func (w *Writer) write(ctx context.Context, query string, params map[string]any) error {
	session := w.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: w.database})
	defer func() { _ = session.Close(ctx) }()

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		_, runErr := tx.Run(ctx, query, params)
		return nil, runErr
	})
	return err
}

// Close releases the underlying driver.
func (w *Writer) Close(ctx context.Context) error {
	return w.driver.Close(ctx)
}
