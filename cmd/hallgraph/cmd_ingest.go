package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/campuskg/hallgraph/internal/extract"
	"github.com/campuskg/hallgraph/internal/graph"
)

func ingestCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "ingest [file]",
		Short: "Extract entities from a text file (or stdin) and write them to the graph",
		Long: `Runs the extraction engine over the given text, validates every proposed
entity against the pinned catalog, and persists accepted records as nodes
plus their legal hierarchy edges. Rejected entities and illegal edges are
reported, never silently dropped or partially persisted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			ctx := cmd.Context()

			cat, err := newCatalog()
			if err != nil {
				return fmt.Errorf("ingest: building catalog: %w", err)
			}

			var in io.Reader = os.Stdin
			if len(args) == 1 && args[0] != "-" {
				f, openErr := os.Open(args[0])
				if openErr != nil {
					return fmt.Errorf("ingest: %w", openErr)
				}
				defer func() { _ = f.Close() }()
				in = f
			}
			text, err := io.ReadAll(in)
			if err != nil {
				return fmt.Errorf("ingest: reading input: %w", err)
			}

			extractor := extract.NewExtractor(cfg.Claude.APIKey, cfg.Claude.Model, cat, logger)
			accepted, rejected, err := extractor.Extract(ctx, string(text))
			if err != nil {
				return fmt.Errorf("ingest: %w", err)
			}

			for i := range rejected {
				fmt.Printf("rejected entity %d (%s): %v\n", rejected[i].Index, rejected[i].TypeName, rejected[i].Err)
			}
			fmt.Printf("accepted %d entities, rejected %d\n", len(accepted), len(rejected))

			if dryRun || len(accepted) == 0 {
				return nil
			}

			writer, err := graph.NewWriter(ctx, cfg.Neo4j.URI, cfg.Neo4j.Username, cfg.Neo4j.Password, cfg.Neo4j.Database, cat, logger)
			if err != nil {
				return fmt.Errorf("ingest: %w", err)
			}
			defer func() { _ = writer.Close(ctx) }()

			// Index accepted records by type+name so proposed edges can be
			// resolved to node IDs.
			ids := make(map[string]string, len(accepted))
			for i := range accepted {
				ids[edgeTargetKey(accepted[i])] = accepted[i].ID
			}

			for i := range accepted {
				rec := &accepted[i]
				node := graph.Node{
					ID:         rec.ID,
					TypeName:   rec.Record.TypeName(),
					Properties: rec.Record.Values(),
				}
				if err := writer.WriteNode(ctx, node); err != nil {
					return fmt.Errorf("ingest: %w", err)
				}

				for j := range rec.Edges {
					edge := &rec.Edges[j]
					toID, ok := ids[edge.TargetType+"/"+edge.TargetName]
					if !ok {
						logger.Warn("ingest: edge target not among accepted entities",
							"target_type", edge.TargetType, "target_name", edge.TargetName)
						continue
					}
					writeErr := writer.WriteEdge(ctx, graph.Edge{
						Kind:     edge.Kind,
						FromID:   rec.ID,
						FromType: rec.Record.TypeName(),
						ToID:     toID,
						ToType:   edge.TargetType,
					})
					if errors.Is(writeErr, graph.ErrIllegalEdge) {
						fmt.Printf("rejected edge: %v\n", writeErr)
						continue
					}
					if writeErr != nil {
						return fmt.Errorf("ingest: %w", writeErr)
					}
				}
			}

			fmt.Printf("wrote %d nodes\n", len(accepted))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "extract and validate without writing to the graph")
	return cmd
}

// edgeTargetKey identifies a record the way proposed edges refer to it:
// by type and the value of its first populated identifying field.
func edgeTargetKey(rec extract.Record) string {
	for _, field := range []string{"name", "role_id", "unit_number", "room_number", "suite_number", "bed_label", "event_name", "policy_name"} {
		if v, ok := rec.Record.Text(field); ok {
			return rec.Record.TypeName() + "/" + v
		}
	}
	return rec.Record.TypeName() + "/" + rec.ID
}
