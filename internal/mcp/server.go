// Package mcp implements the Model Context Protocol server for hallgraph.
// It exposes the entity catalog and validation layer to MCP clients: the
// extraction side lists and describes types, the writer side validates
// candidate records and checks edge legality before persistence.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/campuskg/hallgraph/internal/catalog"
	"github.com/campuskg/hallgraph/internal/hierarchy"
	"github.com/campuskg/hallgraph/internal/schema"
)

// Server wraps an MCPServer with the active catalog.
type Server struct {
	mcp     *mcpserver.MCPServer
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// NewServer creates a new MCP server over the given catalog.
func NewServer(cat *catalog.Catalog, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		catalog: cat,
		logger:  logger,
	}

	mcpSrv := mcpserver.NewMCPServer(
		"hallgraph",
		"1.0.0",
		mcpserver.WithToolCapabilities(true),
	)

	mcpSrv.AddTool(buildListTypesTool(), s.handleListTypes)
	mcpSrv.AddTool(buildDescribeTypeTool(), s.handleDescribeType)
	mcpSrv.AddTool(buildValidateRecordTool(), s.handleValidateRecord)
	mcpSrv.AddTool(buildCheckEdgeTool(), s.handleCheckEdge)

	s.mcp = mcpSrv
	return s
}

// MCPServer returns the underlying mcp-go MCPServer for use with ServeStdio.
func (s *Server) MCPServer() *mcpserver.MCPServer {
	return s.mcp
}

// HandleListTypes is the exported handler for the "list_types" tool.
// It is exposed for direct testing without the mcp-go transport layer.
func (s *Server) HandleListTypes(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return s.handleListTypes(ctx, req)
}

// HandleDescribeType is the exported handler for the "describe_type" tool.
func (s *Server) HandleDescribeType(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return s.handleDescribeType(ctx, req)
}

// HandleValidateRecord is the exported handler for the "validate_record" tool.
func (s *Server) HandleValidateRecord(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return s.handleValidateRecord(ctx, req)
}

// HandleCheckEdge is the exported handler for the "check_edge" tool.
func (s *Server) HandleCheckEdge(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return s.handleCheckEdge(ctx, req)
}

// --- tool definitions ---

func buildListTypesTool() mcpgo.Tool {
	return mcpgo.NewTool("list_types",
		mcpgo.WithDescription("List the entity type names registered in the active catalog version."),
	)
}

func buildDescribeTypeTool() mcpgo.Tool {
	return mcpgo.NewTool("describe_type",
		mcpgo.WithDescription("Describe one entity type: its fields, kinds, requiredness, and extraction hints."),
		mcpgo.WithString("type",
			mcpgo.Required(),
			mcpgo.Description("The entity type name to describe"),
		),
	)
}

func buildValidateRecordTool() mcpgo.Tool {
	return mcpgo.NewTool("validate_record",
		mcpgo.WithDescription("Decode and validate a candidate record against its entity type. Returns the verdict with structural problems or rule failures."),
		mcpgo.WithString("type",
			mcpgo.Required(),
			mcpgo.Description("The entity type name of the record"),
		),
		mcpgo.WithString("record",
			mcpgo.Required(),
			mcpgo.Description("The candidate record as a JSON object"),
		),
	)
}

func buildCheckEdgeTool() mcpgo.Tool {
	return mcpgo.NewTool("check_edge",
		mcpgo.WithDescription("Check whether a directed, typed edge is legal between two entity types under the hierarchy convention."),
		mcpgo.WithString("from_type",
			mcpgo.Required(),
			mcpgo.Description("Entity type of the edge source"),
		),
		mcpgo.WithString("to_type",
			mcpgo.Required(),
			mcpgo.Description("Entity type of the edge target"),
		),
		mcpgo.WithString("kind",
			mcpgo.Required(),
			mcpgo.Description("Edge kind: CONTAINS, LOCATED_IN, PART_OF, PRECEDES, ASSIGNED_TO, LOCATED_AT, or OCCURS_DURING"),
		),
	)
}

// --- tool handlers ---

// handleListTypes returns the registered type names in registration order.
func (s *Server) handleListTypes(_ context.Context, _ mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	if s.catalog == nil {
		return mcpgo.NewToolResultError("catalog is unavailable"), nil
	}

	var names []string
	for name := range s.catalog.TypeNames() {
		names = append(names, name)
	}

	result := map[string]any{
		"version": s.catalog.Version(),
		"types":   names,
	}
	return toolResultJSON(result)
}

// handleDescribeType returns the extraction-facing view of one type.
func (s *Server) handleDescribeType(_ context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	if s.catalog == nil {
		return mcpgo.NewToolResultError("catalog is unavailable"), nil
	}

	typeName := req.GetString("type", "")
	if strings.TrimSpace(typeName) == "" {
		return mcpgo.NewToolResultError("type is required and must not be empty"), nil
	}

	desc, err := s.catalog.Describe(typeName)
	if err != nil {
		return mcpgo.NewToolResultErrorf("describe failed: %s", err.Error()), nil
	}
	return toolResultJSON(desc)
}

// handleValidateRecord decodes and validates a candidate record, returning
// a structured verdict rather than a protocol error so callers can adjust
// and retry.
func (s *Server) handleValidateRecord(_ context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	if s.catalog == nil {
		return mcpgo.NewToolResultError("catalog is unavailable"), nil
	}

	typeName := req.GetString("type", "")
	if strings.TrimSpace(typeName) == "" {
		return mcpgo.NewToolResultError("type is required and must not be empty"), nil
	}
	recordJSON := req.GetString("record", "")
	if strings.TrimSpace(recordJSON) == "" {
		return mcpgo.NewToolResultError("record is required and must not be empty"), nil
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(recordJSON), &raw); err != nil {
		return mcpgo.NewToolResultErrorf("record is not a JSON object: %s", err.Error()), nil
	}

	def, err := s.catalog.Lookup(typeName)
	if err != nil {
		if errors.Is(err, catalog.ErrUnknownType) {
			return toolResultJSON(map[string]any{
				"valid":  false,
				"reason": "unknown_type",
				"detail": err.Error(),
			})
		}
		return mcpgo.NewToolResultErrorf("lookup failed: %s", err.Error()), nil
	}

	rec, err := def.Decode(raw)
	if err != nil {
		var structural *schema.StructuralError
		if errors.As(err, &structural) {
			return toolResultJSON(map[string]any{
				"valid":    false,
				"reason":   "structural",
				"problems": structural.Problems,
			})
		}
		return mcpgo.NewToolResultErrorf("decode failed: %s", err.Error()), nil
	}

	if err := def.Validate(rec); err != nil {
		var validation *schema.ValidationError
		if errors.As(err, &validation) {
			return toolResultJSON(map[string]any{
				"valid":    false,
				"reason":   "validation",
				"failures": validation.Failures,
			})
		}
		return mcpgo.NewToolResultErrorf("validate failed: %s", err.Error()), nil
	}

	s.logger.Debug("mcp: validated record", "type", typeName)
	return toolResultJSON(map[string]any{"valid": true})
}

// handleCheckEdge answers edge legality under the hierarchy convention.
func (s *Server) handleCheckEdge(_ context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	fromType := req.GetString("from_type", "")
	toType := req.GetString("to_type", "")
	kind := req.GetString("kind", "")
	if fromType == "" || toType == "" || kind == "" {
		return mcpgo.NewToolResultError("from_type, to_type, and kind are all required"), nil
	}

	edgeKind := hierarchy.EdgeKind(kind)
	if !edgeKind.IsValid() {
		return mcpgo.NewToolResultErrorf("invalid kind %q: must be one of CONTAINS, LOCATED_IN, PART_OF, PRECEDES, ASSIGNED_TO, LOCATED_AT, OCCURS_DURING", kind), nil
	}

	result := map[string]any{
		"legal": hierarchy.IsLegalEdge(fromType, toType, edgeKind),
	}
	return toolResultJSON(result)
}

// toolResultJSON marshals v to JSON and returns it as a tool text result.
func toolResultJSON(v any) (*mcpgo.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("mcp: marshaling result: %w", err)
	}
	return mcpgo.NewToolResultText(string(b)), nil
}
