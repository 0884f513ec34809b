package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	hallmcp "github.com/campuskg/hallgraph/internal/mcp"
)

func mcpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start the MCP (Model Context Protocol) server over stdio",
		Long: `Starts an MCP JSON-RPC 2.0 server that reads from stdin and writes to stdout.
All diagnostic logs go to stderr so that stdout remains exclusively MCP protocol traffic.

Tools exposed:
  list_types       - entity type names in the pinned catalog version
  describe_type    - field list and extraction hints for one type
  validate_record  - decode + validate a candidate record
  check_edge       - hierarchy-edge legality between two types`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger()

			cat, err := newCatalog()
			if err != nil {
				return fmt.Errorf("mcp: building catalog: %w", err)
			}

			srv := hallmcp.NewServer(cat, logger)

			// Use a standard log.Logger pointing at stderr for the mcp-go error logger.
			errLogger := log.New(os.Stderr, "mcp: ", log.LstdFlags)

			logger.Info("mcp: hallgraph MCP server starting", "transport", "stdio", "catalog", cat.Version())

			return mcpserver.ServeStdio(
				srv.MCPServer(),
				mcpserver.WithErrorLogger(errLogger),
			)
		},
	}

	return cmd
}
