// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server over the configured store.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/ftracker/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server.

The server communicates via stdin/stdout and exposes the tracker to
MCP-compatible assistants.

CONFIGURATION:

  {
    "mcpServers": {
      "ftracker": {
        "command": "ftracker",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  add_exercise      Add or replace a catalog exercise
  list_exercises    List exercises, optionally by category substring
  delete_category   Delete every exercise in a category
  create_routine    Create or rename a routine
  attach_exercise   Attach an exercise entry to a routine
  view_routine      Show routines by name substring
  set_goal          Set one of the three fixed goals
  list_goals        List goals
  record_progress   Record the latest value for an exercise
  list_progress     List progress values with units
  evaluate_goal     Check a measurement against a goal
  list_history      List recent changes

AVAILABLE RESOURCES:

  ftracker://summary   Catalog, routines, goals, and progress overview`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo)
		if err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
