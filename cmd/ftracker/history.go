// ABOUTME: CLI command for viewing the change history.
// ABOUTME: Lists recent upserts and deletes, newest first.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/ftracker/internal/menu"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"h"},
	Short:   "Show recent changes",
	Long: `Show recent changes to the tracker, newest first.

OUTPUT FORMAT:

  Each line shows: ID  TIME  ACTION  ENTITY  KEY  DETAIL

  The ID is an 8-character prefix of the change's UUID.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := repo.ListHistory(historyLimit)
		if err != nil {
			return fmt.Errorf("failed to list history: %w", err)
		}
		if len(entries) == 0 {
			color.New(color.Faint).Fprintln(cmd.OutOrStdout(), "No history yet.")
			return nil
		}

		rows := make([][]string, 0, len(entries))
		for _, h := range entries {
			detail := ""
			if h.Detail != nil {
				detail = *h.Detail
			}
			rows = append(rows, []string{
				h.ID.String()[:8],
				h.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				string(h.Action),
				h.Entity,
				h.Key,
				detail,
			})
		}
		return menu.RenderTable(cmd.OutOrStdout(), []string{"ID", "Time", "Action", "Entity", "Key", "Detail"}, rows)
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "max number of results (0 for all)")
	rootCmd.AddCommand(historyCmd)
}
