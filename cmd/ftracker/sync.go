// ABOUTME: CLI commands for Charm snapshot sync.
// ABOUTME: Pushes the full export to Charm KV and pulls it back on another machine.
package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/fatih/color"
	"github.com/harperreed/ftracker/internal/charm"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:     "sync",
	Aliases: []string{"s"},
	Short:   "Share tracker data across devices",
	Long: `Share tracker data across devices using Charm Cloud.

Data is E2E encrypted with your SSH key before upload.

GETTING STARTED:

  1. Link your device (creates/uses SSH key automatically):
     ftracker sync link

  2. Push a snapshot from this device:
     ftracker sync push

  3. On another linked device, pull it:
     ftracker sync pull

COMMANDS:

  link     Link this device to your Charm account
  status   Show Charm account info and stored snapshots
  push     Upload a snapshot of all tracker data
  pull     Import a snapshot (latest by default)`,
}

// withCharm opens the Charm client for the duration of fn.
func withCharm(fn func(c *charm.Client) error) error {
	c, err := charm.Open()
	if err != nil {
		return fmt.Errorf("failed to initialize charm client: %w", err)
	}
	defer c.Close()
	return fn(c)
}

var syncLinkCmd = &cobra.Command{
	Use:   "link",
	Short: "Link this device to Charm",
	RunE: func(cmd *cobra.Command, args []string) error {
		charmCmd := exec.Command("charm", "link")
		charmCmd.Stdin = os.Stdin
		charmCmd.Stdout = os.Stdout
		charmCmd.Stderr = os.Stderr

		if err := charmCmd.Run(); err != nil {
			return fmt.Errorf("failed to link: %w\n\nMake sure 'charm' CLI is installed: go install github.com/charmbracelet/charm@latest", err)
		}
		color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "\n✓ Device linked to Charm")
		return nil
	},
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sync status",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCharm(func(c *charm.Client) error {
			out := cmd.OutOrStdout()
			id, err := c.ID()
			if err != nil {
				color.New(color.FgYellow).Fprintf(out, "⚠ Not linked: %v\n", err)
				fmt.Fprintln(out, "\nRun 'ftracker sync link' to connect to Charm.")
			} else {
				fmt.Fprintf(out, "Charm ID:  %s\n", id)
			}
			if c.IsReadOnly() {
				color.New(color.FgYellow).Fprintln(out, "⚠ KV store is read-only (locked by another process)")
			}

			snapshots, err := c.ListSnapshots()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Snapshots: %d\n", len(snapshots))
			for _, s := range snapshots {
				fmt.Fprintf(out, "  %s\n", s)
			}
			return nil
		})
	},
}

var syncPushLocal bool

var syncPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Upload a snapshot of all tracker data",
	Long: `Upload a snapshot of all tracker data.

With --local the snapshot is written to this device's replica only and
uploaded by the next push or pull.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCharm(func(c *charm.Client) error {
			c.SetAutoSync(!syncPushLocal)
			key, err := c.Push(repo)
			if err != nil {
				return err
			}
			if syncPushLocal {
				color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Saved %s locally\n", key)
				return nil
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Pushed %s\n", key)
			return nil
		})
	},
}

var syncPullCmd = &cobra.Command{
	Use:   "pull [snapshot]",
	Short: "Import a snapshot (latest by default)",
	Long: `Import a snapshot into the local store.

Rows are upserted, so local data not in the snapshot is kept.
Pass a snapshot key from 'ftracker sync status' to restore an older one.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var key string
		if len(args) == 1 {
			key = args[0]
		}
		return withCharm(func(c *charm.Client) error {
			if err := c.Pull(repo, key); err != nil {
				return err
			}
			color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "✓ Snapshot imported")
			return nil
		})
	},
}

func init() {
	syncPushCmd.Flags().BoolVar(&syncPushLocal, "local", false, "write the snapshot locally without uploading")

	syncCmd.AddCommand(syncLinkCmd)
	syncCmd.AddCommand(syncStatusCmd)
	syncCmd.AddCommand(syncPushCmd)
	syncCmd.AddCommand(syncPullCmd)
	rootCmd.AddCommand(syncCmd)
}
