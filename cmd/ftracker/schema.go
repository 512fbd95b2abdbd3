// ABOUTME: CLI command that prints the store schema.
// ABOUTME: Lets postgres users create the tables ahead of time with psql.
package main

import (
	"fmt"

	"github.com/harperreed/ftracker/internal/storage"
	"github.com/spf13/cobra"
)

var schemaBackend string

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the SQL schema",
	Long: `Print the CREATE TABLE statements for a backend.

The tables are created automatically on first use. Printing them is useful
when the postgres role ftracker connects with cannot create tables:

  $ ftracker schema --backend postgres | psql "$FTRACKER_POSTGRES_DSN"

Defaults to the backend from the config file.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipStorageAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		backend := schemaBackend
		if backend == "" {
			backend = cfg.GetBackend()
		}
		if backend != "sqlite" && backend != "postgres" {
			return fmt.Errorf("unknown backend %q (want sqlite or postgres)", backend)
		}
		fmt.Fprint(cmd.OutOrStdout(), storage.SchemaSQL(backend))
		return nil
	},
}

func init() {
	schemaCmd.Flags().StringVar(&schemaBackend, "backend", "", "backend dialect: sqlite or postgres")
	rootCmd.AddCommand(schemaCmd)
}
