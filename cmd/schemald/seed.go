// Seed command imports JSONL fixtures into the store.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed <dir>",
	Short: "Import JSONL fixtures into the store",
	Long: `Seed imports content fixtures from a directory of JSONL files:

  posts.jsonl    posts with their metadata and taxonomy terms
  users.jsonl    users with their metadata
  options.jsonl  site options
  schemas.jsonl  schema mapping configs

Missing files are skipped; malformed lines are ignored.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			fmt.Fprintf(os.Stderr, "seed: %q is not a directory\n", dir)
			os.Exit(exitUserError)
		}

		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "seed:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		if err := store.LoadJSONL(dir); err != nil {
			fmt.Fprintln(os.Stderr, "seed:", err)
			os.Exit(exitSysError)
		}

		fmt.Println("seeded from", dir)
		return nil
	},
}
