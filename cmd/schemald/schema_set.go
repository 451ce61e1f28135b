// Schema set command stores a mapping profile for a key.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pressmark/schemald/internal/schema"
	"github.com/pressmark/schemald/pkg/types"
)

var flagProfile string

var schemaSetCmd = &cobra.Command{
	Use:   "set <key>",
	Short: "Store a mapping profile as the schema config for a key",
	Long: `Set reads a YAML mapping profile and stores it as the schema config
for the given key.

Example profile:

  post_type: post
  meta_map:
    headline: post:post_title
    author: meta:byline
    publisher: site:blogname

Example:
  schemald schema set article -f article.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		if _, err := schema.Get(key); err != nil {
			fmt.Fprintf(os.Stderr, "unknown schema key %q (valid: %v)\n", key, schema.Keys())
			os.Exit(exitUserError)
		}

		raw, err := os.ReadFile(flagProfile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "read profile:", err)
			os.Exit(exitUserError)
		}

		var cfg types.SchemaConfig
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			fmt.Fprintln(os.Stderr, "parse profile:", err)
			os.Exit(exitUserError)
		}
		if err := cfg.Validate(); err != nil {
			fmt.Fprintln(os.Stderr, "invalid profile:", err)
			os.Exit(exitUserError)
		}

		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "schema set:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		if err := store.SetSchemaConfig(key, &cfg); err != nil {
			fmt.Fprintln(os.Stderr, "store config:", err)
			os.Exit(exitSysError)
		}

		fmt.Println("stored schema config for", key)
		return nil
	},
}

func init() {
	schemaSetCmd.Flags().StringVarP(&flagProfile, "file", "f", "", "mapping profile YAML file (required)")
	schemaSetCmd.MarkFlagRequired("file")
}
