// Schema check command statically validates a stored config.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pressmark/schemald/internal/schema"
	"github.com/pressmark/schemald/pkg/types"
)

var schemaCheckCmd = &cobra.Command{
	Use:   "check <key>",
	Short: "Validate the stored schema config for a key",
	Long: `Check decodes the stored config for a key and runs static validation:
scope and meta_map must be present, authorType must be a known value, and
every mapped token must parse. Token resolution is not checked; missing
metadata degrades at render time rather than failing here.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		if _, err := schema.Get(key); err != nil {
			fmt.Fprintf(os.Stderr, "unknown schema key %q (valid: %v)\n", key, schema.Keys())
			os.Exit(exitUserError)
		}

		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "schema check:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		cfg, err := store.SchemaConfig(key)
		if err != nil {
			fmt.Fprintln(os.Stderr, "load config:", err)
			os.Exit(exitSysError)
		}
		if cfg == nil {
			fmt.Fprintf(os.Stderr, "no schema config stored for %q\n", key)
			os.Exit(exitUserError)
		}

		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "config for %q is invalid: %s\n", key, err)
			os.Exit(exitUserError)
		}

		// Surface literal-looking mappings for properties that expect
		// lookups; these are warnings, not failures.
		for property := range cfg.MetaMap {
			for _, raw := range cfg.Tokens(property) {
				tok := types.ParseToken(raw)
				if tok.Source == types.SourceLiteral {
					fmt.Printf("note: %s maps to the bare value %q (postmeta probe, then literal)\n", property, raw)
				}
			}
		}

		fmt.Println("schema config for", key, "is valid")
		return nil
	},
}
