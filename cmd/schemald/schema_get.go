// Schema get command prints the stored config for a key.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var schemaGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print the stored schema config for a key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]

		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "schema get:", err)
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

		var out []byte
		if flagJSON {
			out, err = json.MarshalIndent(cfg, "", "  ")
		} else {
			out, err = yaml.Marshal(cfg)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "marshal config:", err)
			os.Exit(exitSysError)
		}

		fmt.Println(string(out))
		return nil
	},
}
