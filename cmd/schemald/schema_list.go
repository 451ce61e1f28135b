// Schema list command prints every configured schema key.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var schemaListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured schema keys",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "schema list:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		keys, err := store.SchemaKeys()
		if err != nil {
			fmt.Fprintln(os.Stderr, "list keys:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			out, err := json.Marshal(keys)
			if err != nil {
				fmt.Fprintln(os.Stderr, "marshal keys:", err)
				os.Exit(exitSysError)
			}
			fmt.Println(string(out))
			return nil
		}

		for _, key := range keys {
			fmt.Println(key)
		}
		return nil
	},
}
