// Parent command grouping schema config management.
package main

import "github.com/spf13/cobra"

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Manage schema mapping configs",
}

func init() {
	schemaCmd.AddCommand(schemaSetCmd)
	schemaCmd.AddCommand(schemaGetCmd)
	schemaCmd.AddCommand(schemaListCmd)
	schemaCmd.AddCommand(schemaCheckCmd)
}
