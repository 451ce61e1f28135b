// Version command for the schemald CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pressmark/schemald/pkg/schemald"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the schemald version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("schemald", schemald.Version)
	},
}
